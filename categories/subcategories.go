package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gurukul/crud"
	"gurukul/db"
	"gurukul/models"
	"gurukul/slug"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var SubRes = crud.Resource{
	Collection: db.SubCategoriesCollection,
	EntityType: "subcategory",
	Folder:     "categories",
	CacheKeys:  []string{"home"},
}

// categoryExists enforces that a sub-category always points at a real
// parent category.
func categoryExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := db.BlogCategoriesCollection.CountDocuments(ctx, bson.M{"_id": id})
	return count > 0, err
}

// SubCategoryBelongsTo reports whether the sub-category exists and is a
// child of the given category.
func SubCategoryBelongsTo(ctx context.Context, subID, catID primitive.ObjectID) (bool, error) {
	count, err := db.SubCategoriesCollection.CountDocuments(ctx, bson.M{"_id": subID, "category": catID})
	return count > 0, err
}

// GetSubCategories lists all sub-categories, optionally restricted to one
// parent category via ?category=<id>.
func GetSubCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if catHex := r.URL.Query().Get("category"); catHex != "" {
		catID, err := primitive.ObjectIDFromHex(catHex)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		filter["category"] = catID
	}

	cursor, err := SubRes.Collection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sub-categories")
		return
	}
	defer cursor.Close(ctx)

	var subs []models.SubCategory
	if err := cursor.All(ctx, &subs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode sub-categories")
		return
	}
	if subs == nil {
		subs = []models.SubCategory{}
	}
	utils.RespondWithJSON(w, http.StatusOK, subs)
}

func CreateSubCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var sub models.SubCategory
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if sub.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if sub.Category.IsZero() {
		utils.RespondWithError(w, http.StatusBadRequest, "Category is required")
		return
	}

	exists, err := categoryExists(ctx, sub.Category)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check category")
		return
	}
	if !exists {
		utils.RespondWithError(w, http.StatusBadRequest, "Category does not exist")
		return
	}

	if sub.Slug == "" {
		sub.Slug = slug.Generate(sub.Name)
	}
	if !crud.RequireSlug(w, sub.Active, sub.Slug) {
		return
	}
	sub.Slug, err = crud.EnsureUniqueSlug(ctx, SubRes.Collection, sub.Slug, nil)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt

	result, err := SubRes.Collection.InsertOne(ctx, sub)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save sub-category")
		return
	}
	sub.ID = result.InsertedID.(primitive.ObjectID)

	SubRes.Changed(ctx, sub.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, sub)
}

func UpdateSubCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.SubCategory
	if err := SubRes.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Sub-category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sub-category")
		return
	}

	var sub models.SubCategory
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if sub.Name == "" || sub.Category.IsZero() {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and category are required")
		return
	}

	exists, err := categoryExists(ctx, sub.Category)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check category")
		return
	}
	if !exists {
		utils.RespondWithError(w, http.StatusBadRequest, "Category does not exist")
		return
	}

	if sub.Slug == "" {
		sub.Slug = slug.Generate(sub.Name)
	}
	if !crud.RequireSlug(w, sub.Active, sub.Slug) {
		return
	}
	sub.Slug, err = crud.EnsureUniqueSlug(ctx, SubRes.Collection, sub.Slug, &objID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	sub.ID = objID
	sub.CreatedAt = existing.CreatedAt
	sub.UpdatedAt = time.Now()

	if _, err := SubRes.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, sub); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update sub-category")
		return
	}

	SubRes.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, sub)
}
