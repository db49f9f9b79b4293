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

var Res = crud.Resource{
	Collection: db.BlogCategoriesCollection,
	EntityType: "blogcategory",
	Folder:     "categories",
	CacheKeys:  []string{"home"},
}

// Categories carry no image, so create/update take a plain JSON body.
func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cat models.BlogCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if cat.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	if cat.Slug == "" {
		cat.Slug = slug.Generate(cat.Name)
	}
	if !crud.RequireSlug(w, cat.Active, cat.Slug) {
		return
	}
	var err error
	cat.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, cat.Slug, nil)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	cat.CreatedAt = time.Now()
	cat.UpdatedAt = cat.CreatedAt

	result, err := Res.Collection.InsertOne(ctx, cat)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save category")
		return
	}
	cat.ID = result.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, cat.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, cat)
}

func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.BlogCategory
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}

	var cat models.BlogCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if cat.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	if cat.Slug == "" {
		cat.Slug = slug.Generate(cat.Name)
	}
	if !crud.RequireSlug(w, cat.Active, cat.Slug) {
		return
	}
	var err error
	cat.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, cat.Slug, &objID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	cat.ID = objID
	cat.CreatedAt = existing.CreatedAt
	cat.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, cat); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, cat)
}
