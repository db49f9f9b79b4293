package pages

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Res = crud.Resource{
	Collection: db.PagesCollection,
	EntityType: "page",
	Folder:     "pages",
	CacheKeys:  []string{"pages:public"},
}

func CreatePage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var page models.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if page.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if page.Slug == "" {
		page.Slug = slug.Generate(page.Title)
	}
	if !crud.RequireSlug(w, page.Active, page.Slug) {
		return
	}

	var err error
	page.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, page.Slug, nil)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	page.ID = primitive.NilObjectID
	page.CreatedAt = time.Now()
	page.UpdatedAt = page.CreatedAt

	inserted, err := Res.Collection.InsertOne(ctx, page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save page")
		return
	}
	page.ID = inserted.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, page.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, page)
}

func UpdatePage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.Page
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Page not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch page")
		return
	}

	var page models.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if page.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if page.Slug == "" {
		page.Slug = slug.Generate(page.Title)
	}
	if !crud.RequireSlug(w, page.Active, page.Slug) {
		return
	}

	var err error
	page.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, page.Slug, &objID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	page.ID = objID
	page.CreatedAt = existing.CreatedAt
	page.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, page); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update page")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, page)
}

// GetPublicPages lists active pages without their content, for menus.
func GetPublicPages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := Res.Collection.Find(ctx, bson.M{"active": true},
		options.Find().
			SetSort(bson.D{{Key: "title", Value: 1}}).
			SetProjection(bson.M{"content": 0}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch pages")
		return
	}
	defer cursor.Close(ctx)

	list := []models.Page{}
	if err := cursor.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode pages")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func GetPageBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var page models.Page
	err := Res.Collection.FindOne(ctx, bson.M{"slug": ps.ByName("slug"), "active": true}).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Page not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch page")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}
