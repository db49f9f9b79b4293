package currentaffairs

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gurukul/categories"
	"gurukul/crud"
	"gurukul/db"
	"gurukul/imghost"
	"gurukul/models"
	"gurukul/slug"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var Res = crud.Resource{
	Collection: db.CurrentAffairsCollection,
	EntityType: "currentaffair",
	Folder:     "currentaffairs",
	CacheKeys:  []string{"home", "currentaffairs:public"},
}

func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

func parseForm(r *http.Request) (*models.CurrentAffair, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}

	affair := &models.CurrentAffair{
		Title:   r.FormValue("title"),
		Slug:    r.FormValue("slug"),
		Content: r.FormValue("content"),
		Date:    parseDate(r.FormValue("date")),
		Active:  utils.ParseFormBool(r.FormValue("active")),
	}

	if catRaw := r.FormValue("category"); catRaw != "" {
		catID, err := primitive.ObjectIDFromHex(catRaw)
		if err != nil {
			return nil, err
		}
		affair.Category = &catID
	}
	if subRaw := r.FormValue("subCategory"); subRaw != "" {
		subID, err := primitive.ObjectIDFromHex(subRaw)
		if err != nil {
			return nil, err
		}
		affair.SubCategory = &subID
	}

	if seoRaw := r.FormValue("seo"); seoRaw != "" {
		var seo models.SEO
		if err := json.Unmarshal([]byte(seoRaw), &seo); err == nil {
			affair.SEO = &seo
		}
	}

	if affair.Slug == "" {
		affair.Slug = slug.Generate(affair.Title)
	}
	return affair, nil
}

// validateRefs rejects a sub-category that does not belong to the chosen
// category. A sub-category without a category makes no sense either.
func validateRefs(ctx context.Context, w http.ResponseWriter, affair *models.CurrentAffair) bool {
	if affair.SubCategory == nil {
		return true
	}
	if affair.Category == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Sub-category requires a category")
		return false
	}
	ok, err := categories.SubCategoryBelongsTo(ctx, *affair.SubCategory, *affair.Category)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check sub-category")
		return false
	}
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Sub-category does not belong to the selected category")
		return false
	}
	return true
}

func CreateCurrentAffair(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	affair, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if affair.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if !crud.RequireSlug(w, affair.Active, affair.Slug) {
		return
	}
	if !validateRefs(ctx, w, affair) {
		return
	}

	affair.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, affair.Slug, nil)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Active.Upload(ctx, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("current affair image upload: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		affair.Image = img
	}

	affair.CreatedAt = time.Now()
	affair.UpdatedAt = affair.CreatedAt

	result, err := Res.Collection.InsertOne(ctx, affair)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save current affair")
		return
	}
	affair.ID = result.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, affair.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, affair)
}

func UpdateCurrentAffair(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.CurrentAffair
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Current affair not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch current affair")
		return
	}

	affair, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if affair.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if !crud.RequireSlug(w, affair.Active, affair.Slug) {
		return
	}
	if !validateRefs(ctx, w, affair) {
		return
	}

	affair.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, affair.Slug, &objID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	affair.Image = existing.Image
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Replace(ctx, imghost.Active, existing.Image, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("current affair image replace: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		affair.Image = img
	}

	affair.ID = objID
	affair.CreatedAt = existing.CreatedAt
	affair.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, affair); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update current affair")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, affair)
}
