package courses

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

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
	Collection: db.CoursesCollection,
	EntityType: "course",
	Folder:     "courses",
	CacheKeys:  []string{"home", "courses:public"},
}

func parseForm(r *http.Request) (*models.Course, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:         r.FormValue("title"),
		Slug:          r.FormValue("slug"),
		Description:   r.FormValue("description"),
		Duration:      r.FormValue("duration"),
		Price:         utils.ParseFormFloat(r.FormValue("price")),
		OriginalPrice: utils.ParseFormFloat(r.FormValue("originalPrice")),
		Videos:        utils.ParseStringList(r.FormValue("videos")),
		Features:      utils.ParseStringList(r.FormValue("features")),
		Active:        utils.ParseFormBool(r.FormValue("active")),
		Installments:  []models.Installment{},
	}

	if instRaw := r.FormValue("installments"); instRaw != "" {
		var installments []models.Installment
		if err := json.Unmarshal([]byte(instRaw), &installments); err == nil {
			course.Installments = installments
		}
	}

	if seoRaw := r.FormValue("seo"); seoRaw != "" {
		var seo models.SEO
		if err := json.Unmarshal([]byte(seoRaw), &seo); err == nil {
			course.SEO = &seo
		}
	}

	if course.Slug == "" {
		course.Slug = slug.Generate(course.Title)
	}
	return course, nil
}

func CreateCourse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	course, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if course.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if !crud.RequireSlug(w, course.Active, course.Slug) {
		return
	}

	course.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, course.Slug, nil)
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
			log.Printf("course image upload: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		course.Image = img
	}

	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt

	result, err := Res.Collection.InsertOne(ctx, course)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save course")
		return
	}
	course.ID = result.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, course.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, course)
}

func UpdateCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.Course
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Course not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch course")
		return
	}

	course, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if course.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	if !crud.RequireSlug(w, course.Active, course.Slug) {
		return
	}

	course.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, course.Slug, &objID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	course.Image = existing.Image
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Replace(ctx, imghost.Active, existing.Image, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("course image replace: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		course.Image = img
	}

	course.ID = objID
	course.CreatedAt = existing.CreatedAt
	course.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, course); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update course")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, course)
}
