package blogs

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
	Collection: db.BlogsCollection,
	EntityType: "blog",
	Folder:     "blogs",
	CacheKeys:  []string{"home", "blogs:public"},
}

// parseForm reads the multipart payload into a Blog. Compound fields
// (tags, seo, active) arrive JSON-encoded since form-data values are
// strings.
func parseForm(r *http.Request) (*models.Blog, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:   r.FormValue("title"),
		Slug:    r.FormValue("slug"),
		Content: r.FormValue("content"),
		Excerpt: r.FormValue("excerpt"),
		Tags:    utils.ParseStringList(r.FormValue("tags")),
		Active:  utils.ParseFormBool(r.FormValue("active")),
	}

	if catHex := r.FormValue("category"); catHex != "" {
		if catID, err := primitive.ObjectIDFromHex(catHex); err == nil {
			blog.Category = &catID
		}
	}

	if seoRaw := r.FormValue("seo"); seoRaw != "" {
		var seo models.SEO
		if err := json.Unmarshal([]byte(seoRaw), &seo); err == nil {
			blog.SEO = &seo
		}
	}

	if blog.Slug == "" {
		blog.Slug = slug.Generate(blog.Title)
	}
	return blog, nil
}

func CreateBlog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	blog, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if blog.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if !crud.RequireSlug(w, blog.Active, blog.Slug) {
		return
	}

	blog.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, blog.Slug, nil)
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
			log.Printf("blog image upload: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		blog.Image = img
	}

	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt

	result, err := Res.Collection.InsertOne(ctx, blog)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save blog")
		return
	}
	blog.ID = result.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, blog.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, blog)
}

func UpdateBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.Blog
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blog")
		return
	}

	blog, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if blog.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	if !crud.RequireSlug(w, blog.Active, blog.Slug) {
		return
	}

	blog.Slug, err = crud.EnsureUniqueSlug(ctx, Res.Collection, blog.Slug, &objID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check slug")
		return
	}

	// No new file means the existing image descriptor stays untouched.
	blog.Image = existing.Image
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Replace(ctx, imghost.Active, existing.Image, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("blog image replace: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		blog.Image = img
	}

	blog.ID = objID
	blog.CreatedAt = existing.CreatedAt
	blog.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, blog); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update blog")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, blog)
}
