package gallery

import (
	"context"
	"log"
	"net/http"
	"time"

	"gurukul/crud"
	"gurukul/db"
	"gurukul/imghost"
	"gurukul/models"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Res = crud.Resource{
	Collection: db.GalleryCollection,
	EntityType: "galleryimage",
	Folder:     "gallery",
	CacheKeys:  []string{"gallery:public"},
}

func CreateGalleryImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	entry := &models.GalleryImage{
		Title:  r.FormValue("title"),
		Active: utils.ParseFormBool(r.FormValue("active")),
	}

	file, header, ferr := r.FormFile("image")
	if ferr != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image is required")
		return
	}
	defer file.Close()
	if !utils.ValidateImageFileType(w, header) {
		return
	}
	img, uerr := imghost.Active.Upload(ctx, file, Res.Folder, r.FormValue("imageAlt"))
	if uerr != nil {
		log.Printf("gallery image upload: %v", uerr)
		utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
		return
	}
	entry.Image = img

	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt

	inserted, err := Res.Collection.InsertOne(ctx, entry)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save gallery image")
		return
	}
	entry.ID = inserted.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, entry.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, entry)
}

func UpdateGalleryImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.GalleryImage
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Gallery image not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch gallery image")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	entry := &models.GalleryImage{
		Title:  r.FormValue("title"),
		Active: utils.ParseFormBool(r.FormValue("active")),
		Image:  existing.Image,
	}

	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Replace(ctx, imghost.Active, existing.Image, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("gallery image replace: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		entry.Image = img
	}

	entry.ID = objID
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, entry); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update gallery image")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, entry)
}

func GetPublicGallery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := Res.Collection.Find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch gallery")
		return
	}
	defer cursor.Close(ctx)

	list := []models.GalleryImage{}
	if err := cursor.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode gallery")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
