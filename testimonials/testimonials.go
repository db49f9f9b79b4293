package testimonials

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
)

var Res = crud.Resource{
	Collection: db.TestimonialsCollection,
	EntityType: "testimonial",
	Folder:     "testimonials",
	CacheKeys:  []string{"home", "testimonials:public"},
}

func parseForm(r *http.Request) (*models.Testimonial, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}
	testimonial := &models.Testimonial{
		Name:        r.FormValue("name"),
		Designation: r.FormValue("designation"),
		Message:     r.FormValue("message"),
		Rating:      utils.ParseFormInt(r.FormValue("rating")),
		Active:      utils.ParseFormBool(r.FormValue("active")),
	}
	if testimonial.Rating < 0 || testimonial.Rating > 5 {
		testimonial.Rating = 0
	}
	return testimonial, nil
}

func CreateTestimonial(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	testimonial, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if testimonial.Name == "" || testimonial.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and message are required")
		return
	}

	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Active.Upload(ctx, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("testimonial image upload: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		testimonial.Image = img
	}

	testimonial.CreatedAt = time.Now()
	testimonial.UpdatedAt = testimonial.CreatedAt

	inserted, err := Res.Collection.InsertOne(ctx, testimonial)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save testimonial")
		return
	}
	testimonial.ID = inserted.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, testimonial.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, testimonial)
}

func UpdateTestimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.Testimonial
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch testimonial")
		return
	}

	testimonial, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if testimonial.Name == "" || testimonial.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and message are required")
		return
	}

	testimonial.Image = existing.Image
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Replace(ctx, imghost.Active, existing.Image, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("testimonial image replace: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		testimonial.Image = img
	}

	testimonial.ID = objID
	testimonial.CreatedAt = existing.CreatedAt
	testimonial.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, testimonial); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, testimonial)
}
