package sliders

import (
	"context"
	"log"
	"net/http"
	"time"

	"gurukul/crud"
	"gurukul/db"
	"gurukul/imghost"
	"gurukul/models"
	"gurukul/rdx"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Res = crud.Resource{
	Collection: db.SlidersCollection,
	EntityType: "slider",
	Folder:     "sliders",
	CacheKeys:  []string{"home", "sliders:public"},
}

func parseForm(r *http.Request) (*models.Slider, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}
	return &models.Slider{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		Link:     r.FormValue("link"),
		Order:    utils.ParseFormInt(r.FormValue("order")),
		Active:   utils.ParseFormBool(r.FormValue("active")),
	}, nil
}

func CreateSlider(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	slider, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if slider.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	// sliders exist to show an image; require one at creation
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
		log.Printf("slider image upload: %v", uerr)
		utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
		return
	}
	slider.Image = img

	slider.CreatedAt = time.Now()
	slider.UpdatedAt = slider.CreatedAt

	inserted, err := Res.Collection.InsertOne(ctx, slider)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save slider")
		return
	}
	slider.ID = inserted.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, slider.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, slider)
}

func UpdateSlider(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.Slider
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Slider not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch slider")
		return
	}

	slider, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if slider.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	slider.Image = existing.Image
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Replace(ctx, imghost.Active, existing.Image, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("slider image replace: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		slider.Image = img
	}

	slider.ID = objID
	slider.CreatedAt = existing.CreatedAt
	slider.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, slider); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update slider")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, slider)
}

func GetPublicSliders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	const cacheKey = "sliders:public"
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	list, err := ActiveSliders(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sliders")
		return
	}

	if payload, err := utils.ToJSON(list); err == nil {
		rdx.RdxSet(cacheKey, payload)
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// ActiveSliders is shared with the home aggregate.
func ActiveSliders(ctx context.Context) ([]models.Slider, error) {
	cursor, err := Res.Collection.Find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Slider{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
