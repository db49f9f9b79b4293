package results

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
	Collection: db.ResultsCollection,
	EntityType: "result",
	Folder:     "results",
	CacheKeys:  []string{"home", "results:public"},
}

func parseForm(r *http.Request) (*models.Result, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, err
	}
	return &models.Result{
		StudentName: r.FormValue("studentName"),
		ExamName:    r.FormValue("examName"),
		Rank:        r.FormValue("rank"),
		Year:        utils.ParseFormInt(r.FormValue("year")),
		Score:       r.FormValue("score"),
		Active:      utils.ParseFormBool(r.FormValue("active")),
	}, nil
}

func CreateResult(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if result.StudentName == "" || result.ExamName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Student name and exam name are required")
		return
	}

	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Active.Upload(ctx, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("result image upload: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		result.Image = img
	}

	result.CreatedAt = time.Now()
	result.UpdatedAt = result.CreatedAt

	inserted, err := Res.Collection.InsertOne(ctx, result)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save result")
		return
	}
	result.ID = inserted.InsertedID.(primitive.ObjectID)

	Res.Changed(ctx, result.ID.Hex(), "POST")
	utils.RespondWithJSON(w, http.StatusCreated, result)
}

func UpdateResult(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	objID, ok := crud.ParseID(w, ps.ByName("id"))
	if !ok {
		return
	}

	var existing models.Result
	if err := Res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Result not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch result")
		return
	}

	result, err := parseForm(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	if result.StudentName == "" || result.ExamName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Student name and exam name are required")
		return
	}

	result.Image = existing.Image
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		img, uerr := imghost.Replace(ctx, imghost.Active, existing.Image, file, Res.Folder, r.FormValue("imageAlt"))
		if uerr != nil {
			log.Printf("result image replace: %v", uerr)
			utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
			return
		}
		result.Image = img
	}

	result.ID = objID
	result.CreatedAt = existing.CreatedAt
	result.UpdatedAt = time.Now()

	if _, err := Res.Collection.ReplaceOne(ctx, bson.M{"_id": objID}, result); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update result")
		return
	}

	Res.Changed(ctx, objID.Hex(), "PUT")
	utils.RespondWithJSON(w, http.StatusOK, result)
}

func GetPublicResults(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if yearRaw := r.URL.Query().Get("year"); yearRaw != "" {
		year := utils.ParseFormInt(yearRaw)
		if year == 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid year")
			return
		}
		filter["year"] = year
	}

	cursor, err := Res.Collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}
	defer cursor.Close(ctx)

	list := []models.Result{}
	if err := cursor.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode results")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
