package courses

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gurukul/models"
	"gurukul/rdx"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const publicCacheKey = "courses:public"

func GetPublicCourses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(publicCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	cursor, err := Res.Collection.Find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode courses")
		return
	}

	if payload, err := json.Marshal(courses); err == nil {
		rdx.RdxSet(publicCacheKey, string(payload))
	}
	utils.RespondWithJSON(w, http.StatusOK, courses)
}

func GetCourseBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var course models.Course
	err := Res.Collection.FindOne(ctx, bson.M{"slug": ps.ByName("slug"), "active": true}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Course not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch course")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, course)
}
