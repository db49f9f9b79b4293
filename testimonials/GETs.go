package testimonials

import (
	"context"
	"net/http"
	"time"

	"gurukul/models"
	"gurukul/rdx"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const publicCacheKey = "testimonials:public"

func GetPublicTestimonials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	defer cursor.Close(ctx)

	list := []models.Testimonial{}
	if err := cursor.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode testimonials")
		return
	}

	if payload, err := utils.ToJSON(list); err == nil {
		rdx.RdxSet(publicCacheKey, payload)
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
