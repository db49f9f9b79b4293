package home

import (
	"context"
	"net/http"
	"time"

	"gurukul/db"
	"gurukul/models"
	"gurukul/rdx"
	"gurukul/settings"
	"gurukul/sliders"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cacheKey = "home"

func latest[T any](ctx context.Context, coll *mongo.Collection, sortField string, limit int64) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.D{{Key: sortField, Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHome assembles the landing page payload in one round trip.
func GetHome(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	activeSliders, err := sliders.ActiveSliders(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch sliders")
		return
	}

	blogs, err := latest[models.Blog](ctx, db.BlogsCollection, "createdAt", 6)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}

	courses, err := latest[models.Course](ctx, db.CoursesCollection, "createdAt", 6)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	affairs, err := latest[models.CurrentAffair](ctx, db.CurrentAffairsCollection, "date", 6)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch current affairs")
		return
	}

	testimonials, err := latest[models.Testimonial](ctx, db.TestimonialsCollection, "createdAt", 8)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}

	siteSettings, err := settings.Load(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	payload := utils.M{
		"sliders":        activeSliders,
		"blogs":          blogs,
		"courses":        courses,
		"currentAffairs": affairs,
		"testimonials":   testimonials,
		"settings":       siteSettings,
	}

	if encoded, err := utils.ToJSON(payload); err == nil {
		rdx.RdxSet(cacheKey, encoded)
	}
	utils.RespondWithJSON(w, http.StatusOK, payload)
}
