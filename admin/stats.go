package admin

import (
	"context"
	"net/http"
	"time"

	"gurukul/db"
	"gurukul/models"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetStats returns document counts per collection for the dashboard.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collections := map[string]*mongo.Collection{
		"blogs":          db.BlogsCollection,
		"categories":     db.BlogCategoriesCollection,
		"subCategories":  db.SubCategoriesCollection,
		"courses":        db.CoursesCollection,
		"currentAffairs": db.CurrentAffairsCollection,
		"results":        db.ResultsCollection,
		"testimonials":   db.TestimonialsCollection,
		"sliders":        db.SlidersCollection,
		"gallery":        db.GalleryCollection,
		"pages":          db.PagesCollection,
	}

	counts := utils.M{}
	for name, coll := range collections {
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count "+name)
			return
		}
		counts[name] = count
	}

	recent, err := recentBlogs(ctx, 5)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recent blogs")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"counts":      counts,
		"recentBlogs": recent,
	})
}

func recentBlogs(ctx context.Context, limit int64) ([]models.Blog, error) {
	cursor, err := db.BlogsCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Blog{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
