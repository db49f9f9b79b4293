package currentaffairs

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const publicCacheKey = "currentaffairs:public"

// CurrentAffairWithRefs carries the resolved category and sub-category
// documents alongside the affair itself for admin listings.
type CurrentAffairWithRefs struct {
	models.CurrentAffair `bson:",inline"`
	CategoryInfo         *models.BlogCategory `bson:"categoryInfo,omitempty" json:"categoryInfo,omitempty"`
	SubCategoryInfo      *models.SubCategory  `bson:"subCategoryInfo,omitempty" json:"subCategoryInfo,omitempty"`
}

func GetCurrentAffairs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "blogcategories",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryInfo",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$categoryInfo", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subcategories",
			"localField":   "subCategory",
			"foreignField": "_id",
			"as":           "subCategoryInfo",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$subCategoryInfo", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
	}

	cursor, err := Res.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch current affairs")
		return
	}
	defer cursor.Close(ctx)

	affairs := []CurrentAffairWithRefs{}
	if err := cursor.All(ctx, &affairs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode current affairs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, affairs)
}

func GetPublicCurrentAffairs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(publicCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	cursor, err := Res.Collection.Find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch current affairs")
		return
	}
	defer cursor.Close(ctx)

	affairs := []models.CurrentAffair{}
	if err := cursor.All(ctx, &affairs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode current affairs")
		return
	}

	if payload, err := json.Marshal(affairs); err == nil {
		rdx.RdxSet(publicCacheKey, string(payload))
	}
	utils.RespondWithJSON(w, http.StatusOK, affairs)
}

// lookupFilter resolves the path parameter as an ObjectID when it is valid
// hex, otherwise as a slug. Slug lookups only see active documents; id
// lookups are used by the admin panel and see everything.
func lookupFilter(key string) bson.M {
	if objID, err := primitive.ObjectIDFromHex(key); err == nil {
		return bson.M{"_id": objID}
	}
	return bson.M{"slug": key, "active": true}
}

func GetCurrentAffair(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var affair models.CurrentAffair
	if err := Res.Collection.FindOne(ctx, lookupFilter(ps.ByName("id"))).Decode(&affair); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Current affair not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch current affair")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, affair)
}
