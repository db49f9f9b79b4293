package blogs

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"gurukul/models"
	"gurukul/rdx"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogWithCategory is the admin list projection with the category
// reference populated.
type BlogWithCategory struct {
	models.Blog  `bson:",inline"`
	CategoryInfo *models.BlogCategory `bson:"categoryInfo,omitempty" json:"categoryInfo,omitempty"`
}

// GetBlogs returns every blog with its category populated, for the admin
// list view.
func GetBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "blogcategories",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryInfo",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$categoryInfo",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := Res.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	defer cursor.Close(ctx)

	var blogs []BlogWithCategory
	if err := cursor.All(ctx, &blogs); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode blogs")
		return
	}
	if blogs == nil {
		blogs = []BlogWithCategory{}
	}
	utils.RespondWithJSON(w, http.StatusOK, blogs)
}

// GetPublicBlogs returns the active posts for the public site, cached.
// With ?page= the cached list is served one page at a time.
func GetPublicBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var blogs []models.Blog
	if cached, _ := rdx.RdxGet("blogs:public"); cached != "" {
		if err := json.Unmarshal([]byte(cached), &blogs); err != nil {
			blogs = nil
		}
	}

	if blogs == nil {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := Res.Collection.Find(ctx, bson.M{"active": true}, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blogs")
			return
		}
		defer cursor.Close(ctx)

		if err := cursor.All(ctx, &blogs); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode blogs")
			return
		}
		if blogs == nil {
			blogs = []models.Blog{}
		}
		if data, err := json.Marshal(blogs); err == nil {
			rdx.RdxSet("blogs:public", string(data))
		}
	}

	if r.URL.Query().Get("page") != "" {
		q := utils.ParseQueryOptions(r)
		page := utils.ClampPage(q.Page, utils.TotalPages(len(blogs), q.Limit))
		w.Header().Set("X-Total-Count", strconv.Itoa(len(blogs)))
		blogs = utils.PageSlice(blogs, page, q.Limit)
	}
	utils.RespondWithJSON(w, http.StatusOK, blogs)
}

// GetBlogBySlug serves a single public post. Only active posts are
// reachable by slug.
func GetBlogBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var blog models.Blog
	err := Res.Collection.FindOne(r.Context(), bson.M{
		"slug":   ps.ByName("slug"),
		"active": true,
	}).Decode(&blog)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blog)
}
