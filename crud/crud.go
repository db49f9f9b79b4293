// Package crud holds the generic handlers and helpers shared by every
// admin resource: listing, active-flag toggling, deletion with external
// asset cleanup, and slug uniqueness.
package crud

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"gurukul/imghost"
	"gurukul/models"
	"gurukul/mq"
	"gurukul/rdx"
	"gurukul/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Resource describes one admin-managed entity type.
type Resource struct {
	Collection *mongo.Collection
	EntityType string   // event/index name, e.g. "blog"
	Folder     string   // image-host folder, e.g. "blogs"
	CacheKeys  []string // public cache keys invalidated on writes
}

// Changed invalidates public caches and emits the entity-change event.
func (res Resource) Changed(ctx context.Context, id, method string) {
	rdx.RdxDel(res.CacheKeys...)
	go mq.Emit(ctx, res.EntityType+"-changed", models.Index{
		EntityType: res.EntityType,
		EntityId:   id,
		Method:     method,
	})
}

// parseActivePatch decodes the PATCH body. The active field must be an
// explicit boolean; a missing field or malformed body is an error so a
// buggy client never flips visibility by accident.
func parseActivePatch(r io.Reader) (bool, error) {
	var body struct {
		Active *bool `json:"active"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return false, err
	}
	if body.Active == nil {
		return false, errors.New("missing active field")
	}
	return *body.Active, nil
}

// ParseID rejects syntactically invalid ids before any lookup.
func ParseID(w http.ResponseWriter, raw string) (primitive.ObjectID, bool) {
	objID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return primitive.NilObjectID, false
	}
	return objID, true
}

// GetAll returns the full collection, newest first.
func GetAll[T any](res Resource) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := res.Collection.Find(ctx, bson.M{}, opts)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+res.EntityType+"s")
			return
		}
		defer cursor.Close(ctx)

		var docs []T
		if err := cursor.All(ctx, &docs); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode "+res.EntityType+"s")
			return
		}
		if docs == nil {
			docs = []T{}
		}
		utils.RespondWithJSON(w, http.StatusOK, docs)
	}
}

// GetOne returns a single document by id.
func GetOne[T any](res Resource) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		objID, ok := ParseID(w, ps.ByName("id"))
		if !ok {
			return
		}

		var doc T
		err := res.Collection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&doc)
		if err != nil {
			utils.RespondWithError(w, http.StatusNotFound, res.EntityType+" not found")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, doc)
	}
}

// ToggleActive is the PATCH handler flipping public visibility without
// resending the whole form payload. It updates only the active flag and
// returns the updated document.
func ToggleActive[T any](res Resource) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		objID, ok := ParseID(w, ps.ByName("id"))
		if !ok {
			return
		}

		active, err := parseActivePatch(r.Body)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Expected body {active: boolean}")
			return
		}

		// only the flag and the timestamp change; every other field stays
		update := bson.M{"$set": bson.M{"active": active, "updatedAt": time.Now()}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var updated T
		err = res.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, res.EntityType+" not found")
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update "+res.EntityType)
			return
		}

		res.Changed(ctx, objID.Hex(), "PATCH")
		utils.RespondWithJSON(w, http.StatusOK, updated)
	}
}

// Delete removes the document and releases its external image asset.
// Orphaned assets must not outlive the entity, so the document is fetched
// first and its handle destroyed before the delete.
func Delete(res Resource) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		objID, ok := ParseID(w, ps.ByName("id"))
		if !ok {
			return
		}

		var doc struct {
			Image *models.Image `bson:"image"`
			Logo  *models.Image `bson:"logo"`
		}
		err := res.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, res.EntityType+" not found")
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+res.EntityType)
			return
		}

		if err := imghost.Release(ctx, imghost.Active, doc.Image); err != nil {
			log.Printf("delete %s %s: image release failed: %v", res.EntityType, objID.Hex(), err)
		}
		if err := imghost.Release(ctx, imghost.Active, doc.Logo); err != nil {
			log.Printf("delete %s %s: logo release failed: %v", res.EntityType, objID.Hex(), err)
		}

		result, err := res.Collection.DeleteOne(ctx, bson.M{"_id": objID})
		if err != nil || result.DeletedCount == 0 {
			utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
			return
		}

		res.Changed(ctx, objID.Hex(), "DELETE")
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
	}
}
