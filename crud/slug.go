package crud

import (
	"context"
	"net/http"
	"regexp"
	"strconv"

	"gurukul/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequireSlug guards the invariant that an active entity always has a
// slug: a title made of punctuation only derives to "", which would leave
// an active document publicly unreachable. Call on every create and
// update path before persisting.
func RequireSlug(w http.ResponseWriter, active bool, slug string) bool {
	if active && slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Slug is required for active entries")
		return false
	}
	return true
}

// EnsureUniqueSlug makes base unique within the collection by appending
// -2, -3, ... when taken. excludeID skips the document being updated so an
// unchanged slug stays stable.
func EnsureUniqueSlug(ctx context.Context, coll *mongo.Collection, base string, excludeID *primitive.ObjectID) (string, error) {
	if base == "" {
		return "", nil
	}

	filter := bson.M{"slug": bson.M{"$regex": "^" + regexp.QuoteMeta(base) + "(-[0-9]+)?$"}}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return "", err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Slug string `bson:"slug"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return "", err
	}

	existing := make([]string, len(docs))
	for i, d := range docs {
		existing[i] = d.Slug
	}
	return NextSlug(base, existing), nil
}

var suffixRe = regexp.MustCompile(`-([0-9]+)$`)

// NextSlug returns base when it is not taken, otherwise base with a
// numeric suffix above the highest already in use.
func NextSlug(base string, existing []string) string {
	taken := false
	maxN := 1
	for _, s := range existing {
		if s == base {
			taken = true
			continue
		}
		if m := suffixRe.FindStringSubmatch(s); m != nil && s[:len(s)-len(m[0])] == base {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxN {
				maxN = n
			}
		}
	}
	if !taken {
		return base
	}
	return base + "-" + strconv.Itoa(maxN+1)
}
