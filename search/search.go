package search

import (
	"context"
	"fmt"
	"strings"

	"gurukul/db"
	"gurukul/models"
	"gurukul/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Entity is the projection stored in the search index and returned to the
// public search endpoint.
type Entity struct {
	EntityID   string `json:"entityid"`
	EntityType string `json:"entitytype"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
}

func invertedKey(token string) string { return "idx:token:" + token }
func docKey(id string) string         { return "idx:doc:" + id }

// IndexEntity stores the entity projection and adds it to each token's set.
func IndexEntity(ctx context.Context, ent Entity, text string) error {
	tokens := Tokenize(ent.Title + " " + text)
	if len(tokens) == 0 {
		return nil
	}

	pipe := rdx.Conn.Pipeline()
	pipe.HSet(ctx, docKey(ent.EntityID), map[string]interface{}{
		"entitytype": ent.EntityType,
		"title":      ent.Title,
		"slug":       ent.Slug,
		"tokens":     strings.Join(tokens, " "),
	})
	for _, token := range tokens {
		pipe.SAdd(ctx, invertedKey(token), ent.EntityID)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RemoveEntity drops the entity from every token set it was indexed under.
func RemoveEntity(ctx context.Context, id string) error {
	fields, err := rdx.Conn.HGetAll(ctx, docKey(id)).Result()
	if err != nil || len(fields) == 0 {
		return err
	}

	pipe := rdx.Conn.Pipeline()
	for _, token := range strings.Fields(fields["tokens"]) {
		pipe.SRem(ctx, invertedKey(token), id)
	}
	pipe.Del(ctx, docKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Query intersects the token sets and returns the matching entities.
func Query(ctx context.Context, q string, limit int) ([]Entity, error) {
	tokens := Tokenize(q)
	if len(tokens) == 0 {
		return []Entity{}, nil
	}

	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = invertedKey(t)
	}

	ids, err := rdx.Conn.SInter(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := []Entity{}
	for _, id := range ids {
		if limit > 0 && len(out) >= limit {
			break
		}
		fields, err := rdx.Conn.HGetAll(ctx, docKey(id)).Result()
		if err != nil || len(fields) == 0 {
			continue
		}
		out = append(out, Entity{
			EntityID:   id,
			EntityType: fields["entitytype"],
			Title:      fields["title"],
			Slug:       fields["slug"],
		})
	}
	return out, nil
}

// HandleIndexEvent reacts to an entity-change event from the message queue.
// Only public, searchable resources are indexed; inactive documents are
// removed so the public search never surfaces them.
func HandleIndexEvent(ctx context.Context, event models.Index) error {
	if event.Method == "DELETE" {
		return RemoveEntity(ctx, event.EntityId)
	}

	var coll *mongo.Collection
	switch event.EntityType {
	case "blog":
		coll = db.BlogsCollection
	case "course":
		coll = db.CoursesCollection
	case "currentaffair":
		coll = db.CurrentAffairsCollection
	default:
		return nil
	}

	objID, err := primitive.ObjectIDFromHex(event.EntityId)
	if err != nil {
		return fmt.Errorf("bad entity id %q: %w", event.EntityId, err)
	}

	var doc struct {
		Title       string `bson:"title"`
		Slug        string `bson:"slug"`
		Content     string `bson:"content"`
		Description string `bson:"description"`
		Active      bool   `bson:"active"`
	}
	if err := coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return RemoveEntity(ctx, event.EntityId)
		}
		return err
	}

	if !doc.Active {
		return RemoveEntity(ctx, event.EntityId)
	}

	return IndexEntity(ctx, Entity{
		EntityID:   event.EntityId,
		EntityType: event.EntityType,
		Title:      doc.Title,
		Slug:       doc.Slug,
	}, doc.Content+" "+doc.Description)
}
