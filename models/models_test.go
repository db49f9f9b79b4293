package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// An entity created without an image must persist with no image field at
// all, not a null or empty sub-document.
func TestImagelessEntityOmitsImageField(t *testing.T) {
	now := time.Now()

	docs := map[string]interface{}{
		"course": Course{Title: "Algebra", Slug: "algebra", CreatedAt: now, UpdatedAt: now},
		"result": Result{StudentName: "Asha", ExamName: "NEET", Year: 2026, CreatedAt: now, UpdatedAt: now},
		"blog":   Blog{Title: "Hello", Slug: "hello", CreatedAt: now, UpdatedAt: now},
	}

	for name, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			t.Fatalf("%s: bson.Marshal: %v", name, err)
		}
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err != nil {
			t.Fatalf("%s: bson.Unmarshal: %v", name, err)
		}
		if _, ok := m["image"]; ok {
			t.Errorf("%s without image marshals an image field: %v", name, m["image"])
		}
	}
}

func TestImageFieldPresentWhenSet(t *testing.T) {
	course := Course{
		Title: "Algebra",
		Slug:  "algebra",
		Image: &Image{URL: "https://cdn.example.com/courses/a.jpg", PublicID: "courses/a"},
	}

	raw, err := bson.Marshal(course)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}
	img, ok := m["image"].(bson.M)
	if !ok {
		t.Fatalf("image field missing or wrong shape: %v", m["image"])
	}
	if img["public_id"] != "courses/a" {
		t.Errorf("public_id = %v, want courses/a", img["public_id"])
	}
}
