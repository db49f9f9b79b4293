package currentaffairs

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLookupFilterByID(t *testing.T) {
	id := primitive.NewObjectID()

	filter := lookupFilter(id.Hex())
	if got, ok := filter["_id"].(primitive.ObjectID); !ok || got != id {
		t.Errorf("expected _id filter for %s, got %v", id.Hex(), filter)
	}
	if _, ok := filter["active"]; ok {
		t.Error("id lookup should not restrict on active")
	}
}

func TestParseDate(t *testing.T) {
	d := parseDate("2026-08-15")
	if d.Year() != 2026 || d.Month() != 8 || d.Day() != 15 {
		t.Errorf("got %v", d)
	}

	d = parseDate("2026-08-15T09:30:00Z")
	if d.Hour() != 9 || d.Minute() != 30 {
		t.Errorf("got %v", d)
	}

	if parseDate("").IsZero() || parseDate("garbage").IsZero() {
		t.Error("unparseable dates should fall back to now, not zero")
	}
}

func TestLookupFilterBySlug(t *testing.T) {
	for _, key := range []string{"union-budget-2026", "not-24-hex-chars", "UPPER"} {
		filter := lookupFilter(key)
		if filter["slug"] != key {
			t.Errorf("key %q: expected slug filter, got %v", key, filter)
		}
		if filter["active"] != true {
			t.Errorf("key %q: slug lookup must be restricted to active documents", key)
		}
	}
}
