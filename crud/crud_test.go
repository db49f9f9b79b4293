package crud

import (
	"net/http/httptest"
	"strings"
	"testing"

	"gurukul/slug"
)

func TestRequireSlug(t *testing.T) {
	tests := []struct {
		name     string
		active   bool
		slug     string
		allow    bool
		wantCode int
	}{
		{"active with slug", true, "hello-world", true, 0},
		{"inactive without slug", false, "", true, 0},
		{"active without slug", true, "", false, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			got := RequireSlug(w, tt.active, tt.slug)
			if got != tt.allow {
				t.Errorf("RequireSlug(%v, %q) = %v, want %v", tt.active, tt.slug, got, tt.allow)
			}
			if !tt.allow {
				if w.Code != tt.wantCode {
					t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
				}
				if !strings.Contains(w.Body.String(), "error") {
					t.Errorf("body %q missing error envelope", w.Body.String())
				}
			}
		})
	}
}

// A punctuation-only title derives to an empty slug; an active entity must
// not be persisted with it on any create or update path.
func TestRequireSlugRejectsDerivedEmptySlug(t *testing.T) {
	derived := slug.Generate("!!! ***")
	if derived != "" {
		t.Fatalf("slug.Generate(%q) = %q, want empty", "!!! ***", derived)
	}

	w := httptest.NewRecorder()
	if RequireSlug(w, true, derived) {
		t.Error("active entity with empty derived slug must be rejected")
	}
}

func TestParseActivePatch(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    bool
		wantErr bool
	}{
		{"activate", `{"active": true}`, true, false},
		{"deactivate", `{"active": false}`, false, false},
		{"missing field", `{}`, false, true},
		{"wrong type", `{"active": "yes"}`, false, true},
		{"empty body", ``, false, true},
		{"garbage", `not json`, false, true},
		{"extra fields ignored", `{"active": true, "title": "sneaky"}`, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseActivePatch(strings.NewReader(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseActivePatch(%q) error = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseActivePatch(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}
