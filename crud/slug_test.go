package crud

import "testing"

func TestNextSlug(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		existing []string
		want     string
	}{
		{
			name:     "free slug kept",
			base:     "hello-world",
			existing: nil,
			want:     "hello-world",
		},
		{
			name:     "taken slug gets -2",
			base:     "hello-world",
			existing: []string{"hello-world"},
			want:     "hello-world-2",
		},
		{
			name:     "suffix climbs past highest",
			base:     "hello-world",
			existing: []string{"hello-world", "hello-world-2", "hello-world-5"},
			want:     "hello-world-6",
		},
		{
			name:     "unrelated slugs ignored",
			base:     "hello",
			existing: []string{"hello-world", "hello-world-2"},
			want:     "hello",
		},
		{
			name:     "free base wins even with suffixed variants around",
			base:     "hello",
			existing: []string{"hello-2", "hello-3"},
			want:     "hello",
		},
		{
			name:     "numeric-looking base not confused",
			base:     "exam-2026",
			existing: []string{"exam-2026"},
			want:     "exam-2026-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextSlug(tt.base, tt.existing)
			if got != tt.want {
				t.Errorf("NextSlug(%q, %v) = %q, want %q", tt.base, tt.existing, got, tt.want)
			}
		})
	}
}
