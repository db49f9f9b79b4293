package slug

import (
	"regexp"
	"testing"
)

// TestGenerate exercises the slug generator with typical titles, special
// characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "punctuation stripped",
			input: "Hello, World!",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "UPSC Prelims Results 2026",
			want:  "upsc-prelims-results-2026",
		},
		{
			name:  "already a valid slug",
			input: "current-affairs-august",
			want:  "current-affairs-august",
		},
		{
			name:  "ampersand and apostrophe",
			input: "Tips & Tricks for Beginner's Guide",
			want:  "tips-tricks-for-beginners-guide",
		},
		{
			name:  "leading and trailing spaces",
			input: "  spaced out  ",
			want:  "spaced-out",
		},
		{
			name:  "multiple spaces collapsed",
			input: "too    many     spaces",
			want:  "too-many-spaces",
		},
		{
			name:  "tabs and newlines treated as whitespace",
			input: "line\tone\nline two",
			want:  "line-one-line-two",
		},
		{
			name:  "hyphen runs collapsed",
			input: "already -- hyphenated --- title",
			want:  "already-hyphenated-title",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			input: "---edges---",
			want:  "edges",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n ",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "only hyphens",
			input: "-----",
			want:  "",
		},
		{
			name:  "numbers preserved",
			input: "Batch 2025-26 Admission",
			want:  "batch-2025-26-admission",
		},
		{
			name:  "version-like punctuation",
			input: "Syllabus (v2.0) [Revised]",
			want:  "syllabus-v20-revised",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies Generate(Generate(x)) == Generate(x).
func TestGenerate_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"hello-world",
		"  UPSC  CSE  2026  ",
		"!@#$",
		"",
		"a",
	}

	for _, in := range inputs {
		once := Generate(in)
		twice := Generate(once)
		if once != twice {
			t.Errorf("Generate not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

// TestGenerate_Charset verifies output never contains characters outside
// [a-z0-9-], never has consecutive hyphens, and never starts or ends with one.
func TestGenerate_Charset(t *testing.T) {
	valid := regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Hello, World!",
		"--- odd --- input ---",
		"ALL CAPS TITLE",
		"mixed  \t whitespace \n everywhere",
		"#42 @home $100",
		"___underscores___",
		"ends with punctuation?!",
	}

	for _, in := range inputs {
		got := Generate(in)
		if !valid.MatchString(got) {
			t.Errorf("Generate(%q) = %q, contains invalid characters or hyphen placement", in, got)
		}
	}
}
