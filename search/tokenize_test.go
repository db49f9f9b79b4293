package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercase and dedupe",
			input: "Exam exam EXAM results",
			want:  []string{"exam", "results"},
		},
		{
			name:  "stopwords removed",
			input: "the history of india",
			want:  []string{"history", "india"},
		},
		{
			name:  "punctuation split",
			input: "UPSC-2026: prelims!",
			want:  []string{"upsc", "2026", "prelims"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
