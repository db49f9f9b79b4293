package utils

import (
	"reflect"
	"testing"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "json array",
			raw:  `["go","mongo","redis"]`,
			want: []string{"go", "mongo", "redis"},
		},
		{
			name: "json array with duplicates",
			raw:  `["exam","exam","tips"]`,
			want: []string{"exam", "tips"},
		},
		{
			name: "json array with whitespace entries",
			raw:  `["  a  ", "   ", "b"]`,
			want: []string{"a", "b"},
		},
		{
			name: "comma separated fallback",
			raw:  "one, two , three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "empty json array",
			raw:  `[]`,
			want: []string{},
		},
		{
			name: "case sensitive dedupe keeps both",
			raw:  `["Go","go"]`,
			want: []string{"Go", "go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStringList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseStringList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAppendUnique(t *testing.T) {
	list := []string{"a", "b"}

	if got := AppendUnique(list, "a"); len(got) != 2 {
		t.Errorf("duplicate appended: %v", got)
	}
	if got := AppendUnique(list, "   "); len(got) != 2 {
		t.Errorf("whitespace-only value appended: %v", got)
	}
	if got := AppendUnique(list, " c "); len(got) != 3 || got[2] != "c" {
		t.Errorf("expected trimmed append, got %v", got)
	}
}

func TestRemoveValue(t *testing.T) {
	list := []string{"a", "b", "c"}
	got := RemoveValue(list, "b")
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveValue = %v, want %v", got, want)
	}

	if got := RemoveValue(list, "missing"); !reflect.DeepEqual(got, list) {
		t.Errorf("RemoveValue of absent value changed list: %v", got)
	}
}

func TestParseFormBool(t *testing.T) {
	trues := []string{"true", "TRUE", "1", "on", "yes", " true "}
	for _, s := range trues {
		if !ParseFormBool(s) {
			t.Errorf("ParseFormBool(%q) = false, want true", s)
		}
	}
	falses := []string{"false", "0", "", "off", "garbage"}
	for _, s := range falses {
		if ParseFormBool(s) {
			t.Errorf("ParseFormBool(%q) = true, want false", s)
		}
	}
}
