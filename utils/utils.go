package utils

import (
	"encoding/json"
	rndm "math/rand"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// --- Random String Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Form Field Coercion ---
// Admin forms submit multipart/form-data, so compound values arrive as
// JSON-encoded strings and have to be coerced back into native types.

// ParseStringList decodes a JSON-encoded string array from a form field.
// Falls back to comma-splitting for plain values. Entries are trimmed;
// whitespace-only entries and exact duplicates are dropped.
func ParseStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var parts []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &parts); err != nil {
			parts = strings.Split(raw, ",")
		}
	} else {
		parts = strings.Split(raw, ",")
	}

	out := []string{}
	for _, p := range parts {
		out = AppendUnique(out, p)
	}
	return out
}

// AppendUnique appends the trimmed value only if it is non-empty and not
// already present (case-sensitive exact match).
func AppendUnique(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// RemoveValue filters the list to exclude the exact given value.
func RemoveValue(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// ParseFormBool coerces a form field into a boolean. Accepts JSON booleans
// and the usual string spellings; anything else is false.
func ParseFormBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

func ParseFormFloat(raw string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return f
}

func ParseFormInt(raw string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(raw))
	return n
}

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func ValidateImageFileType(w http.ResponseWriter, header *multipart.FileHeader) bool {
	mimeType := header.Header.Get("Content-Type")
	if !SupportedImageTypes[mimeType] {
		RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF.")
		return false
	}
	return true
}

// ToJSON marshals v into a string, mostly for cache writes.
func ToJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
