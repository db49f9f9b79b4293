package middleware

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("user123", "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "user123" || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %+v, want user123/admin/admin", claims)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT(""); err == nil {
		t.Error("empty token accepted")
	}
	if _, err := ValidateJWT("Bearer not-a-token"); err == nil {
		t.Error("malformed token accepted")
	}
}

// A header without the Bearer scheme must be rejected outright, not have
// its first seven characters sliced off as if they were the prefix.
func TestValidateJWTRequiresBearerPrefix(t *testing.T) {
	token, err := CreateToken("user123", "admin", "admin", time.Hour)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	for _, header := range []string{token, "Basic " + token, "bearer " + token, "Bearer" + token} {
		if _, err := ValidateJWT(header); err == nil {
			t.Errorf("header %.20q... accepted without Bearer prefix", header)
		}
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := CreateToken("user123", "admin", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ValidateJWT("Bearer " + token); err == nil {
		t.Error("expired token accepted")
	}
}
