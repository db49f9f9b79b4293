package globals

import (
	"context"
	"os"
)

var (
	// tokenSigningAlgo = jwt.SigningMethodHS256
	JwtSecret = []byte(getEnv("JWT_SECRET", "change_this_secret"))
)

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
