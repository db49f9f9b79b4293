package rdx

import (
	"log"
	"os"
	"time"

	"gurukul/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

const cacheTTL = 5 * time.Minute

// RdxGet returns the cached value for key, or "" on miss.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, cacheTTL).Err()
}

func RdxDel(keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := Conn.Del(globals.Ctx, keys...).Err(); err != nil {
		log.Printf("redis del %v: %v", keys, err)
	}
}
