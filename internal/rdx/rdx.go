package rdx

import (
	"context"
	"log"
	"time"

	"dapuribu-be/internal/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the client used for cart and theme persistence.
func InitRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to ping Redis: %v", err)
	}

	log.Println("Redis connection established")
	return client
}
