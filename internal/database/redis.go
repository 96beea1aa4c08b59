package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"taskboard-api/internal/config"
)

var redisClient *redis.Client

// InitRedis initializes the Redis connection used for cross-instance
// event fan-out. The service runs without Redis; broadcasts then stay
// local to this instance.
func InitRedis(cfg config.RedisConfig, log *zap.Logger) error {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established successfully",
		zap.String("host", cfg.Host),
		zap.Int("db", cfg.DB))
	return nil
}

// GetRedis returns the Redis client, or nil when Redis is unavailable
func GetRedis() *redis.Client {
	return redisClient
}

// PublishRoomEvent publishes an event envelope to a room channel so
// subscribers on other instances receive it.
func PublishRoomEvent(ctx context.Context, room string, payload []byte) error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Publish(ctx, roomChannel(room), payload).Err()
}

// SubscribeRoomEvents subscribes to a room channel. Returns nil when
// Redis is unavailable.
func SubscribeRoomEvents(ctx context.Context, room string) *redis.PubSub {
	if redisClient == nil {
		return nil
	}
	return redisClient.Subscribe(ctx, roomChannel(room))
}

func roomChannel(room string) string {
	return fmt.Sprintf("room:%s", room)
}
