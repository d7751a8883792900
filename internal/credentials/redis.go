package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"writeassess/services"
)

const keyPrefix = "writeassess"

// Redis stores each key under writeassess:<session>:openai_api_key
type Redis struct {
	client *redis.Client
}

// InitRedis connects to Redis and verifies the connection
func InitRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func slotKey(sessionID string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, sessionID, services.CredentialSlot)
}

func (r *Redis) Load(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, slotKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return val, nil
}

func (r *Redis) Save(ctx context.Context, sessionID, apiKey string) error {
	if err := r.client.Set(ctx, slotKey(sessionID), apiKey, 0).Err(); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, slotKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
