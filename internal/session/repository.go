package session

import (
	"context"
	"encoding/json"
	"errors"

	"eventwall/internal/models"
	"eventwall/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Repository is the durable session slot. Load returns (nil, nil) when
// no session is stored; corrupt content is treated the same way.
type Repository interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}

// RedisRepository stores the serialized session under a single key.
type RedisRepository struct {
	rdb    *redis.Client
	key    string
	logger *observability.StoreLogger
}

// NewRedisRepository creates a RedisRepository writing to the given key.
func NewRedisRepository(rdb *redis.Client, key string) *RedisRepository {
	return &RedisRepository{
		rdb:    rdb,
		key:    key,
		logger: observability.NewStoreLogger("session_repository"),
	}
}

// Load reads the stored session. A missing key or an unreadable payload
// is "no session", never an error; only transport faults surface.
func (r *RedisRepository) Load(ctx context.Context) (*models.User, error) {
	if r.rdb == nil {
		return nil, nil
	}
	raw, err := r.rdb.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		r.logger.LogWarn("load", err)
		return nil, nil
	}
	return &user, nil
}

// Save writes the serialized session to the slot.
func (r *RedisRepository) Save(ctx context.Context, user *models.User) error {
	if r.rdb == nil {
		return models.NewPersistenceError(errors.New("redis client not configured"))
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return models.NewPersistenceError(err)
	}
	if err := r.rdb.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

// Clear removes the slot.
func (r *RedisRepository) Clear(ctx context.Context) error {
	if r.rdb == nil {
		return nil
	}
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}
