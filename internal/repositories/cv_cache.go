package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/models"
)

// ErrCacheMiss is returned when the requested list is not cached.
var ErrCacheMiss = errors.New("cv list not found in cache")

const cvListKeyPattern = "cvs:list:*"

// CVCacheRepository caches CV lists in Redis
type CVCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

// NewCVCacheRepository creates a new repository instance with the given TTL
func NewCVCacheRepository(client *redis.Client, expiration time.Duration) *CVCacheRepository {
	return &CVCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func cvListKey(limit int) string {
	return fmt.Sprintf("cvs:list:%d", limit)
}

// GetList returns the cached list for the given limit
func (r *CVCacheRepository) GetList(ctx context.Context, limit int) ([]models.CVDB, error) {
	key := cvListKey(limit)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var cvs []models.CVDB
	if err := json.Unmarshal(val, &cvs); err != nil {
		logger.Log.Infow("cache get", "key", key, "size", len(val), "error", err)
		return nil, fmt.Errorf("decode cached cv list: %w", err)
	}

	logger.Log.Infow("cache get", "key", key, "result", len(cvs), "error", nil)

	return cvs, nil
}

// SetList caches a list for the given limit with expiration
func (r *CVCacheRepository) SetList(ctx context.Context, limit int, cvs []models.CVDB) error {
	key := cvListKey(limit)

	data, err := json.Marshal(cvs)
	if err != nil {
		return fmt.Errorf("encode cv list: %w", err)
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "result", len(cvs), "error", err)

	return err
}

// Invalidate drops every cached list
func (r *CVCacheRepository) Invalidate(ctx context.Context) error {
	var keys []string

	iter := r.client.Scan(ctx, 0, cvListKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Infow("cache invalidate", "pattern", cvListKeyPattern, "error", err)
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("cache invalidate", "keys", keys, "error", err)

	return err
}
