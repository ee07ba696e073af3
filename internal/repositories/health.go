package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/yetkinlik/internal/logger"
)

// HealthRepository checks that PostgreSQL answers queries
type HealthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping runs a trivial query, which also catches a pool whose connections are all broken.
func (r *HealthRepository) Ping(ctx context.Context) error {
	const query = `SELECT 1`

	var one int
	err := r.db.GetContext(ctx, &one, query)

	logger.Log.Debugw("query", "sql", query, "result", one, "error", err)

	return err
}

// CacheHealthRepository checks that Redis answers PING
type CacheHealthRepository struct {
	client *redis.Client
}

func NewCacheHealthRepository(client *redis.Client) *CacheHealthRepository {
	return &CacheHealthRepository{client: client}
}

// Ping sends PING to Redis.
func (r *CacheHealthRepository) Ping(ctx context.Context) error {
	result, err := r.client.Ping(ctx).Result()

	logger.Log.Debugw("cache ping", "result", result, "error", err)

	return err
}
