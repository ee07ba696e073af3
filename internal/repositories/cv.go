package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/models"
)

// CVReadRepository handles cv read operations
type CVReadRepository struct {
	db *sqlx.DB
}

func NewCVReadRepository(db *sqlx.DB) *CVReadRepository {
	return &CVReadRepository{db: db}
}

// List returns stored CVs, newest first. A non-positive limit returns every row.
func (r *CVReadRepository) List(ctx context.Context, limit int) ([]models.CVDB, error) {
	const query = `
		SELECT id, email, data, created_at, updated_at
		FROM cvs
		ORDER BY created_at DESC, id
		LIMIT $1
	`

	// LIMIT NULL means no limit
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	cvs := make([]models.CVDB, 0)
	err := r.db.SelectContext(ctx, &cvs, query, limitArg)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{limitArg},
		"result", len(cvs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return cvs, nil
}

// CVWriteRepository handles cv write operations
type CVWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCVWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CVWriteRepository {
	return &CVWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a CV and returns the stored row.
func (r *CVWriteRepository) Save(ctx context.Context, email string, data []byte) (*models.CVDB, error) {
	const query = `
		INSERT INTO cvs (id, email, data, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW(), NOW())
		RETURNING id, email, data, created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{uuid.New(), email, string(data)}

	var cv models.CVDB
	err := sqlx.GetContext(ctx, executor, &cv, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", cv.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &cv, nil
}
