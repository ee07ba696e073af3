package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/models"
)

//go:generate mockgen -source=status.go -destination=status_mock.go -package=services

const pingTimeout = 3 * time.Second

// Pinger checks that a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusService reports backend connectivity.
type StatusService struct {
	db    Pinger
	cache Pinger
}

// NewStatusService creates a new StatusService. cache may be nil when caching is disabled.
func NewStatusService(db Pinger, cache Pinger) *StatusService {
	return &StatusService{db: db, cache: cache}
}

// Check pings every backend. Failures are reported in the status, never as an error.
func (svc *StatusService) Check(ctx context.Context) models.Status {
	var status models.Status

	status.Database = ping(ctx, "database", svc.db)
	if svc.cache != nil {
		status.Cache = ping(ctx, "cache", svc.cache)
	}

	return status
}

func ping(ctx context.Context, name string, p Pinger) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		logger.Log.Warnw("backend unreachable", "backend", name, "err", err)
		return false
	}
	return true
}
