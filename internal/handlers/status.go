package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/yetkinlik/internal/models"
)

//go:generate mockgen -source=status.go -destination=status_mock.go -package=handlers

// StatusChecker defines the interface that the service must implement.
type StatusChecker interface {
	Check(ctx context.Context) models.Status
}

func statusText(connected bool) string {
	if connected {
		return "Connected"
	}
	return "Not Connected"
}

// NewStatusHandler returns an HTTP handler reporting backend connectivity.
// @Summary Connection status
// @Description Reports whether the database and the cache are reachable
// @Tags status
// @Produce json
// @Success 200 {object} models.StatusResponse "Connected"
// @Failure 503 {object} models.StatusResponse "Not Connected"
// @Router /status [get]
func NewStatusHandler(svc StatusChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := svc.Check(r.Context())

		code := http.StatusOK
		if !status.Connected() {
			code = http.StatusServiceUnavailable
		}

		writeJSON(w, code, models.StatusResponse{
			Status:   statusText(status.Connected()),
			Database: status.Database,
			Cache:    status.Cache,
		})
	}
}
