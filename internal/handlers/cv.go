package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/models"
	"github.com/sbilibin2017/yetkinlik/internal/services"
)

//go:generate mockgen -source=cv.go -destination=cv_mock.go -package=handlers

// maxBodyBytes caps request bodies for cv submissions.
const maxBodyBytes = 1 << 20

// CVLister defines the interface that the service must implement.
type CVLister interface {
	List(ctx context.Context) ([]models.CVDB, error)
}

// CVCreator defines the interface that the service must implement.
type CVCreator interface {
	Create(ctx context.Context, email string, data []byte) (*models.CVDB, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NewListCVsHandler returns an HTTP handler for listing stored CVs.
// @Summary List CVs
// @Description Returns stored CVs, newest first
// @Tags cvs
// @Produce json
// @Success 200 {object} models.CVListResponse "Stored CVs"
// @Failure 500 {object} models.CVErrorResponse "Failed to retrieve CVs"
// @Router /cvs [get]
func NewListCVsHandler(svc CVLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cvs, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list cvs", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.CVErrorResponse{
				Error: "Failed to retrieve CVs",
			})
			return
		}

		writeJSON(w, http.StatusOK, models.CVListResponse{CVs: cvs})
	}
}

// NewCreateCVHandler returns an HTTP handler for submitting a CV.
// @Summary Submit a CV
// @Description Stores a CV with an email and a free-form JSON payload
// @Tags cvs
// @Accept json
// @Produce json
// @Param createCVRequest body models.CreateCVRequest true "CV to store"
// @Success 201 {object} models.CreateCVResponse "CV stored"
// @Failure 400 {object} models.CVErrorResponse "Invalid request body, email or payload"
// @Failure 500 {object} models.CVErrorResponse "Internal server error"
// @Router /cvs [post]
func NewCreateCVHandler(svc CVCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCVRequest

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.CVErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		cv, err := svc.Create(r.Context(), req.Email, req.Data)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				writeJSON(w, http.StatusBadRequest, models.CVErrorResponse{
					Error: "Invalid email",
				})
			case errors.Is(err, services.ErrInvalidPayload):
				writeJSON(w, http.StatusBadRequest, models.CVErrorResponse{
					Error: "Invalid payload",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, models.CVErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.CreateCVResponse{
			Message: "CV created successfully",
			CV:      *cv,
		})
	}
}
