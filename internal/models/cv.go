package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// CVDB represents a cv row in the database
type CVDB struct {
	ID        uuid.UUID      `json:"id" db:"id"`                 // Primary key
	Email     string         `json:"email" db:"email"`           // Candidate email
	Data      types.JSONText `json:"data" db:"data"`             // Free-form JSON payload
	CreatedAt time.Time      `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// CVListResponse represents a successful response with stored CVs
// swagger:model CVListResponse
type CVListResponse struct {
	// Stored CVs, newest first
	CVs []CVDB `json:"cvs"`
}

// CVErrorResponse represents an error response for cv endpoints
// swagger:model CVErrorResponse
type CVErrorResponse struct {
	// Error message
	// example: Failed to retrieve CVs
	Error string `json:"error"`
}
