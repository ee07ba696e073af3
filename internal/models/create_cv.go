package models

import "encoding/json"

// CreateCVRequest represents the JSON body for submitting a CV
// swagger:model CreateCVRequest
type CreateCVRequest struct {
	// Candidate email
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Free-form payload
	// example: {"skills":["go","sql"]}
	Data json.RawMessage `json:"data" swaggertype:"object"`
}

// CreateCVResponse represents a successful CV submission
// swagger:model CreateCVResponse
type CreateCVResponse struct {
	// Success message
	// example: CV created successfully
	Message string `json:"message"`

	// Stored CV
	CV CVDB `json:"cv"`
}
