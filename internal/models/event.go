package models

import "encoding/json"

// CVCreatedEvent is published to Kafka after a CV has been stored.
type CVCreatedEvent struct {
	CVID      string          `json:"cv_id"`     // CVID is the identifier of the stored CV.
	Email     string          `json:"email"`     // Email is the candidate email.
	Data      json.RawMessage `json:"data"`      // Data is the stored payload.
	Timestamp int64           `json:"timestamp"` // Timestamp is the Unix time (in seconds) the CV was created.
}
