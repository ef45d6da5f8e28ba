package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is the flat registration-fee bill for one appointment.
type Invoice struct {
	Reference   uuid.UUID   `json:"reference"`
	Appointment Appointment `json:"appointment"`
	Fee         float64     `json:"fee"`
	Currency    string      `json:"currency"`
	IssuedAt    time.Time   `json:"issuedAt"`
}
