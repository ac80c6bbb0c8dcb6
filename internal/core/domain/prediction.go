package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is a persisted risk decision together with the input that
// produced it.
type Prediction struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	RiskLevel RiskLevel      `json:"risk_level"`
	InputData map[string]any `json:"input_data,omitempty"`
}

type Patient struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Sex       Sex       `json:"sex"`
}
