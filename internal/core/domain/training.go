package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrainingRecord is one labelled row of the training set.
type TrainingRecord struct {
	Amount   float64        `json:"amount"`
	Category string         `json:"category"`
	Features map[string]any `json:"features,omitempty"`
	Label    RiskLevel      `json:"label"`
}

// ModelMetrics captures the cross-validated score and the winning
// hyperparameters of a training run.
type ModelMetrics struct {
	Score  float64        `json:"score"`
	Params map[string]int `json:"params"`
}

// ModelArtifact is a serialized fitted pipeline produced by a successful
// training run. At most one artifact is active at any time; the active flag
// is the only field ever mutated after creation.
type ModelArtifact struct {
	ID        uuid.UUID    `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Name      string       `json:"name"`
	Metrics   ModelMetrics `json:"metrics"`
	Artifact  []byte       `json:"-"`
	Active    bool         `json:"active"`
}
