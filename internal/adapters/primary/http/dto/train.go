package dto

import (
	"time"

	"github.com/google/uuid"

	"triage-risk-service/internal/core/domain"
)

type TrainRecordRequest struct {
	Amount   *float64       `json:"amount" binding:"required,gte=0"`
	Category string         `json:"category" binding:"required,min=1"`
	Features map[string]any `json:"features"`
	Label    string         `json:"label" binding:"required,oneof=low medium high"`
}

type TrainRequest struct {
	Records []TrainRecordRequest `json:"records" binding:"required,min=1,dive"`
	Scoring string               `json:"scoring"`
	CVFolds int                  `json:"cv_folds" binding:"omitempty,gte=2"`
}

func (r TrainRequest) ToDomain() []domain.TrainingRecord {
	records := make([]domain.TrainingRecord, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, domain.TrainingRecord{
			Amount:   *rec.Amount,
			Category: rec.Category,
			Features: rec.Features,
			Label:    domain.RiskLevel(rec.Label),
		})
	}
	return records
}

type TrainResponse struct {
	BestModelName string         `json:"best_model_name"`
	BestScore     float64        `json:"best_score"`
	BestParams    map[string]int `json:"best_params"`
	ModelID       uuid.UUID      `json:"model_id"`
}

func ToTrainResponse(a *domain.ModelArtifact) TrainResponse {
	return TrainResponse{
		BestModelName: a.Name,
		BestScore:     a.Metrics.Score,
		BestParams:    a.Metrics.Params,
		ModelID:       a.ID,
	}
}

type ModelResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	CreatedAt string              `json:"created_at"`
	Metrics   domain.ModelMetrics `json:"metrics"`
	Active    bool                `json:"active"`
}

func ToModelResponse(a *domain.ModelArtifact) ModelResponse {
	return ModelResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		Metrics:   a.Metrics,
		Active:    a.Active,
	}
}
