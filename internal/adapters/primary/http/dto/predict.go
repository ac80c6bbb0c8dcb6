package dto

import (
	"time"

	"github.com/google/uuid"

	"triage-risk-service/internal/core/domain"
)

// Pointer fields distinguish "absent" from legitimate zero values (amount 0,
// age 0, symptom false) under the required binding.

type PredictRequest struct {
	Amount   *float64       `json:"amount" binding:"required,gte=0"`
	Category string         `json:"category" binding:"required,min=1"`
	Features map[string]any `json:"features"`
}

func (r PredictRequest) ToDomain() domain.TransactionInput {
	return domain.TransactionInput{
		Amount:   *r.Amount,
		Category: r.Category,
		Features: r.Features,
	}
}

type TriageRequest struct {
	Name              string `json:"name"`
	Age               *int   `json:"age" binding:"required,gte=0,lte=120"`
	Sex               string `json:"sex" binding:"required,oneof=male female other"`
	Fever             *bool  `json:"fever" binding:"required"`
	Cough             *bool  `json:"cough" binding:"required"`
	ShortnessOfBreath *bool  `json:"shortness_of_breath" binding:"required"`
	Antecedents       string `json:"antecedents"`
}

func (r TriageRequest) ToDomain() domain.TriageInput {
	return domain.TriageInput{
		Name:              r.Name,
		Age:               *r.Age,
		Sex:               domain.Sex(r.Sex),
		Fever:             *r.Fever,
		Cough:             *r.Cough,
		ShortnessOfBreath: *r.ShortnessOfBreath,
		Antecedents:       r.Antecedents,
	}
}

type PredictionResponse struct {
	RiskLevel string    `json:"risk_level"`
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
}

func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		RiskLevel: string(p.RiskLevel),
		ID:        p.ID,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

type PredictionRecordResponse struct {
	ID        uuid.UUID      `json:"id"`
	RiskLevel string         `json:"risk_level"`
	CreatedAt string         `json:"created_at"`
	InputData map[string]any `json:"input_data,omitempty"`
}

func ToPredictionRecordResponse(p *domain.Prediction) PredictionRecordResponse {
	return PredictionRecordResponse{
		ID:        p.ID,
		RiskLevel: string(p.RiskLevel),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		InputData: p.InputData,
	}
}
