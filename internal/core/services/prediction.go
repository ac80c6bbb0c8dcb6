package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/core/ports/output"
	"triage-risk-service/internal/ml"
)

// PredictionService classifies inputs and persists the decisions. The
// transaction path consults the active model artifact first and falls back
// to the rule engine on any failure; the triage path is rule-only.
type PredictionService struct {
	predictions ports.PredictionRepository
	artifacts   ports.ModelArtifactRepository
}

func NewPredictionService(predictions ports.PredictionRepository, artifacts ports.ModelArtifactRepository) *PredictionService {
	return &PredictionService{predictions: predictions, artifacts: artifacts}
}

func (s *PredictionService) Predict(ctx context.Context, in domain.TransactionInput) (*domain.Prediction, error) {
	risk := s.inferTransaction(ctx, in)

	rec := &domain.Prediction{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		RiskLevel: risk,
		InputData: transactionData(in),
	}
	if err := s.predictions.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *PredictionService) Triage(ctx context.Context, in domain.TriageInput) (*domain.Prediction, error) {
	rec := &domain.Prediction{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		RiskLevel: ml.ClassifyTriage(in),
		InputData: triageData(in),
	}
	if err := s.predictions.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *PredictionService) List(ctx context.Context, limit int) ([]*domain.Prediction, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.predictions.List(ctx, limit)
}

// inferTransaction is total: any failure on the model path ends in the rule
// engine, which cannot fail. The absence of an active model is the normal
// cold-start state and is not logged.
func (s *PredictionService) inferTransaction(ctx context.Context, in domain.TransactionInput) domain.RiskLevel {
	risk, err := s.modelRisk(ctx, in)
	if err != nil {
		if !errors.Is(err, domain.ErrNoActiveModel) {
			log.WithError(err).Warn("model inference failed, falling back to rule engine")
		}
		return ml.ClassifyTransaction(in)
	}
	return risk
}

// modelRisk attempts artifact-backed prediction. The artifact is re-read
// and re-decoded on every call so a freshly activated model takes effect
// immediately.
func (s *PredictionService) modelRisk(ctx context.Context, in domain.TransactionInput) (domain.RiskLevel, error) {
	artifact, err := s.artifacts.GetActive(ctx)
	if err != nil {
		return "", err
	}

	pipe, err := ml.Deserialize(artifact.Artifact)
	if err != nil {
		return "", fmt.Errorf("load artifact %s: %w", artifact.ID, err)
	}

	label, err := pipe.PredictRow(ml.TransactionRow(in))
	if err != nil {
		return "", fmt.Errorf("predict with artifact %s: %w", artifact.ID, err)
	}

	risk, err := domain.ParseRiskLevel(label)
	if err != nil {
		return "", fmt.Errorf("artifact %s returned label %q: %w", artifact.ID, label, err)
	}
	return risk, nil
}

func transactionData(in domain.TransactionInput) map[string]any {
	data := map[string]any{
		"amount":   in.Amount,
		"category": in.Category,
	}
	if len(in.Features) > 0 {
		data["features"] = in.Features
	}
	return data
}

func triageData(in domain.TriageInput) map[string]any {
	data := map[string]any{
		"age":                 in.Age,
		"sex":                 string(in.Sex),
		"fever":               in.Fever,
		"cough":               in.Cough,
		"shortness_of_breath": in.ShortnessOfBreath,
	}
	if in.Name != "" {
		data["name"] = in.Name
	}
	if in.Antecedents != "" {
		data["antecedents"] = in.Antecedents
	}
	return data
}
