package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/core/ports/output"
	"triage-risk-service/internal/ml"
)

// TrainingService runs the train/select/serialize/activate pipeline. A
// training run is synchronous and blocking; a failed run propagates to the
// caller and leaves the currently active artifact untouched.
type TrainingService struct {
	artifacts      ports.ModelArtifactRepository
	defaultScoring string
	defaultFolds   int
}

func NewTrainingService(artifacts ports.ModelArtifactRepository, defaultScoring string, defaultFolds int) *TrainingService {
	if defaultScoring == "" {
		defaultScoring = ml.ScoringF1Macro
	}
	if defaultFolds == 0 {
		defaultFolds = 3
	}
	return &TrainingService{artifacts: artifacts, defaultScoring: defaultScoring, defaultFolds: defaultFolds}
}

// Train selects the best candidate over the records, serializes its fitted
// pipeline and activates the new artifact in a single storage transaction.
func (s *TrainingService) Train(ctx context.Context, records []domain.TrainingRecord, scoring string, cvFolds int) (*domain.ModelArtifact, error) {
	if scoring == "" {
		scoring = s.defaultScoring
	}
	if cvFolds == 0 {
		cvFolds = s.defaultFolds
	}

	start := time.Now()
	result, err := ml.TrainSelect(records, scoring, cvFolds)
	if err != nil {
		return nil, err
	}

	blob, err := ml.Serialize(result.Pipeline)
	if err != nil {
		return nil, err
	}

	artifact := &domain.ModelArtifact{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Name:      result.Name,
		Metrics: domain.ModelMetrics{
			Score:  result.Score,
			Params: result.Params,
		},
		Artifact: blob,
		Active:   true,
	}

	if err := s.artifacts.SaveAsActive(ctx, artifact); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"model_id":    artifact.ID,
		"model":       artifact.Name,
		"score":       artifact.Metrics.Score,
		"records":     len(records),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("trained model activated")

	return artifact, nil
}

func (s *TrainingService) ListModels(ctx context.Context) ([]*domain.ModelArtifact, error) {
	return s.artifacts.List(ctx)
}

func (s *TrainingService) GetModel(ctx context.Context, id uuid.UUID) (*domain.ModelArtifact, error) {
	return s.artifacts.GetByID(ctx, id)
}
