package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/ml"
	"triage-risk-service/internal/testutil"
)

func trainingRecords() []domain.TrainingRecord {
	var records []domain.TrainingRecord
	for i := 0; i < 4; i++ {
		records = append(records, domain.TrainingRecord{Amount: float64(10 + i*5), Category: "general", Label: domain.RiskLow})
	}
	for i := 0; i < 4; i++ {
		records = append(records, domain.TrainingRecord{Amount: float64(2000 + i*100), Category: "general", Label: domain.RiskMedium})
	}
	for i := 0; i < 4; i++ {
		records = append(records, domain.TrainingRecord{Amount: float64(15000 + i*500), Category: "general", Label: domain.RiskHigh})
	}
	return records
}

func TestTrain_SavesActiveArtifact(t *testing.T) {
	artifacts := new(testutil.MockModelArtifactRepo)
	svc := NewTrainingService(artifacts, "", 0)

	var saved *domain.ModelArtifact
	artifacts.On("SaveAsActive", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.ModelArtifact)
	}).Return(nil)

	artifact, err := svc.Train(context.Background(), trainingRecords(), ml.ScoringAccuracy, 2)

	assert.NoError(t, err)
	assert.Equal(t, saved, artifact)
	assert.True(t, saved.Active)
	assert.NotEmpty(t, saved.Artifact)
	assert.NotEmpty(t, saved.Name)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.GreaterOrEqual(t, saved.Metrics.Score, 0.0)

	// The stored blob must decode back into a working predictor.
	pipe, err := ml.Deserialize(saved.Artifact)
	assert.NoError(t, err)
	label, err := pipe.PredictRow(ml.Row{"amount": 12.0, "category": "general"})
	assert.NoError(t, err)
	_, err = domain.ParseRiskLevel(label)
	assert.NoError(t, err)
}

func TestTrain_EmptyRecordsNoSave(t *testing.T) {
	artifacts := new(testutil.MockModelArtifactRepo)
	svc := NewTrainingService(artifacts, "", 0)

	_, err := svc.Train(context.Background(), nil, "", 0)

	assert.ErrorIs(t, err, domain.ErrNoTrainingRecords)
	artifacts.AssertNotCalled(t, "SaveAsActive", mock.Anything, mock.Anything)
}

func TestTrain_TooFewRecordsForFoldsNoSave(t *testing.T) {
	artifacts := new(testutil.MockModelArtifactRepo)
	svc := NewTrainingService(artifacts, "", 0)

	_, err := svc.Train(context.Background(), trainingRecords()[:2], "", 3)

	assert.ErrorIs(t, err, domain.ErrTrainingFailed)
	artifacts.AssertNotCalled(t, "SaveAsActive", mock.Anything, mock.Anything)
}

func TestTrain_InvalidScoring(t *testing.T) {
	artifacts := new(testutil.MockModelArtifactRepo)
	svc := NewTrainingService(artifacts, "", 0)

	_, err := svc.Train(context.Background(), trainingRecords(), "roc_auc", 2)

	assert.ErrorIs(t, err, domain.ErrInvalidScoring)
	artifacts.AssertNotCalled(t, "SaveAsActive", mock.Anything, mock.Anything)
}

func TestTrain_AppliesDefaults(t *testing.T) {
	artifacts := new(testutil.MockModelArtifactRepo)
	svc := NewTrainingService(artifacts, "", 0)

	artifacts.On("SaveAsActive", mock.Anything, mock.Anything).Return(nil)

	// Empty scoring and zero folds fall back to f1_macro over 3 folds.
	artifact, err := svc.Train(context.Background(), trainingRecords(), "", 0)

	assert.NoError(t, err)
	assert.NotNil(t, artifact)
}

func TestListModels(t *testing.T) {
	artifacts := new(testutil.MockModelArtifactRepo)
	svc := NewTrainingService(artifacts, "", 0)

	want := []*domain.ModelArtifact{{ID: uuid.New(), Name: "KNN"}}
	artifacts.On("List", mock.Anything).Return(want, nil)

	got, err := svc.ListModels(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetModel_NotFound(t *testing.T) {
	artifacts := new(testutil.MockModelArtifactRepo)
	svc := NewTrainingService(artifacts, "", 0)

	id := uuid.New()
	artifacts.On("GetByID", mock.Anything, id).Return(nil, domain.ErrArtifactNotFound)

	_, err := svc.GetModel(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}
