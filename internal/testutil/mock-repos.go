package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"triage-risk-service/internal/core/domain"
)

// MockModelArtifactRepo is a mock of ModelArtifactRepository.
type MockModelArtifactRepo struct {
	mock.Mock
}

func (m *MockModelArtifactRepo) SaveAsActive(ctx context.Context, artifact *domain.ModelArtifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockModelArtifactRepo) GetActive(ctx context.Context) (*domain.ModelArtifact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelArtifact), args.Error(1)
}

func (m *MockModelArtifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelArtifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelArtifact), args.Error(1)
}

func (m *MockModelArtifactRepo) List(ctx context.Context) ([]*domain.ModelArtifact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ModelArtifact), args.Error(1)
}

// MockPredictionRepo is a mock of PredictionRepository.
type MockPredictionRepo struct {
	mock.Mock
}

func (m *MockPredictionRepo) Insert(ctx context.Context, prediction *domain.Prediction) error {
	args := m.Called(ctx, prediction)
	return args.Error(0)
}

func (m *MockPredictionRepo) List(ctx context.Context, limit int) ([]*domain.Prediction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Prediction), args.Error(1)
}

// MockPatientRepo is a mock of PatientRepository.
type MockPatientRepo struct {
	mock.Mock
}

func (m *MockPatientRepo) Create(ctx context.Context, patient *domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

func (m *MockPatientRepo) Update(ctx context.Context, patient *domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPatientRepo) List(ctx context.Context, limit int) ([]*domain.Patient, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Patient), args.Error(1)
}
