package ports

import (
	"context"

	"github.com/google/uuid"

	"triage-risk-service/internal/core/domain"
)

// ModelArtifactRepository owns the single-active-artifact invariant:
// SaveAsActive must apply "deactivate previous active, insert new as active"
// as one atomic unit so a concurrent reader never observes zero or two
// active artifacts.
type ModelArtifactRepository interface {
	SaveAsActive(ctx context.Context, artifact *domain.ModelArtifact) error
	GetActive(ctx context.Context) (*domain.ModelArtifact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelArtifact, error)
	List(ctx context.Context) ([]*domain.ModelArtifact, error)
}

type PredictionRepository interface {
	Insert(ctx context.Context, prediction *domain.Prediction) error
	List(ctx context.Context, limit int) ([]*domain.Prediction, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit int) ([]*domain.Patient, error)
}
