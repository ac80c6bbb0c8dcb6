package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/core/ports/output"
)

type PatientService struct {
	repo ports.PatientRepository
}

func NewPatientService(repo ports.PatientRepository) *PatientService {
	return &PatientService{repo: repo}
}

func (s *PatientService) Create(ctx context.Context, name string, age int, sex domain.Sex) (*domain.Patient, error) {
	patient := &domain.Patient{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Name:      name,
		Age:       age,
		Sex:       sex,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) List(ctx context.Context, limit int) ([]*domain.Patient, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	return s.repo.List(ctx, limit)
}

func (s *PatientService) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Patient, error) {
	patient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["name"]; ok && v != nil {
		patient.Name = v.(string)
	}
	if v, ok := updates["age"]; ok && v != nil {
		patient.Age = v.(int)
	}
	if v, ok := updates["sex"]; ok && v != nil {
		patient.Sex = domain.Sex(v.(string))
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
