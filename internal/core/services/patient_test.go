package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"triage-risk-service/internal/core/domain"
	"triage-risk-service/internal/testutil"
)

func TestPatientCreate(t *testing.T) {
	repo := new(testutil.MockPatientRepo)
	svc := NewPatientService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	patient, err := svc.Create(context.Background(), "Ada", 42, domain.SexFemale)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.Equal(t, "Ada", patient.Name)
	assert.Equal(t, 42, patient.Age)
	assert.Equal(t, domain.SexFemale, patient.Sex)
}

func TestPatientUpdate_PartialFields(t *testing.T) {
	repo := new(testutil.MockPatientRepo)
	svc := NewPatientService(repo)

	id := uuid.New()
	existing := &domain.Patient{ID: id, Name: "Ada", Age: 42, Sex: domain.SexFemale}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	patient, err := svc.Update(context.Background(), id, map[string]interface{}{"age": 43})

	assert.NoError(t, err)
	assert.Equal(t, 43, patient.Age)
	assert.Equal(t, "Ada", patient.Name)
}

func TestPatientUpdate_NotFound(t *testing.T) {
	repo := new(testutil.MockPatientRepo)
	svc := NewPatientService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrPatientNotFound)

	_, err := svc.Update(context.Background(), id, map[string]interface{}{"name": "Eve"})

	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPatientList_ClampsLimit(t *testing.T) {
	repo := new(testutil.MockPatientRepo)
	svc := NewPatientService(repo)

	repo.On("List", mock.Anything, 100).Return([]*domain.Patient{}, nil).Once()
	repo.On("List", mock.Anything, 500).Return([]*domain.Patient{}, nil).Once()

	_, err := svc.List(context.Background(), 0)
	assert.NoError(t, err)
	_, err = svc.List(context.Background(), 9999)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestPatientDelete(t *testing.T) {
	repo := new(testutil.MockPatientRepo)
	svc := NewPatientService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(domain.ErrPatientNotFound)

	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}
