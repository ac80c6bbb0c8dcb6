package dto

import (
	"time"

	"github.com/google/uuid"

	"triage-risk-service/internal/core/domain"
)

type CreatePatientRequest struct {
	Name string `json:"name" binding:"required,min=1"`
	Age  *int   `json:"age" binding:"required,gte=0,lte=120"`
	Sex  string `json:"sex" binding:"required,oneof=male female other"`
}

type UpdatePatientRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
	Age  *int    `json:"age" binding:"omitempty,gte=0,lte=120"`
	Sex  *string `json:"sex" binding:"omitempty,oneof=male female other"`
}

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt string    `json:"created_at"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Sex       string    `json:"sex"`
}

func ToPatientResponse(p *domain.Patient) PatientResponse {
	return PatientResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Name:      p.Name,
		Age:       p.Age,
		Sex:       string(p.Sex),
	}
}
