package handlers

import (
	"triage-risk-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictionSvc *services.PredictionService
	trainingSvc   *services.TrainingService
	patientSvc    *services.PatientService
}

func New(
	predictionSvc *services.PredictionService,
	trainingSvc *services.TrainingService,
	patientSvc *services.PatientService,
) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		trainingSvc:   trainingSvc,
		patientSvc:    patientSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Risk classification
	r.POST("/predict", h.Predict)
	r.POST("/triage", h.Triage)
	r.GET("/predictions", h.ListPredictions)

	// Model lifecycle
	r.POST("/train", h.Train)
	r.GET("/models", h.ListModels)
	r.GET("/models/:id", h.GetModel)

	// Patients
	r.POST("/patients", h.CreatePatient)
	r.GET("/patients", h.ListPatients)
	r.GET("/patients/:id", h.GetPatient)
	r.PATCH("/patients/:id", h.UpdatePatient)
	r.DELETE("/patients/:id", h.DeletePatient)
}
