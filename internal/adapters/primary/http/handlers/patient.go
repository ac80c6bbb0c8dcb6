package handlers

import (
	"net/http"
	"strconv"

	"triage-risk-service/internal/adapters/primary/http/dto"
	"triage-risk-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreatePatient(c *gin.Context) {
	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patientSvc.Create(c.Request.Context(), req.Name, *req.Age, domain.Sex(req.Sex))
	if err != nil {
		log.WithError(err).Error("create patient failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPatientResponse(patient))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	patient, err := h.patientSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponse(patient))
}

func (h *Handler) ListPatients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	patients, err := h.patientSvc.List(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list patients failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		items = append(items, dto.ToPatientResponse(p))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	var req dto.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Sex != nil {
		updates["sex"] = *req.Sex
	}

	patient, err := h.patientSvc.Update(c.Request.Context(), id, updates)
	if err != nil {
		log.WithError(err).Error("update patient failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponse(patient))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient id"})
		return
	}

	if err := h.patientSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
