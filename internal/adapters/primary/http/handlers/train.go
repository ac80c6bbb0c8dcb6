package handlers

import (
	"net/http"

	"triage-risk-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Train(c *gin.Context) {
	var req dto.TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.trainingSvc.Train(c.Request.Context(), req.ToDomain(), req.Scoring, req.CVFolds)
	if err != nil {
		log.WithError(err).Error("training run failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainResponse(artifact))
}

func (h *Handler) ListModels(c *gin.Context) {
	artifacts, err := h.trainingSvc.ListModels(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list models failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ModelResponse, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, dto.ToModelResponse(a))
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model id"})
		return
	}

	artifact, err := h.trainingSvc.GetModel(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelResponse(artifact))
}
