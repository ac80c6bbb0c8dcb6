package handlers

import (
	"net/http"
	"strconv"

	"triage-risk-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), req.ToDomain())
	if err != nil {
		log.WithError(err).Error("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}

func (h *Handler) Triage(c *gin.Context) {
	var req dto.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.predictionSvc.Triage(c.Request.Context(), req.ToDomain())
	if err != nil {
		log.WithError(err).Error("triage failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}

func (h *Handler) ListPredictions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	predictions, err := h.predictionSvc.List(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list predictions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PredictionRecordResponse, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, dto.ToPredictionRecordResponse(p))
	}
	c.JSON(http.StatusOK, items)
}
