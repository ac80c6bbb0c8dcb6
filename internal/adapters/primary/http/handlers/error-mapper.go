package handlers

import (
	"errors"
	"net/http"

	"triage-risk-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrPredictionNotFound),
		errors.Is(err, domain.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrNoTrainingRecords),
		errors.Is(err, domain.ErrInvalidScoring),
		errors.Is(err, domain.ErrInvalidFolds),
		errors.Is(err, domain.ErrInvalidRiskLevel):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// A training run that produced no usable fit is a hard failure: nothing
	// was installed, the previously active model is untouched.
	case errors.Is(err, domain.ErrTrainingFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
