package handler

import (
	"errors"
	"net/http"

	apperrors "fest-proposal-service/pkg/app_errors"
	"fest-proposal-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError maps domain errors onto HTTP statuses. Validation failures
// carry the wrapped detail (field name, index) back to the caller; anything
// unrecognized is a retryable 500.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrProposalNotFound),
		errors.Is(err, apperrors.ErrClubNotFound):
		log.Warn("resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAuthRequired):
		log.Warn("auth required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, apperrors.ErrEmptyForm),
		errors.Is(err, apperrors.ErrMissingField),
		errors.Is(err, apperrors.ErrFieldIndex),
		errors.Is(err, apperrors.ErrInconsistentMethod),
		errors.Is(err, apperrors.ErrDuplicateFieldName),
		errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition),
		errors.Is(err, apperrors.ErrExternalRegistration):
		log.Warn("conflicting operation")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
