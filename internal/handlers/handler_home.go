package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergioDaniel16/mipymes/internal/apperrors"
	"github.com/SergioDaniel16/mipymes/internal/core/services"
	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Liveness probe
// @Description Returns OK when the API is up
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// respondServiceError translates service and repository errors into HTTP
// responses. Unexpected errors are logged and hidden behind a generic 500.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, services.ErrAlreadyPosted),
		errors.Is(err, services.ErrEntryVoided),
		errors.Is(err, services.ErrMovementReconciled),
		errors.Is(err, services.ErrDocumentSettled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrUnbalanced),
		errors.Is(err, apperrors.ErrInsufficientStock),
		errors.Is(err, services.ErrEntryUnbalanced),
		errors.Is(err, services.ErrEntryMinLines),
		errors.Is(err, services.ErrEntryMinAccounts),
		errors.Is(err, services.ErrDescriptionMissing),
		errors.Is(err, services.ErrNatureTypeMismatch),
		errors.Is(err, services.ErrAccountNameMissing),
		errors.Is(err, services.ErrUnknownAccountType),
		errors.Is(err, services.ErrUnknownMovementType),
		errors.Is(err, services.ErrUnknownInventoryMovement),
		errors.Is(err, services.ErrUnknownPartyKind),
		errors.Is(err, services.ErrPaymentTooLarge),
		errors.Is(err, services.ErrDueBeforeIssue),
		errors.Is(err, services.ErrBankAccountInactive),
		errors.Is(err, services.ErrProductInactive),
		errors.Is(err, services.ErrPartyInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &appErr):
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
