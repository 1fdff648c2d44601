package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/logger"
	"github.com/marketplace/invoicing/internal/middleware"
	"github.com/marketplace/invoicing/internal/services"
	"github.com/marketplace/invoicing/internal/types/api/responses"
)

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.JSON(statusCode, responses.ErrorResponse{Error: message})
}

// handleServiceError maps service errors onto HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var (
		validationErr   *services.ValidationError
		notFoundErr     *services.NotFoundError
		forbiddenErr    *services.ForbiddenError
		invalidStateErr *services.InvalidStateError
		notReadyErr     *services.NotReadyError
		renderErr       *services.RenderError
		deliveryErr     *services.DeliveryError
	)

	switch {
	case errors.As(err, &validationErr):
		sendValidationError(c, validationErr)
	case errors.As(err, &notFoundErr):
		sendError(c, http.StatusNotFound, notFoundErr.Error(), err)
	case errors.As(err, &forbiddenErr):
		sendError(c, http.StatusForbidden, "Invoice belongs to another user", err)
	case errors.As(err, &invalidStateErr):
		sendError(c, http.StatusConflict, invalidStateErr.Reason, err)
	case errors.As(err, &notReadyErr):
		sendError(c, http.StatusConflict, "Invoice artifact is not ready", err)
	case errors.As(err, &renderErr):
		sendError(c, http.StatusBadGateway, "Failed to render invoice", err)
	case errors.As(err, &deliveryErr):
		sendError(c, http.StatusBadGateway, "Failed to deliver invoice", err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

func sendValidationError(c *gin.Context, verr *services.ValidationError) {
	fields := make([]responses.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, responses.FieldError{Field: f.Field, Message: f.Message})
	}
	logger.Debug("Request failed validation",
		zap.String("path", c.Request.URL.Path),
		zap.Int("field_count", len(fields)))
	c.JSON(http.StatusUnprocessableEntity, responses.ValidationErrorResponse{
		Error:  "Validation failed",
		Fields: fields,
	})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// requireUserID reads the caller resolved by middleware.RequireUser
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "User not resolved", errors.New("missing user id in context"))
		return uuid.Nil, false
	}
	return userID, true
}

func parseInvoiceID(c *gin.Context) (uuid.UUID, bool) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid invoice ID format", err)
		return uuid.Nil, false
	}
	return invoiceID, true
}
