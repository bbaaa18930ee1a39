package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gescom/backend/internal/domain/inventory"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gescom/backend/internal/interfaces/http/dto"
	"github.com/gescom/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	return c.GetString(middleware.RequestIDKey)
}

// getEnterpriseID extracts the enterprise scope from the request.
// Every business endpoint requires it.
func getEnterpriseID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("X-Enterprise-ID")
	if raw == "" {
		return uuid.Nil, errors.New("missing X-Enterprise-ID header")
	}
	return uuid.Parse(raw)
}

// getUserID extracts the acting user, when provided
func getUserID(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseIDParam parses a UUID path parameter
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// List sends a 200 response with pagination meta
func (h *BaseHandler) List(c *gin.Context, data any, filter shared.Filter, count int) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, filter.Page, filter.PageSize, count))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BindError sends a 400 response for a request binding failure, with
// per-field details when the failure came from validation
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	if details := middleware.FormatValidationErrors(err); details != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			"Request validation failed", getRequestID(c), details))
		return
	}
	h.BadRequest(c, err.Error())
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message, getRequestID(c)))
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, message, getRequestID(c)))
}

// HandleError maps domain errors to HTTP responses. Insufficient stock
// carries its shortage list in the error details.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	requestID := getRequestID(c)

	var stockErr *inventory.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponseWithDetails(
			stockErr.Code(), stockErr.Error(), requestID, stockErr.Shortages))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code),
			dto.NewErrorResponse(domainErr.Code, domainErr.Message, requestID))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.ErrCodeInternal, "An unexpected error occurred", requestID))
}
