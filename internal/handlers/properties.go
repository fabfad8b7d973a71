package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"real-estate-listings/internal/dto"
)

// PropertyService is the application-layer capability the handlers consume.
type PropertyService interface {
	GetProperties(ctx context.Context, filter dto.PropertyFilter) (*dto.PagedResult[dto.PropertyList], error)
	GetPropertyByID(ctx context.Context, id string) (*dto.PropertyDetail, error)
}

// PropertyHandler handles property listing requests.
type PropertyHandler struct {
	service    PropertyService
	log        *slog.Logger
	production bool
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(service PropertyService, log *slog.Logger, production bool) *PropertyHandler {
	return &PropertyHandler{
		service:    service,
		log:        log,
		production: production,
	}
}

// GetProperties handles GET /api/properties.
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	var filter dto.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Warn("malformed filter parameters", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusBadRequest, validationError(c, map[string][]string{
			"filter": {"Filter parameters could not be parsed"},
		}))
		return
	}

	if errs := filter.Validate(); errs != nil {
		h.log.Warn("invalid filter parameters", "errors", errs, "request_id", requestID(c))
		c.JSON(http.StatusBadRequest, validationError(c, errs))
		return
	}

	result, err := h.service.GetProperties(c.Request.Context(), filter)
	if err != nil {
		h.respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPropertyByID handles GET /api/properties/:id.
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id := c.Param("id")

	if strings.TrimSpace(id) == "" {
		c.JSON(http.StatusBadRequest, badRequest(c, "Invalid Property ID", "Property ID cannot be empty"))
		return
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, badRequest(c, "Invalid Property ID", "Property ID is not a valid identifier"))
		return
	}

	property, err := h.service.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		h.respondInternal(c, err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, notFound(c, fmt.Sprintf("Property with ID '%s' was not found", id)))
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) respondInternal(c *gin.Context, err error) {
	h.log.Error("request failed", "error", err, "path", c.Request.URL.Path, "request_id", requestID(c))
	detail := "An error occurred while processing your request"
	if !h.production {
		detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, internalError(c, detail))
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}
