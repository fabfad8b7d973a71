package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/database"
)

// SeedService loads sample data into the store.
type SeedService interface {
	Seed(ctx context.Context, force bool) (*database.SeedResult, error)
}

// SeedHandler handles the development-only seeding endpoint.
type SeedHandler struct {
	seeder     SeedService
	log        *slog.Logger
	production bool
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seeder SeedService, log *slog.Logger, production bool) *SeedHandler {
	return &SeedHandler{
		seeder:     seeder,
		log:        log,
		production: production,
	}
}

// Seed handles POST /api/seed. Refused in production; force=true drops
// existing data before reseeding.
func (h *SeedHandler) Seed(c *gin.Context) {
	if h.production {
		h.log.Warn("seed endpoint called in production", "request_id", requestID(c))
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": "Database seeding is only allowed outside production",
		})
		return
	}

	force := c.Query("force") == "true"
	result, err := h.seeder.Seed(c.Request.Context(), force)
	if err != nil {
		h.log.Error("seeding failed", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Seeding failed",
			"message": err.Error(),
		})
		return
	}

	message := "Database seeded successfully"
	if result.Skipped {
		message = "Database already contains data, seeding skipped (use force=true to reseed)"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   message,
		"result":    result,
		"timestamp": time.Now().UTC(),
	})
}
