package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Stats is the payload for the statistics endpoint.
type Stats struct {
	Total int `json:"total"`
	Today int `json:"today"`
}

// GetStats is the handler for GET /api/stats.
// "Today" is calendar-date equality against the storage clock (UTC), not a
// rolling 24 hour window.
func (h *Handlers) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.Store.CountProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	today, err := h.Store.CountProductsCreatedOn(ctx, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  Stats{Total: total, Today: today},
	})
}
