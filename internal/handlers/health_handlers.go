package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index is the handler for GET /.
// The frontend pings it to confirm the backend is alive.
func (h *Handlers) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "UzMarket Backend API ishlamoqda! ✅",
		"version": Version,
	})
}
