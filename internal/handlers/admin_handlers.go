package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uzmarket/uzmarket-golang/internal/database"
)

// AdminLoginInput carries the shared admin secret. No binding:"required":
// an absent password simply fails the comparison, it is not a 500.
type AdminLoginInput struct {
	Password string `json:"password"`
}

// AdminLogin is the handler for POST /api/admin/login.
// A one-shot password check. No session, no token; a matching password
// answers 200 and that is the entire admin capability.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	stored, err := h.Store.AdminPassword(c.Request.Context())
	if err != nil {
		// No admin row at all is indistinguishable from a wrong password.
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Parol noto'g'ri!",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(input.Password)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Parol noto'g'ri!",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Admin login muvaffaqiyatli!",
	})
}
