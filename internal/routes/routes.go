package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uzmarket/uzmarket-golang/internal/handlers"
)

// CORSMiddleware permits cross-origin requests from any origin. The
// marketplace frontend is served separately, so every browser client is a
// cross-origin client.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight OPTIONS requests get an empty 204 and go no further.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware tags every response with an X-Request-ID so a client
// report can be matched to a server log line.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// SetupRouter wires every endpoint to its handler. gin.Default attaches the
// request logger and the recovery middleware, so a panicking handler still
// answers instead of killing the process.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())

	// --- Health/root ---
	router.GET("/", h.Index)

	api := router.Group("/api")
	{
		// --- Product Routes ---
		api.GET("/products", h.GetProducts)
		api.POST("/products", h.CreateProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		// --- Admin Routes ---
		api.POST("/admin/login", h.AdminLogin)

		// --- Stats Routes ---
		api.GET("/stats", h.GetStats)
	}

	return router
}
