package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/uzmarket/uzmarket-golang/internal/models"
)

// --- Inputs ---

// CreateProductInput holds everything the client supplies for a new
// listing. The id and creation timestamp are server-assigned, so they are
// deliberately absent. Price is a pointer so that an explicit 0 passes the
// required check.
type CreateProductInput struct {
	UserID      string `json:"userId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int64 `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	SellerName  string `json:"sellerName" binding:"required"`
	Image       string `json:"image" binding:"required"`
}

// UpdateProductInput is CreateProductInput minus userId: the submitting
// user is fixed at creation and never overwritten.
type UpdateProductInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int64 `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	SellerName  string `json:"sellerName" binding:"required"`
	Image       string `json:"image" binding:"required"`
}

// GetProducts is the handler for GET /api/products.
// Returns every listing, newest first. No pagination.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"products": products,
	})
}

// CreateProduct is the handler for POST /api/products.
// A missing or malformed field is reported through the same generic 500
// envelope as a storage fault; there is no field-level error contract.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	productID, err := h.Store.InsertProduct(c.Request.Context(), models.Product{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
		Category:    input.Category,
		Location:    input.Location,
		Phone:       input.Phone,
		SellerName:  input.SellerName,
		Image:       input.Image,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "E'lon qo'shildi!",
		"productId": productID,
	})
}

// UpdateProduct is the handler for PUT /api/products/:id.
// An id that matches no row still answers with the success envelope; the
// affected-row count is intentionally not inspected.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	if _, err := h.Store.UpdateProduct(c.Request.Context(), id, models.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
		Category:    input.Category,
		Location:    input.Location,
		Phone:       input.Phone,
		SellerName:  input.SellerName,
		Image:       input.Image,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "E'lon yangilandi!",
	})
}

// DeleteProduct is the handler for DELETE /api/products/:id.
// Same silent no-op contract for unknown ids as UpdateProduct.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if _, err := h.Store.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "E'lon o'chirildi!",
	})
}

// productID parses the :id path parameter. A non-numeric segment never
// named a product, so it is answered as a 404 rather than a storage error.
func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "invalid product id",
		})
		return 0, false
	}
	return id, true
}
