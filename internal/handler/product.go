package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopvana-backend/internal/product"
)

type createProductRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// POST /products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "No Data was found"})
		return
	}

	_, err := h.Products.Create(c.Request.Context(), product.CreateParams{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImagePath:   req.Image,
	})
	if err != nil {
		failJSON(c, err)
		return
	}

	h.Metrics.ProductWrites.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": "data is stored"})
}

// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product.MapToListEntries(products, h.AssetBaseURL),
	})
}
