package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopvana-backend/internal/logger"
	"shopvana-backend/internal/middleware"
)

// NewRouter wires the HTTP surface: request-id + logging middleware,
// rate limiting, and the catalog/cart routes.
func NewRouter(h *Handler, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, h.Metrics.Snapshot())
	})

	r.GET("/session", h.GetOrCreateSession)

	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.ListProducts)

	r.POST("/option-lists", h.CreateOptionList)
	r.POST("/options", h.CreateOption)
	r.GET("/options", h.ListOptionLists)

	r.POST("/cart", h.AddToCart)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.GET("/cart/:temporary_user_id", h.ListCartItems)

	return r
}
