package handler

import (
	"github.com/gin-gonic/gin"

	"shopvana-backend/internal/apperr"
	"shopvana-backend/internal/cart"
	"shopvana-backend/internal/metrics"
	"shopvana-backend/internal/option"
	"shopvana-backend/internal/product"
	"shopvana-backend/internal/session"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Sessions     session.Service
	Products     product.Service
	Options      option.Service
	Cart         cart.Service
	Metrics      *metrics.Registry
	AssetBaseURL string
}

func New(
	sessions session.Service,
	products product.Service,
	options option.Service,
	cartSvc cart.Service,
	registry *metrics.Registry,
	assetBaseURL string,
) *Handler {
	return &Handler{
		Sessions:     sessions,
		Products:     products,
		Options:      options,
		Cart:         cartSvc,
		Metrics:      registry,
		AssetBaseURL: assetBaseURL,
	}
}

// failJSON writes the conventional {success:false, msg} failure payload
// with the status the error's category carries.
func failJSON(c *gin.Context, err error) {
	c.JSON(apperr.StatusCode(err), gin.H{
		"success": false,
		"msg":     err.Error(),
	})
}
