package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopvana-backend/internal/cart"
)

type addToCartRequest struct {
	TemporaryUserID string         `json:"temporary_user_id"`
	ProductID       uint           `json:"product_id"`
	Quantity        any            `json:"quantity"`
	SelectedOptions map[string]any `json:"selected_options"`
}

// POST /cart
func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Item failed to add"})
		return
	}

	quantity, err := cart.ParseQuantity(req.Quantity)
	if err != nil {
		failJSON(c, err)
		return
	}

	optionIDs, err := cart.FlattenSelectedOptions(req.SelectedOptions)
	if err != nil {
		failJSON(c, err)
		return
	}

	_, err = h.Cart.AddToCart(c.Request.Context(), cart.AddParams{
		Token:     req.TemporaryUserID,
		ProductID: req.ProductID,
		Quantity:  quantity,
		OptionIDs: optionIDs,
	})
	if err != nil {
		failJSON(c, err)
		return
	}

	h.Metrics.CartAdds.Inc()
	c.JSON(http.StatusOK, gin.H{
		"msg":               "Item is being added successfully",
		"temporary_user_id": req.TemporaryUserID,
	})
}

type removeFromCartRequest struct {
	TemporaryUserID string `json:"temporary_user_id"`
	CartItemID      uint   `json:"cart_item_id"`
}

// POST /cart/remove
func (h *Handler) RemoveFromCart(c *gin.Context) {
	var req removeFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item not found in cart"})
		return
	}

	err := h.Cart.RemoveFromCart(c.Request.Context(), req.TemporaryUserID, req.CartItemID)
	if err != nil {
		if errors.Is(err, cart.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}

	h.Metrics.CartRemoves.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// GET /cart/:temporary_user_id
func (h *Handler) ListCartItems(c *gin.Context) {
	lines, err := h.Cart.ListItems(c.Request.Context(), c.Param("temporary_user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"cart_items": []cart.Line{}})
		return
	}

	h.Metrics.CartLists.Inc()
	c.JSON(http.StatusOK, gin.H{"cart_items": lines})
}
