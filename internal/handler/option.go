package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopvana-backend/internal/option"
)

type createOptionListRequest struct {
	Name          string `json:"name"`
	SelectionType string `json:"selection_type"`
}

// POST /option-lists
func (h *Handler) CreateOptionList(c *gin.Context) {
	var req createOptionListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "no data found"})
		return
	}

	list, err := h.Options.CreateList(c.Request.Context(), req.Name, req.SelectionType)
	if err != nil {
		failJSON(c, err)
		return
	}

	h.Metrics.OptionWrites.Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"msg":     "new options list is created " + list.Name,
	})
}

type createOptionRequest struct {
	Name       string `json:"name"`
	Surcharge  string `json:"surcharge"`
	OptionList uint   `json:"option_list"`
}

// POST /options
func (h *Handler) CreateOption(c *gin.Context) {
	var req createOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "no data is found"})
		return
	}

	opt, err := h.Options.CreateOption(c.Request.Context(), option.CreateOptionParams{
		Name:         req.Name,
		Surcharge:    req.Surcharge,
		OptionListID: req.OptionList,
	})
	if err != nil {
		failJSON(c, err)
		return
	}

	h.Metrics.OptionWrites.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": opt})
}

// GET /options
func (h *Handler) ListOptionLists(c *gin.Context) {
	grouped, err := h.Options.ListGrouped(c.Request.Context())
	if err != nil {
		failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": grouped})
}
