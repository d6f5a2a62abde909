package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /session
// Returns the caller's token when it is still valid, otherwise mints a
// fresh anonymous session. The token travels explicitly on every call;
// the server keeps no per-connection state.
func (h *Handler) GetOrCreateSession(c *gin.Context) {
	existing := c.Query("temporary_user_id")
	if existing == "" {
		existing = c.GetHeader("X-Temporary-User")
	}

	token, err := h.Sessions.GetOrCreateToken(c.Request.Context(), existing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	if token != existing {
		h.Metrics.SessionsMinted.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"temporary_user_id": token})
}
