package handlers

import (
	"net/http"
	"strings"

	"haki/services/access"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the navigation gate to clients.
type SessionHandler struct {
	Gate *access.SessionGate
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(gate *access.SessionGate) *SessionHandler {
	return &SessionHandler{Gate: gate}
}

// RouteCheckHandler handles GET /api/session/route-check?path=/admin.
// The bearer token is optional: without one the decision is made for a
// guest session. The endpoint always answers 200 with a decision, it
// never blocks navigation with an error.
func (h *SessionHandler) RouteCheckHandler(c *gin.Context) {
	path := c.Query("path")
	if path == "" || !strings.HasPrefix(path, "/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required and must be absolute"})
		return
	}

	token := ""
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	}

	decision := h.Gate.Evaluate(c.Request.Context(), token, path)
	c.JSON(http.StatusOK, decision)
}
