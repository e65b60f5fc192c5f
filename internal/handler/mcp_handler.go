package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/card-rewards-gateway/internal/mcp"
)

// MCPHandler serves JSON-RPC over plain HTTP POST, one message per request.
type MCPHandler struct {
	server  *mcp.Server
	maxBody int64
}

func NewMCPHandler(server *mcp.Server, maxBody int64) *MCPHandler {
	return &MCPHandler{server: server, maxBody: maxBody}
}

func (h *MCPHandler) Handle(c *gin.Context) {
	body, ok := readBody(c, h.maxBody)
	if !ok {
		return
	}

	resp, reply := h.server.Handle(c.Request.Context(), body)
	if !reply {
		c.Status(http.StatusAccepted)
		return
	}
	c.Data(http.StatusOK, "application/json", resp)
}
