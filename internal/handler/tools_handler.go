package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/card-rewards-gateway/internal/mcp"
)

// ToolsHandler exposes the tool catalog as plain REST: a listing and one
// POST endpoint per tool taking the tool arguments as the body.
type ToolsHandler struct {
	registry *mcp.Registry
	maxBody  int64
}

func NewToolsHandler(registry *mcp.Registry, maxBody int64) *ToolsHandler {
	return &ToolsHandler{registry: registry, maxBody: maxBody}
}

func (h *ToolsHandler) List(c *gin.Context) {
	tools := h.registry.Tools()
	c.JSON(http.StatusOK, gin.H{
		"tools": tools,
		"total": len(tools),
	})
}

func (h *ToolsHandler) Invoke(c *gin.Context) {
	name := c.Param("name")
	if _, ok := h.registry.Lookup(name); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tool: " + name})
		return
	}

	body, ok := readBody(c, h.maxBody)
	if !ok {
		return
	}

	out, err := h.registry.Invoke(c.Request.Context(), name, body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}
