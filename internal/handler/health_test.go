package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Health(t *testing.T) {
	upstream := newFakeUpstream(t)
	router := setupRouter(t, upstream.srv.URL)

	w := do(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
	assert.Empty(t, upstream.received(), "health must not call the payments API")
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("happy: upstream answers", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.respond(http.StatusOK, `{"service":"simulator","status":"operational"}`)
		router := setupRouter(t, upstream.srv.URL)

		w := do(router, http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","upstream":{"service":"simulator","status":"operational"}}`, w.Body.String())

		calls := upstream.received()
		require.Len(t, calls, 1)
		assert.Equal(t, "/simulator/status", calls[0].Path)
	})

	t.Run("bad: upstream 5xx is bad gateway", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.respond(http.StatusServiceUnavailable, `{"error":"maintenance"}`)
		router := setupRouter(t, upstream.srv.URL)

		w := do(router, http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"error":"maintenance","kind":"upstream_http","status_code":503}`, w.Body.String())
	})

	t.Run("bad: upstream unreachable", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		url := upstream.srv.URL
		upstream.srv.Close()
		router := setupRouter(t, url)

		w := do(router, http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"kind":"upstream_unreachable"`)
	})
}
