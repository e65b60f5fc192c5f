package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsHandler_List(t *testing.T) {
	upstream := newFakeUpstream(t)
	router := setupRouter(t, upstream.srv.URL)

	w := do(router, http.MethodGet, "/tools", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tools []struct {
			Name        string          `json:"name"`
			InputSchema json.RawMessage `json:"inputSchema"`
		} `json:"tools"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 70, resp.Total)
	assert.Len(t, resp.Tools, 70)
	assert.Equal(t, "health_check", resp.Tools[0].Name)
}

func TestToolsHandler_Invoke(t *testing.T) {
	t.Run("happy: remote JSON returned verbatim", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.respond(http.StatusOK, `{"offers":[],"total":0,"current_page":1}`)
		router := setupRouter(t, upstream.srv.URL)

		w := do(router, http.MethodPost, "/tools/list_offers", `{"category":"DINING","per_page":10}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"offers":[],"total":0,"current_page":1}`, w.Body.String())
		calls := upstream.received()
		require.Len(t, calls, 1)
		assert.Equal(t, "/api/offers", calls[0].Path)
		assert.Equal(t, "category=DINING&per_page=10", calls[0].RawQuery)
	})

	t.Run("happy: empty body for argument-free tools", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		router := setupRouter(t, upstream.srv.URL)

		w := do(router, http.MethodPost, "/tools/health_check", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	})

	t.Run("bad: validation rejected before any call", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		router := setupRouter(t, upstream.srv.URL)

		w := do(router, http.MethodPost, "/tools/make_payment",
			`{"payment":{"credit_card_id":1,"amount":-5,"merchant_name":"Cafe"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation", resp["kind"])
		assert.Equal(t, "payment.amount", resp["field"])
		assert.Empty(t, upstream.received())
	})

	t.Run("bad: upstream 4xx keeps status and message", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		upstream.respond(http.StatusNotFound, `{"error":"Customer not found"}`)
		router := setupRouter(t, upstream.srv.URL)

		w := do(router, http.MethodPost, "/tools/get_customer_details", `{"customer_id":999}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Customer not found","kind":"upstream_http","status_code":404}`, w.Body.String())
	})

	t.Run("bad: unknown tool", func(t *testing.T) {
		upstream := newFakeUpstream(t)
		router := setupRouter(t, upstream.srv.URL)

		w := do(router, http.MethodPost, "/tools/wire_transfer", `{}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"unknown tool: wire_transfer"}`, w.Body.String())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	upstream := newFakeUpstream(t)
	router := setupRouter(t, upstream.srv.URL)

	do(router, http.MethodPost, "/tools/get_customer_details", `{"customer_id":1}`)
	w := do(router, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mcp_tool_calls_total{outcome="ok",tool="get_customer_details"} 1`)
	assert.Contains(t, w.Body.String(), `upstream_requests_total{method="GET",route="/api/customers",status="200"} 1`)
}
