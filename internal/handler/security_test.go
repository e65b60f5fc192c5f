package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMalformedInput(t *testing.T) {
	upstream := newFakeUpstream(t)
	router := setupRouter(t, upstream.srv.URL)

	t.Run("truncated json-rpc frame", func(t *testing.T) {
		w := do(router, http.MethodPost, "/mcp", `{"jsonrpc":"2.0","id":1,"method":`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Error struct {
				Code int `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, -32700, resp.Error.Code)
	})

	t.Run("wrong argument types", func(t *testing.T) {
		w := do(router, http.MethodPost, "/tools/get_customer_details", `{"customer_id":"1 OR 1=1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"customer_id"`)
	})

	t.Run("oversized body", func(t *testing.T) {
		big := `{"customer":{"first_name":"` + strings.Repeat("x", testMaxBody) + `"}}`
		w := do(router, http.MethodPost, "/tools/create_customer", big)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	assert.Empty(t, upstream.received(), "malformed input must never reach the payments API")
}

func TestInjectionStaysInsideItsSegment(t *testing.T) {
	upstream := newFakeUpstream(t)
	router := setupRouter(t, upstream.srv.URL)

	t.Run("path traversal in token id", func(t *testing.T) {
		w := do(router, http.MethodPost, "/tools/get_token_details", `{"token_id":"../../admin"}`)
		require.Equal(t, http.StatusOK, w.Code)

		calls := upstream.received()
		require.NotEmpty(t, calls)
		assert.Equal(t, "/api/tokens/..%2F..%2Fadmin", calls[len(calls)-1].Path)
	})

	t.Run("query smuggling in filter", func(t *testing.T) {
		w := do(router, http.MethodPost, "/tools/list_customers", `{"email":"a@b.com&per_page=1000"}`)
		require.Equal(t, http.StatusOK, w.Code)

		calls := upstream.received()
		require.NotEmpty(t, calls)
		assert.Equal(t, "email=a%40b.com%26per_page%3D1000", calls[len(calls)-1].RawQuery)
	})
}
