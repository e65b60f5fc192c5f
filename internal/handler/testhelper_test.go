package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/mcp"
	"github.com/anyulbade/card-rewards-gateway/internal/requestid"
)

const testMaxBody = 64 * 1024

type upstreamCall struct {
	Method    string
	Path      string
	RawQuery  string
	Body      string
	RequestID string
}

type fakeUpstream struct {
	mu     sync.Mutex
	calls  []upstreamCall
	status int
	reply  string
	srv    *httptest.Server
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	u := &fakeUpstream{status: http.StatusOK, reply: `{"ok":true}`}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		u.mu.Lock()
		u.calls = append(u.calls, upstreamCall{
			Method:    r.Method,
			Path:      r.URL.EscapedPath(),
			RawQuery:  r.URL.RawQuery,
			Body:      string(data),
			RequestID: r.Header.Get(requestid.Header),
		})
		status, reply := u.status, u.reply
		u.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *fakeUpstream) respond(status int, reply string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status, u.reply = status, reply
}

func (u *fakeUpstream) received() []upstreamCall {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]upstreamCall(nil), u.calls...)
}

// setupRouter wires the full HTTP surface against baseURL.
func setupRouter(t *testing.T, baseURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	client := apiclient.New(baseURL, time.Second, apiclient.WithMetrics(apiclient.NewMetrics(reg)))
	services := mcp.NewServices(client)

	registry := mcp.NewRegistry(mcp.NewMetrics(reg))
	mcp.RegisterTools(registry, services)

	return NewRouter(RouterConfig{
		Server:       mcp.NewServer(registry, "test"),
		Registry:     registry,
		Health:       services.Health,
		Gatherer:     reg,
		MaxBodyBytes: testMaxBody,
	})
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
