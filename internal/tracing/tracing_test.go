package tracing

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestInit_Disabled(t *testing.T) {
	tracer, shutdown, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_Propagator(t *testing.T) {
	_, _, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	h := http.Header{}
	h.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	ctx := otel.GetTextMapPropagator().Extract(context.Background(), propagation.HeaderCarrier(h))

	out := http.Header{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(out))
	assert.Equal(t, h.Get("traceparent"), out.Get("traceparent"))
}

func TestInit_Enabled(t *testing.T) {
	tracer, shutdown, err := Init(Config{
		Enabled:     true,
		Endpoint:    "http://127.0.0.1:1/api/traces",
		ServiceName: "card-rewards-gateway-test",
		Environment: "test",
	})
	require.NoError(t, err)

	_, span := tracer.Start(context.Background(), "enabled")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
