package telemetry

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/shortenurl/web/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
)

func TestNewTracerProviderNone(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), config.TraceConfig{Exporter: "none"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.IsRecording())
}

func TestNewTracerProviderStdout(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewTracerProvider(context.Background(), config.TraceConfig{Exporter: "STDOUT", ServiceName: "web-test"}, &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "backend GET /auth/me")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "backend GET /auth/me")
	assert.Contains(t, buf.String(), "web-test")
}

func TestNewTracerProviderUnknown(t *testing.T) {
	_, err := NewTracerProvider(context.Background(), config.TraceConfig{Exporter: "zipkin"}, nil)
	assert.ErrorIs(t, err, ErrUnknownExporter)
}

func TestPropagatorInjectsTraceparent(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), config.TraceConfig{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	header := http.Header{}
	Propagator().Inject(ctx, propagation.HeaderCarrier(header))
	assert.Contains(t, header.Get("traceparent"), span.SpanContext().TraceID().String())
}
