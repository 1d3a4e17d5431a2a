package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	for _, exporter := range []string{"", "none"} {
		provider, err := NewProvider(Config{Exporter: exporter})
		require.NoError(t, err)
		require.False(t, provider.Enabled())

		ctx, span := provider.Tracer().Start(context.Background(), "test-span")
		require.NotNil(t, ctx)
		span.End()
		require.NoError(t, provider.Shutdown(context.Background()))
	}
}

func TestNewProvider_Stdout(t *testing.T) {
	var buf bytes.Buffer
	provider, err := NewProvider(Config{Exporter: "stdout", ServiceName: "test-service", Writer: &buf})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), SpanLoad)
	sc := span.SpanContext()
	require.True(t, sc.IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
	require.Contains(t, buf.String(), SpanLoad)
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	_, err := NewProvider(Config{Exporter: "carrier-pigeon"})
	require.Error(t, err)
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "x")
	require.False(t, span.SpanContext().IsValid())
	span.End()
}
