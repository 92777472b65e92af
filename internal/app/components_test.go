package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/gqlmemo/internal/adapters/telemetry"
	"go.trai.ch/gqlmemo/internal/app"
)

func TestComponents_CloseShutsDownTracer(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := telemetry.NewSDKTracer(tp, "test")

	c := &app.Components{Tracer: tracer}
	c.Close()

	_, span := tracer.Start(t.Context(), "gqlmemo.parse")
	span.End()
	assert.Empty(t, sr.Ended(), "spans after Close are dropped")
}

func TestComponents_CloseWithoutShutdown(t *testing.T) {
	t.Parallel()

	c := &app.Components{Tracer: telemetry.NewNoOpTracer()}
	assert.NotPanics(t, c.Close)
	assert.NotPanics(t, (&app.Components{}).Close)
}
