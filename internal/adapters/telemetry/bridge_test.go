package telemetry_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/gqlmemo/internal/adapters/telemetry"
	"go.trai.ch/gqlmemo/internal/core/ports"
)

type logEntry struct {
	msg  string
	args map[string]any
}

// debugRecorder is a ports.Logger that keeps debug records.
type debugRecorder struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *debugRecorder) Debug(msg string, args ...any) {
	fields := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, _ := args[i].(string)
		fields[key] = args[i+1]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{msg: msg, args: fields})
}

func (r *debugRecorder) Info(string, ...any) {}
func (r *debugRecorder) Warn(string, ...any) {}
func (r *debugRecorder) Error(error)         {}

var _ ports.Logger = (*debugRecorder)(nil)

func TestBridge_LogsFinishedSpans(t *testing.T) {
	log := &debugRecorder{}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))
	tracer := telemetry.NewSDKTracer(tp, "test")
	t.Cleanup(func() { _ = tracer.Shutdown(t.Context()) })

	ctx, parent := tracer.Start(t.Context(), "gqlmemo.parse", ports.WithAttribute("inputs", 2))
	_, child := tracer.Start(ctx, "gqlmemo.get_or_parse", ports.WithAttribute("query.bytes", 38))
	child.SetAttribute("cache.hit", false)
	child.RecordError(errors.New("parse error at line 1, column 7"))
	child.End()
	parent.End()

	require.Len(t, log.entries, 2)

	got := log.entries[0]
	assert.Equal(t, "span finished", got.msg)
	assert.Equal(t, "gqlmemo.get_or_parse", got.args["span"])
	assert.Equal(t, "38", got.args["query.bytes"])
	assert.Equal(t, "false", got.args["cache.hit"])
	assert.Equal(t, "parse error at line 1, column 7", got.args["error"])
	assert.NotEmpty(t, got.args["parent_id"])
	assert.IsType(t, time.Duration(0), got.args["duration"])

	root := log.entries[1]
	assert.Equal(t, "gqlmemo.parse", root.args["span"])
	assert.Equal(t, root.args["span_id"], got.args["parent_id"])
	assert.NotContains(t, root.args, "parent_id")
	assert.NotContains(t, root.args, "error")
}

func TestBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	tracer := telemetry.NewSDKTracer(tp, "test")

	assert.NotPanics(t, func() {
		_, span := tracer.Start(t.Context(), "gqlmemo.bench")
		span.End()
	})
	require.NoError(t, tracer.Shutdown(t.Context()))
}

func TestNewProvider_RegistersGlobal(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	log := &debugRecorder{}
	tp := telemetry.NewProvider(telemetry.NewBridge(log))
	assert.Same(t, tp, otel.GetTracerProvider())

	// Tracers on the global provider reach the bridge too.
	_, span := telemetry.NewOTelTracer("test").Start(t.Context(), "gqlmemo.parse")
	span.End()
	require.Len(t, log.entries, 1)

	tracer := telemetry.NewSDKTracer(tp, "test")
	assert.Same(t, tp, tracer.Provider())
	require.NoError(t, tracer.Shutdown(t.Context()))

	// Spans started after shutdown are not reported.
	_, span = tracer.Start(t.Context(), "gqlmemo.parse")
	span.End()
	assert.Len(t, log.entries, 1)
}

func TestOTelTracer_GlobalShutdownIsNoop(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test")
	assert.Nil(t, tracer.Provider())
	assert.NoError(t, tracer.Shutdown(t.Context()))
}
