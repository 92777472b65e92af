package app

import (
	"context"

	"go.trai.ch/gqlmemo/internal/core/ports"
)

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// shutdowner is implemented by tracers that own an exporter pipeline.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Close flushes and stops the tracer, if it owns anything to stop.
func (c *Components) Close() {
	s, ok := c.Tracer.(shutdowner)
	if !ok {
		return
	}
	if err := s.Shutdown(context.Background()); err != nil && c.Logger != nil {
		c.Logger.Warn("failed to shut down tracer", "error", err.Error())
	}
}
