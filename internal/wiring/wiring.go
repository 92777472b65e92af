// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gqlmemo/internal/adapters/config"
	_ "go.trai.ch/gqlmemo/internal/adapters/gql"
	_ "go.trai.ch/gqlmemo/internal/adapters/hasher"
	_ "go.trai.ch/gqlmemo/internal/adapters/logger"
	_ "go.trai.ch/gqlmemo/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/gqlmemo/internal/app"
	_ "go.trai.ch/gqlmemo/internal/engine/memo"
)
