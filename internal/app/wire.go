//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/orbit-deploy/internal/adapters"
	"github.com/trebuchet-org/orbit-deploy/internal/cli/render"
	"github.com/trebuchet-org/orbit-deploy/internal/config"
	"github.com/trebuchet-org/orbit-deploy/internal/logging"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance.
func InitApp(ctx context.Context, v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewChainParamsBuilder,
		usecase.NewDeployRollup,
		usecase.NewInstallKeyset,
		usecase.NewOrchestrateDeployment,

		// Renderers
		render.NewDeployRenderer,

		// App
		NewApp,
	)
	return nil, nil
}
