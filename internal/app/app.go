package app

import (
	"log/slog"

	"github.com/trebuchet-org/orbit-deploy/internal/cli/render"
	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// App is the application container holding the wired use cases.
type App struct {
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	Orchestrate   *usecase.OrchestrateDeployment
	InstallKeyset *usecase.InstallKeyset
	Keysets       usecase.KeysetSource

	// Renderers
	DeployRenderer *render.DeployRenderer
}

// NewApp creates the application instance.
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	orchestrate *usecase.OrchestrateDeployment,
	installKeyset *usecase.InstallKeyset,
	keysets usecase.KeysetSource,
	deployRenderer *render.DeployRenderer,
) (*App, error) {
	return &App{
		Config:         cfg,
		Logger:         logger,
		Orchestrate:    orchestrate,
		InstallKeyset:  installKeyset,
		Keysets:        keysets,
		DeployRenderer: deployRenderer,
	}, nil
}
