package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/trebuchet-org/orbit-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/orbit-deploy/internal/app"
	"github.com/trebuchet-org/orbit-deploy/internal/config"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orbit-deploy",
		Short: "One-shot Orbit rollup deployment orchestrator",
		Long: `orbit-deploy provisions a new Orbit rollup chain on a parent chain using a
custom fee token, then installs the data availability committee keyset on the
freshly deployed contracts.

The run is one-shot: configuration is resolved once, the two transactions are
each attempted exactly once, and partial state is left for the operator.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for commands that need no configuration
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			config.BindGlobalFlags(v, cmd)

			var sink usecase.ProgressSink = progress.NewDeploySink()
			if nonInteractive, _ := cmd.Flags().GetBool("non-interactive"); nonInteractive {
				sink = progress.NewLogSink(slog.Default())
			}

			appInstance, err := app.InitApp(cmd.Context(), v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("parent-rpc", "", "Parent chain RPC endpoint (overrides PARENT_CHAIN_RPC)")
	rootCmd.PersistentFlags().String("fee-token", "", "Custom fee token address (overrides CUSTOM_FEE_TOKEN_ADDRESS)")
	rootCmd.PersistentFlags().String("keyset-file", "", "Path to the pre-encoded committee keyset blob")
	rootCmd.PersistentFlags().String("output", "", "Write the deployment result as JSON to this path")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall timeout for the run (0 = none)")
	rootCmd.PersistentFlags().String("profile", "", "orbit.toml profile to use (defaults to 'default')")

	rootCmd.AddCommand(NewDeployCmd())
	rootCmd.AddCommand(NewKeysetCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context.
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok {
		return nil, fmt.Errorf("app not initialized")
	}
	return appInstance, nil
}
