package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command.
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a new rollup chain and install its committee keyset",
		Long: `Deploy a new Orbit rollup chain anchored to the configured parent chain.

The run executes two transactions in sequence:
  1. createRollup on the parent chain's rollup creator, with a freshly
     generated chain ID, the custom fee token, and the batch poster and
     validator identities
  2. setValidKeyset on the new chain's sequencer inbox, routed through its
     upgrade executor, authorizing the configured committee keyset

Each phase is attempted exactly once. A failed phase is reported, not
retried; a broadcast transaction cannot be retracted. The keyset phase acts
on the contract addresses the deployment phase just produced.

Required configuration:
  DEPLOYER_PRIVATE_KEY        deployer identity secret
  CUSTOM_FEE_TOKEN_ADDRESS    fee token account address on the parent chain

Optional:
  PARENT_CHAIN_RPC            parent chain endpoint (public fallback if unset)
  BATCH_POSTER_PRIVATE_KEY    generated ephemerally if unset
  VALIDATOR_PRIVATE_KEY       generated ephemerally if unset
  ORBIT_KEYSET_FILE           keyset blob path (keyset phase skipped if unset)

Examples:
  # Deploy with all identities from the environment
  orbit-deploy deploy

  # Deploy against a specific parent endpoint and record the result
  orbit-deploy deploy --parent-rpc https://sepolia-rollup.arbitrum.io/rpc --output result.json

  # Deploy and install a committee keyset
  orbit-deploy deploy --keyset-file keyset.hex`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !app.Config.NonInteractive {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Deploy a new rollup via %s", app.Config.ParentRPC),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					return fmt.Errorf("aborted")
				}
			}

			result, err := app.Orchestrate.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.DeployRenderer.Render(result); err != nil {
				return err
			}

			if result.Failed() {
				return fmt.Errorf("one or more phases failed")
			}
			return nil
		},
	}

	return cmd
}
