package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
)

// NewKeysetCmd creates the keyset command.
func NewKeysetCmd() *cobra.Command {
	var contractsPath string

	cmd := &cobra.Command{
		Use:   "keyset",
		Short: "Install a committee keyset on an already deployed chain",
		Long: `Install the configured data availability committee keyset on a chain that
was deployed earlier, without redeploying anything.

The contract addresses come from a result artifact written by
'deploy --output'. The keyset blob itself comes from ORBIT_KEYSET_FILE or
--keyset-file, same as during deployment.

Examples:
  orbit-deploy keyset --contracts result.json --keyset-file keyset.hex`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			contracts, err := loadContracts(contractsPath)
			if err != nil {
				return err
			}

			keyset, err := app.Keysets.Load(cmd.Context())
			if err != nil {
				return err
			}
			if keyset == nil {
				return fmt.Errorf("no keyset configured: set ORBIT_KEYSET_FILE or pass --keyset-file")
			}

			if !app.Config.NonInteractive {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Install keyset on sequencer inbox %s", contracts.SequencerInbox),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					return fmt.Errorf("aborted")
				}
			}

			txHash, err := app.InstallKeyset.Run(cmd.Context(), contracts, *keyset)
			if err != nil {
				return err
			}

			fmt.Printf("Keyset installed (tx %s)\n", txHash)
			return nil
		},
	}

	cmd.Flags().StringVar(&contractsPath, "contracts", "", "Result artifact from 'deploy --output' holding the core contract addresses")
	_ = cmd.MarkFlagRequired("contracts")

	return cmd
}

// loadContracts reads the core contract addresses from a deploy result
// artifact. A bare CoreContracts object is accepted as well.
func loadContracts(path string) (*domain.CoreContracts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contracts file: %w", err)
	}

	var result domain.DeploymentResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing contracts file %s: %w", path, err)
	}
	contracts := result.Contracts
	if contracts == nil {
		contracts = &domain.CoreContracts{}
		if err := json.Unmarshal(data, contracts); err != nil {
			return nil, fmt.Errorf("parsing contracts file %s: %w", path, err)
		}
	}

	if contracts.UpgradeExecutor == (common.Address{}) || contracts.SequencerInbox == (common.Address{}) {
		return nil, fmt.Errorf("contracts file %s is missing the upgrade executor or sequencer inbox address", path)
	}
	return contracts, nil
}
