package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
)

// DefaultParentRPC is the public endpoint used when PARENT_CHAIN_RPC is not
// configured. Public endpoints are rate limited and may time out during the
// confirmation wait; the provider warns when it falls back to this.
const DefaultParentRPC = "https://sepolia-rollup.arbitrum.io/rpc"

// Environment variables recognized by the provider.
const (
	EnvDeployerKey    = "DEPLOYER_PRIVATE_KEY"
	EnvFeeToken       = "CUSTOM_FEE_TOKEN_ADDRESS"
	EnvParentRPC      = "PARENT_CHAIN_RPC"
	EnvBatchPosterKey = "BATCH_POSTER_PRIVATE_KEY"
	EnvValidatorKey   = "VALIDATOR_PRIVATE_KEY"
	EnvKeysetFile     = "ORBIT_KEYSET_FILE"
)

// SetupViper creates a viper instance bound to the process environment.
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("timeout", 0)

	_ = v.BindEnv("deployer_key", EnvDeployerKey)
	_ = v.BindEnv("fee_token", EnvFeeToken)
	_ = v.BindEnv("parent_rpc", EnvParentRPC)
	_ = v.BindEnv("batch_poster_key", EnvBatchPosterKey)
	_ = v.BindEnv("validator_key", EnvValidatorKey)
	_ = v.BindEnv("keyset_file", EnvKeysetFile)

	return v
}

// BindGlobalFlags binds persistent cobra flags into viper so flags override
// environment values.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	flagMap := map[string]string{
		"debug":           "debug",
		"non-interactive": "non_interactive",
		"parent-rpc":      "parent_rpc",
		"fee-token":       "fee_token",
		"keyset-file":     "keyset_file",
		"output":          "output",
		"timeout":         "timeout",
		"profile":         "profile",
	}

	for flagName, viperKey := range flagMap {
		if flag := cmd.Flags().Lookup(flagName); flag != nil && flag.Changed {
			_ = v.BindPFlag(viperKey, flag)
		}
	}
}

// Provider resolves the complete RuntimeConfig for one run. It performs all
// required-setting validation up front so that no transport is ever bound
// when mandatory configuration is absent.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = "."
	}
	if !filepath.IsAbs(projectRoot) {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = abs
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		DeployerKey:     v.GetString("deployer_key"),
		BatchPosterKey:  v.GetString("batch_poster_key"),
		ValidatorKey:    v.GetString("validator_key"),
		FeeTokenAddress: v.GetString("fee_token"),
		ParentRPC:       v.GetString("parent_rpc"),
		KeysetFile:      v.GetString("keyset_file"),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Timeout:         v.GetDuration("timeout"),
		OutputPath:      v.GetString("output"),
	}

	// Project file values fill the gaps the environment left open.
	orbitCfg, err := loadOrbitConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	if orbitCfg != nil {
		profileName := v.GetString("profile")
		if profileName == "" {
			profileName = "default"
		}
		if profile, ok := orbitCfg.Profiles[profileName]; ok {
			cfg.Profile = &profile
			if cfg.ParentRPC == "" {
				cfg.ParentRPC = profile.ParentRPC
			}
			if cfg.FeeTokenAddress == "" {
				cfg.FeeTokenAddress = profile.FeeToken
			}
			if cfg.KeysetFile == "" {
				cfg.KeysetFile = profile.KeysetFile
			}
		}
	}

	if cfg.DeployerKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", domain.ErrMissingConfig, EnvDeployerKey)
	}
	if cfg.FeeTokenAddress == "" {
		return nil, fmt.Errorf("%w: %s is not set", domain.ErrMissingConfig, EnvFeeToken)
	}
	if !common.IsHexAddress(cfg.FeeTokenAddress) {
		return nil, fmt.Errorf("%w: fee token %q", domain.ErrInvalidAddress, cfg.FeeTokenAddress)
	}

	cfg.ParentRPCIsSet = cfg.ParentRPC != ""
	if !cfg.ParentRPCIsSet {
		cfg.ParentRPC = DefaultParentRPC
	}

	return cfg, nil
}

// FindProjectRoot walks up from the working directory looking for orbit.toml.
// Falls back to the working directory when no project file exists.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for d := dir; ; d = filepath.Dir(d) {
		if _, err := os.Stat(filepath.Join(d, "orbit.toml")); err == nil {
			return d, nil
		}
		if filepath.Dir(d) == d {
			return dir, nil
		}
	}
}
