package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
)

// orbitTOML is the raw orbit.toml structure.
type orbitTOML struct {
	Profile map[string]config.ProfileConfig `toml:"profile"`
}

// loadOrbitConfig loads and parses orbit.toml if present. A missing project
// file is not an error; everything can come from the environment.
func loadOrbitConfig(projectRoot string) (*config.OrbitConfig, error) {
	// Load .env files first so ${VAR} expansion in the project file works
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	orbitPath := filepath.Join(projectRoot, "orbit.toml")
	if _, err := os.Stat(orbitPath); err != nil {
		return nil, nil
	}

	var raw orbitTOML
	if _, err := toml.DecodeFile(orbitPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse orbit.toml: %w", err)
	}

	cfg := &config.OrbitConfig{
		Profiles: make(map[string]config.ProfileConfig),
	}
	for name, profile := range raw.Profile {
		cfg.Profiles[name] = config.ProfileConfig{
			ParentRPC:  os.ExpandEnv(profile.ParentRPC),
			FeeToken:   os.ExpandEnv(profile.FeeToken),
			KeysetFile: os.ExpandEnv(profile.KeysetFile),
		}
	}

	return cfg, nil
}
