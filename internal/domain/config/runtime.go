package config

import (
	"time"
)

// RuntimeConfig is the complete resolved configuration for one run. It is
// built once at startup and injected into the use cases; nothing reads the
// environment after this point.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Parent chain settings
	ParentRPC      string
	ParentRPCIsSet bool // false when the default public endpoint is in use

	// Identity secrets, raw as configured. Empty optional secrets mean
	// "generate an ephemeral key".
	DeployerKey    string
	BatchPosterKey string
	ValidatorKey   string

	// Deployment inputs
	FeeTokenAddress string
	KeysetFile      string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Optional machine-readable result artifact path ("" = disabled)
	OutputPath string

	// Resolved orbit.toml profile, nil when no project file exists
	Profile *ProfileConfig
}

// OrbitConfig is the parsed orbit.toml project file.
type OrbitConfig struct {
	Profiles map[string]ProfileConfig
}

// ProfileConfig is one [profile.<name>] section of orbit.toml. Environment
// variables always win over file values.
type ProfileConfig struct {
	ParentRPC  string `toml:"parent_rpc"`
	FeeToken   string `toml:"fee_token"`
	KeysetFile string `toml:"keyset_file"`
}
