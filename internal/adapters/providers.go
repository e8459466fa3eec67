package adapters

import (
	"crypto/rand"
	"io"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/wire"

	"github.com/trebuchet-org/orbit-deploy/internal/adapters/ethereum"
	"github.com/trebuchet-org/orbit-deploy/internal/adapters/fs"
	"github.com/trebuchet-org/orbit-deploy/internal/adapters/orbit"
	"github.com/trebuchet-org/orbit-deploy/internal/adapters/wallet"
	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// ProvideDeployerIdentity resolves the deployer identity the submitter
// signs with. The deployer secret is mandatory; config validation guarantees
// it is non-empty by the time this runs.
func ProvideDeployerIdentity(cfg *config.RuntimeConfig, r *wallet.Resolver) (domain.Identity, error) {
	return r.Resolve(domain.RoleDeployer, cfg.DeployerKey)
}

// ProvideRand provides the chain ID randomness source.
func ProvideRand() io.Reader {
	return rand.Reader
}

// WalletSet provides identity resolution.
var WalletSet = wire.NewSet(
	wallet.NewResolver,
	wire.Bind(new(usecase.IdentityResolver), new(*wallet.Resolver)),
	ProvideDeployerIdentity,
)

// EthereumSet provides the parent chain transport binding.
var EthereumSet = wire.NewSet(
	ethereum.NewReadClient,
	wire.Bind(new(usecase.ReadClient), new(*ethclient.Client)),
	ethereum.NewSubmitter,
	wire.Bind(new(usecase.Submitter), new(*ethereum.Submitter)),
)

// OrbitSet provides the chain SDK collaborator.
var OrbitSet = wire.NewSet(
	orbit.NewSDK,
	wire.Bind(new(usecase.ChainSDK), new(*orbit.SDK)),
)

// FSSet provides filesystem-based implementations.
var FSSet = wire.NewSet(
	fs.NewKeysetFileSource,
	wire.Bind(new(usecase.KeysetSource), new(*fs.KeysetFileSource)),
)

// AllAdapters includes all adapter sets.
var AllAdapters = wire.NewSet(
	ProvideRand,
	WalletSet,
	EthereumSet,
	OrbitSet,
	FSSet,
)
