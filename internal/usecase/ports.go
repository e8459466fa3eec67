package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
)

// TxRequest is a transaction the chain SDK has prepared but not yet signed.
// It is immutable once built and consumed exactly once by a Submitter.
type TxRequest struct {
	To    common.Address
	Data  []byte
	Value *big.Int
}

// ReadClient is the read-only query surface of the parent chain needed by
// the chain SDK.
type ReadClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// Submitter signs and broadcasts prepared transactions with the deployer
// identity and waits for confirmations. One instance is bound at startup and
// reused by both transactional phases.
type Submitter interface {
	Sender() common.Address
	Submit(ctx context.Context, req *TxRequest) (*types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// ChainSDK is the external chain-SDK collaborator. Its behavior is a fixed
// contract; this orchestrator never reaches below it.
type ChainSDK interface {
	// PrepareChainConfig encodes the chain configuration blob for the child chain.
	PrepareChainConfig(chainID uint64, owner common.Address, flags domain.FeatureFlags) ([]byte, error)

	// PrepareDeployParams resolves deployment parameters against the parent chain.
	PrepareDeployParams(ctx context.Context, read ReadClient, params domain.ChainParams, batchPosters, validators []common.Address) (*domain.DeployParams, error)

	// PrepareDeploymentTx builds the rollup creation transaction request.
	PrepareDeploymentTx(params *domain.DeployParams) (*TxRequest, error)

	// ParseDeployment extracts the core contract addresses from a confirmed
	// receipt. Parsing is idempotent.
	ParseDeployment(receipt *types.Receipt) (*domain.CoreContracts, error)

	// PrepareKeysetTx builds the transaction that authorizes the keyset
	// against the upgrade executor / sequencer inbox pair.
	PrepareKeysetTx(contracts *domain.CoreContracts, keyset domain.Keyset) (*TxRequest, error)
}

// IdentityResolver normalizes or generates deployment identities.
type IdentityResolver interface {
	Resolve(role domain.Role, rawKey string) (domain.Identity, error)
}

// KeysetSource loads the externally supplied keyset blob. Returns nil when
// no keyset is configured for this run.
type KeysetSource interface {
	Load(ctx context.Context) (*domain.Keyset, error)
}

// ProgressEvent represents a progress update from a transactional phase.
type ProgressEvent struct {
	Phase    domain.Phase
	Stage    Stage
	Message  string
	Spinner  bool
	Metadata any
}

// Stage names a point inside a transactional phase.
type Stage string

const (
	StageStarted   Stage = "started"
	StageSubmitted Stage = "submitted"
	StageConfirmed Stage = "confirmed"
	StageContracts Stage = "contracts"
)

// ProgressSink receives progress events.
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
