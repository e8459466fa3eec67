package domain

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Role identifies which deployment identity a key belongs to.
type Role string

const (
	RoleDeployer    Role = "deployer"
	RoleBatchPoster Role = "batch-poster"
	RoleValidator   Role = "validator"
)

// Identity is a (private key, address) pair for one deployment role.
// Generated identities are ephemeral and live only for the current run.
type Identity struct {
	Role      Role
	Key       *ecdsa.PrivateKey
	Generated bool
}

// Address derives the account address of the identity.
func (i Identity) Address() common.Address {
	return crypto.PubkeyToAddress(i.Key.PublicKey)
}

// FeatureFlags are the chain-level flags baked into the chain config.
type FeatureFlags struct {
	DataAvailabilityCommittee bool
}

// ChainParams is the derived configuration for a single deployment attempt.
// ChainID is generated fresh per attempt and never reused across runs.
type ChainParams struct {
	ChainID        uint64
	Owner          common.Address
	Flags          FeatureFlags
	NativeFeeToken common.Address
	ChainConfig    []byte // encoded chain config blob from the chain SDK
}

// DeployParams augments ChainParams with values resolved against the parent
// chain before the deployment transaction can be built.
type DeployParams struct {
	ChainParams
	MaxDataSize  *big.Int
	BatchPosters []common.Address
	Validators   []common.Address
}

// CoreContracts is the set of contract addresses produced by a confirmed
// rollup deployment. It is the sole artifact handed from the deployment
// phase to the keyset phase.
type CoreContracts struct {
	Rollup                 common.Address `json:"rollup"`
	Inbox                  common.Address `json:"inbox"`
	Outbox                 common.Address `json:"outbox"`
	Bridge                 common.Address `json:"bridge"`
	SequencerInbox         common.Address `json:"sequencerInbox"`
	RollupEventInbox       common.Address `json:"rollupEventInbox"`
	ChallengeManager       common.Address `json:"challengeManager"`
	AdminProxy             common.Address `json:"adminProxy"`
	UpgradeExecutor        common.Address `json:"upgradeExecutor"`
	ValidatorWalletCreator common.Address `json:"validatorWalletCreator"`
	NativeToken            common.Address `json:"nativeToken"`
}

// Keyset is the opaque, pre-encoded data availability committee keyset blob.
// It is supplied externally and never constructed by this tool.
type Keyset struct {
	Blob []byte
}

// Hash returns the keccak256 identifier the sequencer inbox derives for a
// keyset. Display only; the contract computes its own.
func (k Keyset) Hash() common.Hash {
	return crypto.Keccak256Hash(k.Blob)
}

// Phase names the two transactional stages of a run.
type Phase string

const (
	PhaseDeployment Phase = "deployment"
	PhaseKeyset     Phase = "keyset"
)

// PhaseStatus is the terminal status of one phase.
type PhaseStatus string

const (
	PhaseSucceeded PhaseStatus = "succeeded"
	PhaseFailed    PhaseStatus = "failed"
	PhaseSkipped   PhaseStatus = "skipped"
)

// PhaseResult records the outcome of a single phase. Failures are collected
// here instead of aborting the run; the driver reports them at the end.
type PhaseResult struct {
	Phase  Phase       `json:"phase"`
	Status PhaseStatus `json:"status"`
	TxHash common.Hash `json:"txHash,omitempty"`
	Err    error       `json:"-"`
}

// DeploymentResult is the aggregate outcome of one orchestrator run.
type DeploymentResult struct {
	ChainID   uint64         `json:"chainId"`
	Owner     common.Address `json:"owner"`
	Contracts *CoreContracts `json:"contracts,omitempty"`
	Phases    []PhaseResult  `json:"phases"`
}

// Failed reports whether any phase ended in failure.
func (r *DeploymentResult) Failed() bool {
	for _, p := range r.Phases {
		if p.Status == PhaseFailed {
			return true
		}
	}
	return false
}
