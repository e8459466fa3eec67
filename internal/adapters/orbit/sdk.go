package orbit

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/trebuchet-org/orbit-deploy/internal/adapters/orbit/bindings"
	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// Rollup creator contracts deployed on supported parent chains.
var rollupCreators = map[uint64]common.Address{
	1:        common.HexToAddress("0x90D68B056c411015eaE3EC0b98AD94E2C91419F1"), // mainnet
	42161:    common.HexToAddress("0x9CAd81628aB7D8e239F1A5B497313341578c5F71"), // arbitrum one
	8453:     common.HexToAddress("0x850F050C65B34966895AdA26a4D06923901916DB"), // base
	11155111: common.HexToAddress("0xfBD0B034e6305788007f6e0123cc5EaE701a5751"), // sepolia
	421614:   common.HexToAddress("0x06E341073b2749e0Bb9912461351f716DeCDa9b0"), // arbitrum sepolia
}

// Calldata ceilings for the child chain, depending on whether the parent is
// itself a rollup. Values match the creator contract deployments.
var (
	maxDataSizeL1Parent = big.NewInt(117964)
	maxDataSizeL2Parent = big.NewInt(104857)
)

// Parent chains that are themselves rollups.
var l2Parents = map[uint64]bool{
	42161:  true,
	8453:   true,
	421614: true,
}

// SDK is the chain-SDK collaborator: it encodes chain configs, builds the
// deployment and keyset transaction requests, and parses deployment receipts.
// It never signs or broadcasts anything.
type SDK struct {
	creator   *bindings.RollupCreator
	executor  *bindings.UpgradeExecutor
	inbox     *bindings.SequencerInbox
	creatorAt common.Address
	log       *slog.Logger
}

// NewSDK creates the chain SDK adapter.
func NewSDK(log *slog.Logger) *SDK {
	return &SDK{
		creator:  bindings.NewRollupCreator(),
		executor: bindings.NewUpgradeExecutor(),
		inbox:    bindings.NewSequencerInbox(),
		log:      log,
	}
}

// PrepareDeployParams resolves the deployment parameters against the parent
// chain: rollup creator address and the calldata ceiling for the child chain.
// The resolved creator address is remembered for the subsequent request build
// and receipt parse; the orchestrator runs a single flow, so no locking.
func (s *SDK) PrepareDeployParams(
	ctx context.Context,
	read usecase.ReadClient,
	params domain.ChainParams,
	batchPosters, validators []common.Address,
) (*domain.DeployParams, error) {
	parentID, err := read.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying parent chain ID: %w", err)
	}

	creator, ok := rollupCreators[parentID.Uint64()]
	if !ok {
		return nil, fmt.Errorf("no rollup creator known for parent chain %d", parentID.Uint64())
	}
	code, err := read.CodeAt(ctx, creator, nil)
	if err != nil {
		return nil, fmt.Errorf("checking rollup creator code: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("rollup creator %s has no code on parent chain %d", creator, parentID.Uint64())
	}
	s.creatorAt = creator

	maxDataSize := maxDataSizeL1Parent
	if l2Parents[parentID.Uint64()] {
		maxDataSize = maxDataSizeL2Parent
	}

	s.log.Debug("deployment params resolved",
		"parentChainId", parentID.Uint64(),
		"rollupCreator", creator,
		"maxDataSize", maxDataSize,
	)

	return &domain.DeployParams{
		ChainParams:  params,
		MaxDataSize:  maxDataSize,
		BatchPosters: batchPosters,
		Validators:   validators,
	}, nil
}

// PrepareDeploymentTx builds the createRollup transaction request.
func (s *SDK) PrepareDeploymentTx(params *domain.DeployParams) (*usecase.TxRequest, error) {
	if s.creatorAt == (common.Address{}) {
		return nil, fmt.Errorf("deployment params not prepared")
	}

	data, err := s.creator.PackCreateRollup(bindings.RollupDeploymentParams{
		ChainId:      params.ChainID,
		Owner:        params.Owner,
		ChainConfig:  string(params.ChainConfig),
		MaxDataSize:  params.MaxDataSize,
		NativeToken:  params.NativeFeeToken,
		BatchPosters: params.BatchPosters,
		Validators:   params.Validators,
	})
	if err != nil {
		return nil, fmt.Errorf("packing createRollup: %w", err)
	}

	return &usecase.TxRequest{To: s.creatorAt, Data: data}, nil
}

// ParseDeployment extracts the core contracts from a confirmed deployment
// receipt. Parsing only reads the receipt; feeding the same receipt twice
// yields identical contracts.
func (s *SDK) ParseDeployment(receipt *types.Receipt) (*domain.CoreContracts, error) {
	topic := s.creator.RollupCreatedTopic()
	for _, l := range receipt.Logs {
		if len(l.Topics) == 0 || l.Topics[0] != topic {
			continue
		}
		ev, err := s.creator.UnpackRollupCreated(l)
		if err != nil {
			return nil, fmt.Errorf("decoding RollupCreated log: %w", err)
		}
		return &domain.CoreContracts{
			Rollup:                 ev.RollupAddress,
			Inbox:                  ev.InboxAddress,
			Outbox:                 ev.Outbox,
			Bridge:                 ev.Bridge,
			SequencerInbox:         ev.SequencerInbox,
			RollupEventInbox:       ev.RollupEventInbox,
			ChallengeManager:       ev.ChallengeManager,
			AdminProxy:             ev.AdminProxy,
			UpgradeExecutor:        ev.UpgradeExecutor,
			ValidatorWalletCreator: ev.ValidatorWalletCreator,
			NativeToken:            ev.NativeToken,
		}, nil
	}
	return nil, fmt.Errorf("receipt %s contains no RollupCreated event", receipt.TxHash)
}

// PrepareKeysetTx builds the keyset authorization request: the sequencer
// inbox call is packed first, then routed through the chain's upgrade
// executor, which owns the inbox.
func (s *SDK) PrepareKeysetTx(contracts *domain.CoreContracts, keyset domain.Keyset) (*usecase.TxRequest, error) {
	inner, err := s.inbox.PackSetValidKeyset(keyset.Blob)
	if err != nil {
		return nil, fmt.Errorf("packing setValidKeyset: %w", err)
	}

	data, err := s.executor.PackExecuteCall(contracts.SequencerInbox, inner)
	if err != nil {
		return nil, fmt.Errorf("packing executeCall: %w", err)
	}

	return &usecase.TxRequest{To: contracts.UpgradeExecutor, Data: data}, nil
}

var _ usecase.ChainSDK = (*SDK)(nil)
