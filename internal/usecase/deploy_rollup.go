package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
)

// DeployRollup executes the deployment phase: build the creation transaction,
// submit it, wait for one confirmation, and extract the core contracts from
// the receipt. Every network call is attempted exactly once; a failed attempt
// leaves no committed chain and must be re-run with a fresh chain ID.
type DeployRollup struct {
	sdk       ChainSDK
	read      ReadClient
	submitter Submitter
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeployRollup creates the deployment executor.
func NewDeployRollup(
	sdk ChainSDK,
	read ReadClient,
	submitter Submitter,
	sink ProgressSink,
	log *slog.Logger,
) *DeployRollup {
	return &DeployRollup{
		sdk:       sdk,
		read:      read,
		submitter: submitter,
		sink:      sink,
		log:       log,
	}
}

// Run deploys the rollup described by params. All failures are wrapped in a
// *domain.DeploymentError carrying the attempted chain ID.
func (uc *DeployRollup) Run(
	ctx context.Context,
	params *domain.ChainParams,
	batchPosters []common.Address,
	validators []common.Address,
) (*domain.CoreContracts, common.Hash, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Phase:   domain.PhaseDeployment,
		Stage:   StageStarted,
		Message: fmt.Sprintf("Deploying rollup chain %d", params.ChainID),
	})

	deployParams, err := uc.sdk.PrepareDeployParams(ctx, uc.read, *params, batchPosters, validators)
	if err != nil {
		return nil, common.Hash{}, uc.fail(params.ChainID, fmt.Errorf("preparing deployment params: %w", err))
	}

	req, err := uc.sdk.PrepareDeploymentTx(deployParams)
	if err != nil {
		return nil, common.Hash{}, uc.fail(params.ChainID, fmt.Errorf("building deployment transaction: %w", err))
	}

	tx, err := uc.submitter.Submit(ctx, req)
	if err != nil {
		return nil, common.Hash{}, uc.fail(params.ChainID, fmt.Errorf("submitting deployment transaction: %w", err))
	}

	uc.log.Debug("deployment transaction broadcast", "tx", tx.Hash(), "chainId", params.ChainID)
	uc.sink.OnProgress(ctx, ProgressEvent{
		Phase:   domain.PhaseDeployment,
		Stage:   StageSubmitted,
		Message: fmt.Sprintf("Transaction %s submitted, waiting for confirmation", tx.Hash()),
		Spinner: true,
	})

	receipt, err := uc.submitter.WaitMined(ctx, tx)
	if err != nil {
		return nil, tx.Hash(), uc.fail(params.ChainID, fmt.Errorf("waiting for confirmation: %w", err))
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Phase:   domain.PhaseDeployment,
		Stage:   StageConfirmed,
		Message: fmt.Sprintf("Confirmed in block %d", receipt.BlockNumber),
	})

	contracts, err := uc.sdk.ParseDeployment(receipt)
	if err != nil {
		return nil, tx.Hash(), uc.fail(params.ChainID, fmt.Errorf("parsing deployment receipt: %w", err))
	}

	uc.log.Info("rollup deployed",
		"chainId", params.ChainID,
		"rollup", contracts.Rollup,
		"inbox", contracts.Inbox,
		"sequencerInbox", contracts.SequencerInbox,
		"upgradeExecutor", contracts.UpgradeExecutor,
	)
	uc.sink.OnProgress(ctx, ProgressEvent{
		Phase:    domain.PhaseDeployment,
		Stage:    StageContracts,
		Message:  "Core contracts deployed",
		Metadata: contracts,
	})

	return contracts, tx.Hash(), nil
}

func (uc *DeployRollup) fail(chainID uint64, cause error) error {
	err := &domain.DeploymentError{ChainID: chainID, Cause: cause}
	uc.sink.Error(err.Error())
	return err
}
