package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
)

// InstallKeyset executes the keyset phase: submit the transaction that
// authorizes the committee keyset against the sequencer inbox, routed through
// the upgrade executor. The contract addresses come from the deployment phase
// that just ran, never from static placeholders.
type InstallKeyset struct {
	sdk       ChainSDK
	submitter Submitter
	sink      ProgressSink
	log       *slog.Logger
}

// NewInstallKeyset creates the keyset installer.
func NewInstallKeyset(
	sdk ChainSDK,
	submitter Submitter,
	sink ProgressSink,
	log *slog.Logger,
) *InstallKeyset {
	return &InstallKeyset{
		sdk:       sdk,
		submitter: submitter,
		sink:      sink,
		log:       log,
	}
}

// Run installs the keyset. Failures are wrapped in a *domain.KeysetError.
func (uc *InstallKeyset) Run(
	ctx context.Context,
	contracts *domain.CoreContracts,
	keyset domain.Keyset,
) (common.Hash, error) {
	if contracts == nil {
		return common.Hash{}, uc.fail(domain.ErrNoContracts)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Phase:   domain.PhaseKeyset,
		Stage:   StageStarted,
		Message: fmt.Sprintf("Installing keyset %s on sequencer inbox %s", keyset.Hash(), contracts.SequencerInbox),
	})

	req, err := uc.sdk.PrepareKeysetTx(contracts, keyset)
	if err != nil {
		return common.Hash{}, uc.fail(fmt.Errorf("building keyset transaction: %w", err))
	}

	tx, err := uc.submitter.Submit(ctx, req)
	if err != nil {
		return common.Hash{}, uc.fail(fmt.Errorf("submitting keyset transaction: %w", err))
	}

	uc.log.Debug("keyset transaction broadcast", "tx", tx.Hash(), "keyset", keyset.Hash())
	uc.sink.OnProgress(ctx, ProgressEvent{
		Phase:   domain.PhaseKeyset,
		Stage:   StageSubmitted,
		Message: fmt.Sprintf("Transaction %s submitted, waiting for confirmation", tx.Hash()),
		Spinner: true,
	})

	receipt, err := uc.submitter.WaitMined(ctx, tx)
	if err != nil {
		return tx.Hash(), uc.fail(fmt.Errorf("waiting for confirmation: %w", err))
	}

	uc.log.Info("keyset installed",
		"keyset", keyset.Hash(),
		"sequencerInbox", contracts.SequencerInbox,
		"block", receipt.BlockNumber,
	)
	uc.sink.OnProgress(ctx, ProgressEvent{
		Phase:   domain.PhaseKeyset,
		Stage:   StageConfirmed,
		Message: fmt.Sprintf("Keyset valid as of block %d", receipt.BlockNumber),
	})

	return tx.Hash(), nil
}

func (uc *InstallKeyset) fail(cause error) error {
	err := &domain.KeysetError{Cause: cause}
	uc.sink.Error(err.Error())
	return err
}
