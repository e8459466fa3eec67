package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
)

// OrchestrateDeployment drives the whole run: identity resolution, chain
// parameter derivation, then the two transactional phases in sequence. Each
// phase is fault isolated; its outcome is collected as a PhaseResult and the
// driver always reaches the end of the sequence. There is no retry and no
// rollback: a broadcast transaction cannot be retracted, and partial state is
// left for the operator.
type OrchestrateDeployment struct {
	cfg      *config.RuntimeConfig
	resolver IdentityResolver
	builder  *ChainParamsBuilder
	deploy   *DeployRollup
	keyset   *InstallKeyset
	keysets  KeysetSource
	log      *slog.Logger
}

// NewOrchestrateDeployment creates the orchestration driver.
func NewOrchestrateDeployment(
	cfg *config.RuntimeConfig,
	resolver IdentityResolver,
	builder *ChainParamsBuilder,
	deploy *DeployRollup,
	keyset *InstallKeyset,
	keysets KeysetSource,
	log *slog.Logger,
) *OrchestrateDeployment {
	return &OrchestrateDeployment{
		cfg:      cfg,
		resolver: resolver,
		builder:  builder,
		deploy:   deploy,
		keyset:   keyset,
		keysets:  keysets,
		log:      log,
	}
}

// Run executes one deployment. An error return means the run failed before
// any transaction was attempted; once the transactional phases begin, their
// failures are reported through the returned DeploymentResult instead.
func (uc *OrchestrateDeployment) Run(ctx context.Context) (*domain.DeploymentResult, error) {
	deployer, err := uc.resolver.Resolve(domain.RoleDeployer, uc.cfg.DeployerKey)
	if err != nil {
		return nil, fmt.Errorf("resolving deployer identity: %w", err)
	}
	batchPoster, err := uc.resolver.Resolve(domain.RoleBatchPoster, uc.cfg.BatchPosterKey)
	if err != nil {
		return nil, fmt.Errorf("resolving batch poster identity: %w", err)
	}
	validator, err := uc.resolver.Resolve(domain.RoleValidator, uc.cfg.ValidatorKey)
	if err != nil {
		return nil, fmt.Errorf("resolving validator identity: %w", err)
	}

	uc.log.Info("identities resolved",
		"deployer", deployer.Address(),
		"batchPoster", batchPoster.Address(),
		"batchPosterGenerated", batchPoster.Generated,
		"validator", validator.Address(),
		"validatorGenerated", validator.Generated,
	)

	params, err := uc.builder.Build(deployer.Address(), common.HexToAddress(uc.cfg.FeeTokenAddress))
	if err != nil {
		return nil, fmt.Errorf("building chain parameters: %w", err)
	}

	result := &domain.DeploymentResult{
		ChainID: params.ChainID,
		Owner:   params.Owner,
	}

	contracts, txHash, deployErr := uc.deploy.Run(ctx, params,
		[]common.Address{batchPoster.Address()},
		[]common.Address{validator.Address()},
	)
	if deployErr != nil {
		uc.log.Error("deployment phase failed", "err", deployErr)
		result.Phases = append(result.Phases, domain.PhaseResult{
			Phase:  domain.PhaseDeployment,
			Status: domain.PhaseFailed,
			TxHash: txHash,
			Err:    deployErr,
		})
	} else {
		result.Contracts = contracts
		result.Phases = append(result.Phases, domain.PhaseResult{
			Phase:  domain.PhaseDeployment,
			Status: domain.PhaseSucceeded,
			TxHash: txHash,
		})
	}

	result.Phases = append(result.Phases, uc.runKeysetPhase(ctx, contracts, deployErr))

	return result, nil
}

// runKeysetPhase decides whether the keyset installation can proceed and
// runs it. It runs after the deployment phase no matter how that phase ended,
// but it acts only on the contracts that phase actually produced: with no
// contracts there is nothing to install against, and the phase is recorded
// as skipped with the blocking error as cause.
func (uc *OrchestrateDeployment) runKeysetPhase(ctx context.Context, contracts *domain.CoreContracts, deployErr error) domain.PhaseResult {
	keyset, err := uc.keysets.Load(ctx)
	if err != nil {
		uc.log.Error("keyset phase failed", "err", err)
		return domain.PhaseResult{
			Phase:  domain.PhaseKeyset,
			Status: domain.PhaseFailed,
			Err:    &domain.KeysetError{Cause: err},
		}
	}
	if keyset == nil {
		uc.log.Info("no keyset configured, skipping keyset installation")
		return domain.PhaseResult{
			Phase:  domain.PhaseKeyset,
			Status: domain.PhaseSkipped,
		}
	}
	if contracts == nil {
		uc.log.Warn("skipping keyset installation, deployment produced no contracts", "cause", deployErr)
		return domain.PhaseResult{
			Phase:  domain.PhaseKeyset,
			Status: domain.PhaseSkipped,
			Err:    deployErr,
		}
	}

	txHash, err := uc.keyset.Run(ctx, contracts, *keyset)
	if err != nil {
		uc.log.Error("keyset phase failed", "err", err)
		return domain.PhaseResult{
			Phase:  domain.PhaseKeyset,
			Status: domain.PhaseFailed,
			TxHash: txHash,
			Err:    err,
		}
	}
	return domain.PhaseResult{
		Phase:  domain.PhaseKeyset,
		Status: domain.PhaseSucceeded,
		TxHash: txHash,
	}
}
