package ethereum

import (
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
)

// NewReadClient dials the parent chain RPC endpoint and returns the shared
// read client. Warns when falling back to the default public endpoint, which
// is rate limited and can time out during confirmation waits.
func NewReadClient(cfg *config.RuntimeConfig, log *slog.Logger) (*ethclient.Client, error) {
	if !cfg.ParentRPCIsSet {
		log.Warn("PARENT_CHAIN_RPC not set, using default public endpoint; requests may be rate limited or time out",
			"endpoint", cfg.ParentRPC)
	}

	client, err := ethclient.Dial(cfg.ParentRPC)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to parent chain at %s: %w", cfg.ParentRPC, err)
	}
	return client, nil
}
