package ethereum_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/orbit-deploy/internal/adapters/ethereum"
	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
)

func TestNewReadClient(t *testing.T) {
	t.Run("warns when falling back to the default endpoint", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		client, err := ethereum.NewReadClient(&config.RuntimeConfig{
			ParentRPC:      "http://localhost:8545",
			ParentRPCIsSet: false,
		}, log)
		require.NoError(t, err)
		defer client.Close()

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "PARENT_CHAIN_RPC not set")
		assert.Contains(t, buf.String(), "http://localhost:8545")
	})

	t.Run("silent when an endpoint is configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		client, err := ethereum.NewReadClient(&config.RuntimeConfig{
			ParentRPC:      "http://localhost:8545",
			ParentRPCIsSet: true,
		}, log)
		require.NoError(t, err)
		defer client.Close()

		assert.Empty(t, buf.String())
	})
}
