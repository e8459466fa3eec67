package ethereum_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/orbit-deploy/internal/adapters/ethereum"
	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

const devKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRPC is a minimal parent chain JSON-RPC endpoint. baseFee "" renders a
// chain head without baseFeePerGas, as a pre-EIP-1559 node would.
type fakeRPC struct {
	*httptest.Server
	baseFee string

	mu    sync.Mutex
	calls []string
}

func newFakeRPC(baseFee string) *fakeRPC {
	f := &fakeRPC{baseFee: baseFee}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeRPC) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRPC) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, req.Method)
	f.mu.Unlock()

	var result any
	switch req.Method {
	case "eth_chainId":
		result = "0x539"
	case "eth_getTransactionCount":
		result = "0x0"
	case "eth_gasPrice":
		result = "0x3b9aca00"
	case "eth_maxPriorityFeePerGas":
		result = "0x3b9aca00"
	case "eth_estimateGas":
		result = "0x186a0"
	case "eth_getBlockByNumber":
		result = f.header()
	case "eth_sendRawTransaction":
		result = "0x" + strings.Repeat("11", 32)
	default:
		http.Error(w, "unexpected method "+req.Method, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      req.ID,
		"result":  result,
	})
}

func (f *fakeRPC) header() map[string]any {
	zero32 := "0x" + strings.Repeat("00", 32)
	head := map[string]any{
		"parentHash":       zero32,
		"sha3Uncles":       zero32,
		"miner":            "0x" + strings.Repeat("00", 20),
		"stateRoot":        zero32,
		"transactionsRoot": zero32,
		"receiptsRoot":     zero32,
		"logsBloom":        "0x" + strings.Repeat("00", 256),
		"difficulty":       "0x0",
		"number":           "0x1",
		"gasLimit":         "0x1c9c380",
		"gasUsed":          "0x0",
		"timestamp":        "0x0",
		"extraData":        "0x",
		"mixHash":          zero32,
		"nonce":            "0x0000000000000000",
	}
	if f.baseFee != "" {
		head["baseFeePerGas"] = f.baseFee
	}
	return head
}

func newTestSubmitter(t *testing.T, rpc *fakeRPC) *ethereum.Submitter {
	t.Helper()
	client, err := ethclient.Dial(rpc.URL)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	key, err := crypto.HexToECDSA(devKey)
	require.NoError(t, err)

	sub, err := ethereum.NewSubmitter(context.Background(), client, domain.Identity{
		Role: domain.RoleDeployer,
		Key:  key,
	}, testLogger())
	require.NoError(t, err)
	return sub
}

func TestSubmitter(t *testing.T) {
	t.Run("EIP-1559 parent gets a dynamic fee transaction", func(t *testing.T) {
		rpc := newFakeRPC("0x3b9aca00")
		defer rpc.Close()

		sub := newTestSubmitter(t, rpc)
		tx, err := sub.Submit(context.Background(), &usecase.TxRequest{
			To:   sub.Sender(),
			Data: []byte{0x01},
		})

		require.NoError(t, err)
		assert.Equal(t, uint8(gethtypes.DynamicFeeTxType), tx.Type())
		// feeCap = tip + 2*baseFee = 1 gwei + 2 gwei
		assert.Equal(t, "3000000000", tx.GasFeeCap().String())
		assert.Contains(t, rpc.methods(), "eth_sendRawTransaction")
	})

	t.Run("parent without base fee gets a legacy transaction", func(t *testing.T) {
		rpc := newFakeRPC("")
		defer rpc.Close()

		sub := newTestSubmitter(t, rpc)
		tx, err := sub.Submit(context.Background(), &usecase.TxRequest{
			To:   sub.Sender(),
			Data: []byte{0x01},
		})

		require.NoError(t, err)
		assert.Equal(t, uint8(gethtypes.LegacyTxType), tx.Type())
		assert.Equal(t, "1000000000", tx.GasPrice().String())
		assert.Contains(t, rpc.methods(), "eth_sendRawTransaction")
		assert.NotContains(t, rpc.methods(), "eth_maxPriorityFeePerGas")
	})
}
