package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// MockChainSDK is a mock implementation of ChainSDK
type MockChainSDK struct {
	mock.Mock
}

func (m *MockChainSDK) PrepareChainConfig(chainID uint64, owner common.Address, flags domain.FeatureFlags) ([]byte, error) {
	args := m.Called(chainID, owner, flags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChainSDK) PrepareDeployParams(ctx context.Context, read usecase.ReadClient, params domain.ChainParams, batchPosters, validators []common.Address) (*domain.DeployParams, error) {
	args := m.Called(ctx, read, params, batchPosters, validators)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeployParams), args.Error(1)
}

func (m *MockChainSDK) PrepareDeploymentTx(params *domain.DeployParams) (*usecase.TxRequest, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TxRequest), args.Error(1)
}

func (m *MockChainSDK) ParseDeployment(receipt *types.Receipt) (*domain.CoreContracts, error) {
	args := m.Called(receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoreContracts), args.Error(1)
}

func (m *MockChainSDK) PrepareKeysetTx(contracts *domain.CoreContracts, keyset domain.Keyset) (*usecase.TxRequest, error) {
	args := m.Called(contracts, keyset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TxRequest), args.Error(1)
}

// MockSubmitter is a mock implementation of Submitter
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Sender() common.Address {
	args := m.Called()
	return args.Get(0).(common.Address)
}

func (m *MockSubmitter) Submit(ctx context.Context, req *usecase.TxRequest) (*types.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Transaction), args.Error(1)
}

func (m *MockSubmitter) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

// MockReadClient is a mock implementation of ReadClient
type MockReadClient struct {
	mock.Mock
}

func (m *MockReadClient) ChainID(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockReadClient) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	args := m.Called(ctx, account, blockNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockKeysetSource is a mock implementation of KeysetSource
type MockKeysetSource struct {
	mock.Mock
}

func (m *MockKeysetSource) Load(ctx context.Context) (*domain.Keyset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Keyset), args.Error(1)
}

// fakeResolver hands out real generated keys so addresses are well formed.
type fakeResolver struct {
	resolved map[domain.Role]domain.Identity
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{resolved: make(map[domain.Role]domain.Identity)}
}

func (r *fakeResolver) Resolve(role domain.Role, rawKey string) (domain.Identity, error) {
	if id, ok := r.resolved[role]; ok {
		return id, nil
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		return domain.Identity{}, err
	}
	id := domain.Identity{Role: role, Key: key, Generated: rawKey == ""}
	r.resolved[role] = id
	return id, nil
}

// recordingSink captures progress events for assertions.
type recordingSink struct {
	events []usecase.ProgressEvent
	errors []string
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(message string) {}

func (s *recordingSink) Error(message string) {
	s.errors = append(s.errors, message)
}

func (s *recordingSink) stages(phase domain.Phase) []usecase.Stage {
	var out []usecase.Stage
	for _, ev := range s.events {
		if ev.Phase == phase {
			out = append(out, ev.Stage)
		}
	}
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
