package usecase_test

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

func TestChainParamsBuilder(t *testing.T) {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	feeToken := common.HexToAddress("0x2222222222222222222222222222222222222222")
	seed := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	build := func(t *testing.T) *domain.ChainParams {
		t.Helper()
		sdk := &MockChainSDK{}
		sdk.On("PrepareChainConfig", mock.Anything, owner, domain.FeatureFlags{DataAvailabilityCommittee: true}).
			Return([]byte(`{"chainConfig":true}`), nil)

		builder := usecase.NewChainParamsBuilder(bytes.NewReader(seed), sdk)
		params, err := builder.Build(owner, feeToken)
		require.NoError(t, err)
		return params
	}

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		first := build(t)
		second := build(t)

		assert.Equal(t, first.ChainID, second.ChainID)
		assert.Equal(t, first.ChainConfig, second.ChainConfig)
	})

	t.Run("fresh chain ID per attempt", func(t *testing.T) {
		sdk := &MockChainSDK{}
		sdk.On("PrepareChainConfig", mock.Anything, owner, mock.Anything).
			Return([]byte(`{}`), nil)

		// One reader across both builds: each attempt consumes new entropy.
		builder := usecase.NewChainParamsBuilder(bytes.NewReader(append(seed, seed...)), sdk)
		first, err := builder.Build(owner, feeToken)
		require.NoError(t, err)
		second, err := builder.Build(owner, feeToken)
		require.NoError(t, err)

		assert.NotEqual(t, first.ChainID, second.ChainID)
	})

	t.Run("carries owner, flags and fee token", func(t *testing.T) {
		params := build(t)

		assert.Equal(t, owner, params.Owner)
		assert.Equal(t, feeToken, params.NativeFeeToken)
		assert.True(t, params.Flags.DataAvailabilityCommittee)
		assert.NotEmpty(t, params.ChainConfig)
	})

	t.Run("chain ID stays out of the reserved range", func(t *testing.T) {
		params := build(t)

		assert.Greater(t, params.ChainID, uint64(1<<32))
		assert.Less(t, params.ChainID, uint64(1)<<63)
	})

	t.Run("exhausted randomness source fails", func(t *testing.T) {
		sdk := &MockChainSDK{}
		builder := usecase.NewChainParamsBuilder(bytes.NewReader([]byte{0x01}), sdk)

		_, err := builder.Build(owner, feeToken)
		assert.ErrorContains(t, err, "failed to generate chain ID")
	})
}
