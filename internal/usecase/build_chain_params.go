package usecase

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
)

// Chain IDs below this floor are reserved for well-known networks; generated
// IDs start above it so a fresh chain can never shadow one of them.
const chainIDFloor = 1 << 32

// ChainParamsBuilder derives the per-attempt chain parameters. Pure given its
// randomness source; performs no network calls.
type ChainParamsBuilder struct {
	rand io.Reader
	sdk  ChainSDK
}

// NewChainParamsBuilder creates a builder drawing chain IDs from rand.
func NewChainParamsBuilder(rand io.Reader, sdk ChainSDK) *ChainParamsBuilder {
	return &ChainParamsBuilder{rand: rand, sdk: sdk}
}

// Build assembles ChainParams for one deployment attempt. The chain ID is
// generated anew on every call; a submitted ID is never reused, whether or
// not the deployment succeeds. Collision with an existing chain is accepted
// as negligible and not checked against the parent chain.
func (b *ChainParamsBuilder) Build(owner common.Address, feeToken common.Address) (*domain.ChainParams, error) {
	chainID, err := b.generateChainID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chain ID: %w", err)
	}

	flags := domain.FeatureFlags{
		DataAvailabilityCommittee: true,
	}

	blob, err := b.sdk.PrepareChainConfig(chainID, owner, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chain config: %w", err)
	}

	return &domain.ChainParams{
		ChainID:        chainID,
		Owner:          owner,
		Flags:          flags,
		NativeFeeToken: feeToken,
		ChainConfig:    blob,
	}, nil
}

func (b *ChainParamsBuilder) generateChainID() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(b.rand, buf[:]); err != nil {
		return 0, err
	}
	id := binary.BigEndian.Uint64(buf[:])

	// Clear the top bit to stay inside the EIP-155 signable range, then lift
	// out of the reserved floor.
	id &^= 1 << 63
	if id < chainIDFloor {
		id += chainIDFloor
	}
	return id, nil
}
