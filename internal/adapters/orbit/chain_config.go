package orbit

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
)

// initialArbOSVersion is the ArbOS version new chains boot with.
const initialArbOSVersion = 32

// chainConfig is the genesis chain config blob the rollup creator embeds in
// the chain. The JSON shape follows the Nitro chain config format; field
// casing inside "arbitrum" is part of that format.
type chainConfig struct {
	ChainID             uint64          `json:"chainId"`
	HomesteadBlock      uint64          `json:"homesteadBlock"`
	DAOForkBlock        *uint64         `json:"daoForkBlock"`
	DAOForkSupport      bool            `json:"daoForkSupport"`
	EIP150Block         uint64          `json:"eip150Block"`
	EIP155Block         uint64          `json:"eip155Block"`
	EIP158Block         uint64          `json:"eip158Block"`
	ByzantiumBlock      uint64          `json:"byzantiumBlock"`
	ConstantinopleBlock uint64          `json:"constantinopleBlock"`
	PetersburgBlock     uint64          `json:"petersburgBlock"`
	IstanbulBlock       uint64          `json:"istanbulBlock"`
	MuirGlacierBlock    uint64          `json:"muirGlacierBlock"`
	BerlinBlock         uint64          `json:"berlinBlock"`
	LondonBlock         uint64          `json:"londonBlock"`
	Clique              cliqueConfig    `json:"clique"`
	Arbitrum            arbitrumConfig  `json:"arbitrum"`
}

type cliqueConfig struct {
	Period uint64 `json:"period"`
	Epoch  uint64 `json:"epoch"`
}

type arbitrumConfig struct {
	EnableArbOS               bool           `json:"EnableArbOS"`
	AllowDebugPrecompiles     bool           `json:"AllowDebugPrecompiles"`
	DataAvailabilityCommittee bool           `json:"DataAvailabilityCommittee"`
	InitialArbOSVersion       uint64         `json:"InitialArbOSVersion"`
	InitialChainOwner         common.Address `json:"InitialChainOwner"`
	GenesisBlockNum           uint64         `json:"GenesisBlockNum"`
}

// PrepareChainConfig encodes the chain configuration blob for a new chain.
func (s *SDK) PrepareChainConfig(chainID uint64, owner common.Address, flags domain.FeatureFlags) ([]byte, error) {
	cfg := chainConfig{
		ChainID:        chainID,
		DAOForkSupport: true,
		Arbitrum: arbitrumConfig{
			EnableArbOS:               true,
			DataAvailabilityCommittee: flags.DataAvailabilityCommittee,
			InitialArbOSVersion:       initialArbOSVersion,
			InitialChainOwner:         owner,
		},
	}

	blob, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding chain config: %w", err)
	}
	return blob, nil
}
