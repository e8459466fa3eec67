// Hand-maintained minimal bindings for the Orbit rollup creator contract.
// Only the surface this tool calls is bound.

package bindings

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const rollupCreatorABI = `[
  {
    "type": "function",
    "name": "createRollup",
    "stateMutability": "payable",
    "inputs": [
      {
        "name": "params",
        "type": "tuple",
        "components": [
          {"name": "chainId", "type": "uint64"},
          {"name": "owner", "type": "address"},
          {"name": "chainConfig", "type": "string"},
          {"name": "maxDataSize", "type": "uint256"},
          {"name": "nativeToken", "type": "address"},
          {"name": "batchPosters", "type": "address[]"},
          {"name": "validators", "type": "address[]"}
        ]
      }
    ],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "type": "event",
    "name": "RollupCreated",
    "anonymous": false,
    "inputs": [
      {"name": "rollupAddress", "type": "address", "indexed": true},
      {"name": "nativeToken", "type": "address", "indexed": true},
      {"name": "inboxAddress", "type": "address", "indexed": false},
      {"name": "outbox", "type": "address", "indexed": false},
      {"name": "rollupEventInbox", "type": "address", "indexed": false},
      {"name": "challengeManager", "type": "address", "indexed": false},
      {"name": "adminProxy", "type": "address", "indexed": false},
      {"name": "sequencerInbox", "type": "address", "indexed": false},
      {"name": "bridge", "type": "address", "indexed": false},
      {"name": "upgradeExecutor", "type": "address", "indexed": false},
      {"name": "validatorWalletCreator", "type": "address", "indexed": false}
    ]
  }
]`

// RollupDeploymentParams mirrors the createRollup tuple argument.
type RollupDeploymentParams struct {
	ChainId      uint64
	Owner        common.Address
	ChainConfig  string
	MaxDataSize  *big.Int
	NativeToken  common.Address
	BatchPosters []common.Address
	Validators   []common.Address
}

// RollupCreatedEvent is the decoded RollupCreated log.
type RollupCreatedEvent struct {
	RollupAddress          common.Address
	NativeToken            common.Address
	InboxAddress           common.Address
	Outbox                 common.Address
	RollupEventInbox       common.Address
	ChallengeManager       common.Address
	AdminProxy             common.Address
	SequencerInbox         common.Address
	Bridge                 common.Address
	UpgradeExecutor        common.Address
	ValidatorWalletCreator common.Address
}

// RollupCreator is a minimal Go binding around the rollup creator contract.
type RollupCreator struct {
	abi abi.ABI
}

// NewRollupCreator creates a new instance of RollupCreator.
func NewRollupCreator() *RollupCreator {
	parsed, err := abi.JSON(strings.NewReader(rollupCreatorABI))
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &RollupCreator{abi: parsed}
}

// PackCreateRollup packs the calldata for createRollup.
func (c *RollupCreator) PackCreateRollup(params RollupDeploymentParams) ([]byte, error) {
	return c.abi.Pack("createRollup", params)
}

// RollupCreatedTopic returns the topic hash of the RollupCreated event.
func (c *RollupCreator) RollupCreatedTopic() common.Hash {
	return c.abi.Events["RollupCreated"].ID
}

// UnpackRollupCreated decodes a RollupCreated log.
func (c *RollupCreator) UnpackRollupCreated(log *types.Log) (*RollupCreatedEvent, error) {
	if len(log.Topics) != 3 || log.Topics[0] != c.RollupCreatedTopic() {
		return nil, fmt.Errorf("log is not a RollupCreated event")
	}

	values, err := c.abi.Unpack("RollupCreated", log.Data)
	if err != nil {
		return nil, fmt.Errorf("unpacking RollupCreated data: %w", err)
	}
	if len(values) != 9 {
		return nil, fmt.Errorf("unexpected RollupCreated field count: %d", len(values))
	}

	ev := &RollupCreatedEvent{
		RollupAddress: common.BytesToAddress(log.Topics[1].Bytes()),
		NativeToken:   common.BytesToAddress(log.Topics[2].Bytes()),
	}
	dst := []*common.Address{
		&ev.InboxAddress,
		&ev.Outbox,
		&ev.RollupEventInbox,
		&ev.ChallengeManager,
		&ev.AdminProxy,
		&ev.SequencerInbox,
		&ev.Bridge,
		&ev.UpgradeExecutor,
		&ev.ValidatorWalletCreator,
	}
	for i, v := range values {
		addr, ok := v.(common.Address)
		if !ok {
			return nil, fmt.Errorf("unexpected RollupCreated field type at %d: %T", i, v)
		}
		*dst[i] = addr
	}

	return ev, nil
}
