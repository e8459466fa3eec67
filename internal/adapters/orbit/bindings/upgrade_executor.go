package bindings

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const upgradeExecutorABI = `[
  {
    "type": "function",
    "name": "executeCall",
    "stateMutability": "payable",
    "inputs": [
      {"name": "target", "type": "address"},
      {"name": "targetCallData", "type": "bytes"}
    ],
    "outputs": []
  }
]`

const sequencerInboxABI = `[
  {
    "type": "function",
    "name": "setValidKeyset",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "keysetBytes", "type": "bytes"}
    ],
    "outputs": []
  }
]`

// UpgradeExecutor is a minimal binding around the chain's upgrade executor.
type UpgradeExecutor struct {
	abi abi.ABI
}

// NewUpgradeExecutor creates a new instance of UpgradeExecutor.
func NewUpgradeExecutor() *UpgradeExecutor {
	parsed, err := abi.JSON(strings.NewReader(upgradeExecutorABI))
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &UpgradeExecutor{abi: parsed}
}

// PackExecuteCall packs the calldata for executeCall.
func (c *UpgradeExecutor) PackExecuteCall(target common.Address, targetCallData []byte) ([]byte, error) {
	return c.abi.Pack("executeCall", target, targetCallData)
}

// SequencerInbox is a minimal binding around the sequencer inbox, used only
// to pack the inner setValidKeyset call routed through the upgrade executor.
type SequencerInbox struct {
	abi abi.ABI
}

// NewSequencerInbox creates a new instance of SequencerInbox.
func NewSequencerInbox() *SequencerInbox {
	parsed, err := abi.JSON(strings.NewReader(sequencerInboxABI))
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &SequencerInbox{abi: parsed}
}

// PackSetValidKeyset packs the calldata for setValidKeyset.
func (c *SequencerInbox) PackSetValidKeyset(keysetBytes []byte) ([]byte, error) {
	return c.abi.Pack("setValidKeyset", keysetBytes)
}
