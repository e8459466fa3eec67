package ethereum

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// Submitter signs prepared transaction requests with the deployer key and
// broadcasts them on the parent chain. A single instance is bound at startup
// and reused by both transactional phases; it holds no mutable state beyond
// the connection.
type Submitter struct {
	client  *ethclient.Client
	opts    *bind.TransactOpts
	chainID *big.Int
	sender  common.Address
	log     *slog.Logger
}

// NewSubmitter binds a signing client for the deployer identity. The parent
// chain ID is fetched once so the EIP-155 signer matches the endpoint.
func NewSubmitter(
	ctx context.Context,
	client *ethclient.Client,
	deployer domain.Identity,
	log *slog.Logger,
) (*Submitter, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query parent chain ID: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(deployer.Key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}

	return &Submitter{
		client:  client,
		opts:    opts,
		chainID: chainID,
		sender:  deployer.Address(),
		log:     log,
	}, nil
}

// Sender returns the deployer address the submitter signs with.
func (s *Submitter) Sender() common.Address {
	return s.sender
}

// Submit signs req and broadcasts it. Gas is estimated per request; there is
// no retry, a broadcast transaction cannot be retracted.
func (s *Submitter) Submit(ctx context.Context, req *usecase.TxRequest) (*types.Transaction, error) {
	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.sender)
	if err != nil {
		return nil, fmt.Errorf("fetching nonce: %w", err)
	}

	head, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching chain head: %w", err)
	}

	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  s.sender,
		To:    &req.To,
		Value: value,
		Data:  req.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimating gas: %w", err)
	}

	to := req.To
	var tx *types.Transaction
	if head.BaseFee == nil {
		// Parent chain without EIP-1559 support, fall back to a legacy
		// transaction priced off eth_gasPrice.
		gasPrice, err := s.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching gas price: %w", err)
		}
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       &to,
			Value:    value,
			Data:     req.Data,
		})
	} else {
		tipCap, err := s.client.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching gas tip cap: %w", err)
		}
		feeCap := new(big.Int).Add(tipCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:   s.chainID,
			Nonce:     nonce,
			GasTipCap: tipCap,
			GasFeeCap: feeCap,
			Gas:       gas,
			To:        &to,
			Value:     value,
			Data:      req.Data,
		})
	}

	signed, err := s.opts.Signer(s.sender, tx)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("broadcasting transaction: %w", err)
	}

	s.log.Debug("transaction broadcast", "tx", signed.Hash(), "to", req.To, "gas", gas)
	return signed, nil
}

// WaitMined blocks until the transaction is mined and checks its status.
// Timeout handling is delegated to the context on the call.
func (s *Submitter) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, s.client, tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted in block %d", tx.Hash(), receipt.BlockNumber)
	}
	return receipt, nil
}

var _ usecase.Submitter = (*Submitter)(nil)
