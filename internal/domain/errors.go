package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for startup validation. Both halt the process before any
// network activity.
var (
	// ErrMissingConfig is returned when a required setting is absent
	ErrMissingConfig = errors.New("missing required config")

	// ErrInvalidKeyFormat is returned when a private key secret cannot be parsed
	ErrInvalidKeyFormat = errors.New("invalid private key format")

	// ErrInvalidAddress is returned when an account address is malformed
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNoContracts is returned when the keyset phase has no core contracts to act on
	ErrNoContracts = errors.New("no core contracts available")
)

// DeploymentError wraps any failure during deployment transaction
// construction, submission or confirmation.
type DeploymentError struct {
	ChainID uint64
	Cause   error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("rollup deployment failed (chain %d): %v", e.ChainID, e.Cause)
}

func (e *DeploymentError) Unwrap() error {
	return e.Cause
}

// KeysetError wraps any failure during keyset installation.
type KeysetError struct {
	Cause error
}

func (e *KeysetError) Error() string {
	return fmt.Sprintf("keyset installation failed: %v", e.Cause)
}

func (e *KeysetError) Unwrap() error {
	return e.Cause
}
