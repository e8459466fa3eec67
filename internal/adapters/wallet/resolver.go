package wallet

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// Resolver normalizes raw private key secrets into identities, generating
// fresh ephemeral keys for roles that have none configured.
type Resolver struct{}

// NewResolver creates an identity resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the identity for role. An empty secret yields a freshly
// generated key; a malformed one fails with domain.ErrInvalidKeyFormat.
// Generated keys are never persisted.
func (r *Resolver) Resolve(role domain.Role, rawKey string) (domain.Identity, error) {
	if strings.TrimSpace(rawKey) == "" {
		key, err := crypto.GenerateKey()
		if err != nil {
			return domain.Identity{}, fmt.Errorf("generating %s key: %w", role, err)
		}
		return domain.Identity{Role: role, Key: key, Generated: true}, nil
	}

	normalized := strings.TrimPrefix(strings.TrimSpace(rawKey), "0x")
	key, err := crypto.HexToECDSA(normalized)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %s key: %v", domain.ErrInvalidKeyFormat, role, err)
	}
	return domain.Identity{Role: role, Key: key}, nil
}

var _ usecase.IdentityResolver = (*Resolver)(nil)
