package fs

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

// KeysetFileSource loads the pre-encoded committee keyset blob from disk.
// The blob is produced by the committee tooling; this tool treats it as
// opaque bytes.
type KeysetFileSource struct {
	path string
}

// NewKeysetFileSource creates a keyset source for the configured file path.
func NewKeysetFileSource(cfg *config.RuntimeConfig) *KeysetFileSource {
	return &KeysetFileSource{path: cfg.KeysetFile}
}

// Load reads the keyset blob. Returns nil when no keyset file is configured.
// Files containing hex (with or without 0x prefix) are decoded; anything
// else is taken as raw bytes.
func (s *KeysetFileSource) Load(ctx context.Context) (*domain.Keyset, error) {
	if s.path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading keyset file %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("keyset file %s is empty", s.path)
	}

	trimmed := strings.TrimSpace(string(raw))
	if decoded, err := hex.DecodeString(strings.TrimPrefix(trimmed, "0x")); err == nil {
		return &domain.Keyset{Blob: decoded}, nil
	}
	return &domain.Keyset{Blob: raw}, nil
}

var _ usecase.KeysetSource = (*KeysetFileSource)(nil)
