// Package metadata handles both sides of a token's metadata: the off-chain
// JSON document stored on decentralized storage, and the on-chain metadata
// account owned by the token metadata program.
package metadata

import (
	"github.com/pkg/errors"
)

// Token metadata program account limits.
//
// Reference: https://github.com/metaplex-foundation/mpl-token-metadata/blob/main/programs/token-metadata/program/src/state/data.rs
const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxUriLength    = 200
)

// TokenMetadata is the off-chain JSON document referenced by the on-chain
// metadata URI, following the metaplex fungible token standard.
type TokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ExternalUrl string `json:"external_url,omitempty"`
}

// Validate checks the on-chain field limits enforced by the token metadata
// program, so oversized values fail before a transaction is submitted.
func Validate(name, symbol, uri string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > MaxNameLength {
		return errors.Errorf("name exceeds %d characters", MaxNameLength)
	}
	if symbol == "" {
		return errors.New("symbol is required")
	}
	if len(symbol) > MaxSymbolLength {
		return errors.Errorf("symbol exceeds %d characters", MaxSymbolLength)
	}
	if len(uri) > MaxUriLength {
		return errors.Errorf("uri exceeds %d characters", MaxUriLength)
	}
	return nil
}
