// Package keypair loads and persists ed25519 signing keys in the JSON array
// format used by solana-keygen.
package keypair

import (
	"encoding/json"
	"os"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const secretKeySize = 64

var (
	// ErrKeypairExists indicates the destination file already exists and
	// force was not set.
	ErrKeypairExists = errors.New("keypair file already exists")

	// ErrInvalidKeypair indicates the keypair material is malformed.
	ErrInvalidKeypair = errors.New("invalid keypair")
)

// Generate returns a new random keypair.
func Generate() types.Account {
	return types.NewAccount()
}

// Load reads a keypair file containing a JSON array of the 64 secret key
// bytes, as written by solana-keygen and Save.
func Load(path string) (types.Account, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.Account{}, errors.Wrap(err, "error reading keypair file")
	}

	var values []int
	if err := json.Unmarshal(raw, &values); err != nil {
		return types.Account{}, errors.Wrap(ErrInvalidKeypair, "keypair file is not a json byte array")
	}
	if len(values) != secretKeySize {
		return types.Account{}, errors.Wrapf(ErrInvalidKeypair, "expected %d bytes, got %d", secretKeySize, len(values))
	}

	key := make([]byte, secretKeySize)
	for i, v := range values {
		if v < 0 || v > 255 {
			return types.Account{}, errors.Wrapf(ErrInvalidKeypair, "byte out of range at index %d", i)
		}
		key[i] = byte(v)
	}

	account, err := types.AccountFromBytes(key)
	if err != nil {
		return types.Account{}, errors.Wrap(err, "error constructing account from key bytes")
	}

	return account, nil
}

// FromBase58 constructs a keypair from a base58-encoded 64-byte secret key,
// the format used when passing keys through the environment.
func FromBase58(value string) (types.Account, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return types.Account{}, errors.Wrap(ErrInvalidKeypair, "secret key is not valid base58")
	}
	if len(decoded) != secretKeySize {
		return types.Account{}, errors.Wrapf(ErrInvalidKeypair, "expected %d bytes, got %d", secretKeySize, len(decoded))
	}

	return types.AccountFromBytes(decoded)
}

// Save writes the keypair to path in the solana-keygen JSON format. Existing
// files are never overwritten unless force is set.
func Save(path string, account types.Account, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrKeypairExists
		}
	}

	values := make([]int, len(account.PrivateKey))
	for i, b := range account.PrivateKey {
		values[i] = int(b)
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "error marshalling keypair")
	}

	if err := os.WriteFile(path, raw, 0600); err != nil {
		return errors.Wrap(err, "error writing keypair file")
	}

	return nil
}
