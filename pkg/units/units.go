// Package units converts between whole token amounts and the base units
// understood by the token program.
package units

import (
	"math"

	"github.com/pkg/errors"
)

// ErrAmountTooLarge indicates the scaled amount does not fit in a uint64.
var ErrAmountTooLarge = errors.New("amount overflows uint64")

// MaxDecimals is the largest decimal count supported by SPL mints.
const MaxDecimals = 9

// ToBase scales a whole token amount by the mint's decimal count.
func ToBase(whole uint64, decimals uint8) (uint64, error) {
	if decimals > MaxDecimals {
		return 0, errors.Errorf("decimals must be at most %d, got %d", MaxDecimals, decimals)
	}

	factor := pow10(decimals)
	if whole != 0 && factor > math.MaxUint64/whole {
		return 0, ErrAmountTooLarge
	}

	return whole * factor, nil
}

// FromBase converts a base unit amount to whole tokens, truncating any
// fractional remainder.
func FromBase(base uint64, decimals uint8) uint64 {
	return base / pow10(decimals)
}

func pow10(exp uint8) uint64 {
	result := uint64(1)
	for i := uint8(0); i < exp; i++ {
		result *= 10
	}
	return result
}
