package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBase(t *testing.T) {
	for _, tc := range []struct {
		whole    uint64
		decimals uint8
		expected uint64
	}{
		{0, 9, 0},
		{1, 0, 1},
		{1, 9, 1_000_000_000},
		{21_000_000, 6, 21_000_000_000_000},
		{math.MaxUint64, 0, math.MaxUint64},
	} {
		actual, err := ToBase(tc.whole, tc.decimals)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, actual)
	}
}

func TestToBase_Overflow(t *testing.T) {
	_, err := ToBase(math.MaxUint64, 1)
	assert.Equal(t, ErrAmountTooLarge, err)

	_, err = ToBase(math.MaxUint64/1_000_000_000+1, 9)
	assert.Equal(t, ErrAmountTooLarge, err)
}

func TestToBase_InvalidDecimals(t *testing.T) {
	_, err := ToBase(1, MaxDecimals+1)
	assert.Error(t, err)
}

func TestFromBase(t *testing.T) {
	assert.Equal(t, uint64(1), FromBase(1_000_000_000, 9))
	assert.Equal(t, uint64(1), FromBase(1_999_999_999, 9))
	assert.Equal(t, uint64(42), FromBase(42, 0))
}
