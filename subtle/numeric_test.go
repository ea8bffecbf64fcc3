package subtle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitLength(t *testing.T) {
	assert.Equal(t, 1, BitLength(0))
	assert.Equal(t, 1, BitLength(1))
	assert.Equal(t, 8, BitLength(255))
	assert.Equal(t, 9, BitLength(256))
	assert.Equal(t, 64, BitLength(math.MaxUint64))
}

func TestFormatBits(t *testing.T) {
	got, err := FormatBits(5, 8)
	require.NoError(t, err)
	assert.Equal(t, "00000101", got)

	_, err = FormatBits(256, 8)
	require.ErrorIs(t, err, ErrPaddingOverflow)
	assert.Contains(t, err.Error(), "256 needs 9 bits, width 8")
}

func TestParseBits(t *testing.T) {
	n, err := ParseBits("11111110")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xfe), n)

	_, err = ParseBits("10201")
	require.Error(t, err)
}

func TestFormatParse_RoundTrip(t *testing.T) {
	for p := 1; p <= 12; p++ {
		for v := uint64(0); v < 1<<p; v++ {
			s, err := FormatBits(v, p)
			require.NoError(t, err)
			require.Len(t, s, p)
			got, err := ParseBits(s)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}
