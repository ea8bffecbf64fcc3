package subtle

import (
	"fmt"
	"math/bits"
	"strconv"
)

// BitLength returns the number of bits needed to represent n.
// Zero still occupies one bit.
func BitLength(n uint64) int {
	if n == 0 {
		return 1
	}
	return bits.Len64(n)
}

// FormatBits renders n in base 2, left-padded to width bits.
// A value that needs more than width bits returns ErrPaddingOverflow.
func FormatBits(n uint64, width int) (string, error) {
	if l := BitLength(n); l > width {
		return "", fmt.Errorf("%w: %d needs %d bits, width %d", ErrPaddingOverflow, n, l, width)
	}
	return Pad(Left, width, strconv.FormatUint(n, 2))
}

// ParseBits parses a group of at most 64 bits as an unsigned base-2 integer.
func ParseBits(group string) (uint64, error) {
	n, err := strconv.ParseUint(group, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bit group %q: %w", group, err)
	}
	return n, nil
}
