// Package subtle provides the low-level bit string primitives behind radix conversion.
// Bit strings are plain Go strings made of '0' and '1' characters.
// It should not be used directly by most users; instead use the high-level APIs in the parent package.
package subtle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPaddingOverflow is returned when a bit string is already longer than the requested length.
	ErrPaddingOverflow = errors.New("bit string longer than target length")

	// ErrUngroupableLength is returned when a bit string cannot be split evenly into groups.
	ErrUngroupableLength = errors.New("bit string length not divisible by group size")

	// ErrInvalidModulus is returned for non-positive moduli and group sizes.
	ErrInvalidModulus = errors.New("modulus must be positive")
)

// Side selects where padding zeros are added.
type Side int

const (
	// Left pads before the bits. A left-padded number keeps its value.
	Left Side = iota
	// Right pads after the bits, at the end of a stream.
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Pad pads bits with '0' on the given side until it is exactly length long.
// It never truncates: a longer input returns ErrPaddingOverflow.
func Pad(side Side, length int, bits string) (string, error) {
	if len(bits) > length {
		return "", fmt.Errorf("%w: %q is %d bits, target %d", ErrPaddingOverflow, bits, len(bits), length)
	}
	if len(bits) == length {
		return bits, nil
	}

	zeros := strings.Repeat("0", length-len(bits))
	if side == Left {
		return zeros + bits, nil
	}
	return bits + zeros, nil
}

// PadMod pads bits on the given side up to the next multiple of mod.
// An empty input stays empty.
func PadMod(side Side, mod int, bits string) (string, error) {
	if mod <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidModulus, mod)
	}
	mul := (len(bits) + mod - 1) / mod
	return Pad(side, mod*mul, bits)
}

// GroupsOf splits bits into consecutive groups of exactly size characters.
func GroupsOf(size int, bits string) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got group size %d", ErrInvalidModulus, size)
	}
	if len(bits)%size != 0 {
		return nil, fmt.Errorf("%w: %d bits into groups of %d", ErrUngroupableLength, len(bits), size)
	}

	groups := make([]string, 0, len(bits)/size)
	for i := 0; i < len(bits); i += size {
		groups = append(groups, bits[i:i+size])
	}
	return groups, nil
}
