package wordfmt

import (
	"fmt"
	"strings"

	"github.com/vdparikh/wordfmt/subtle"
)

// MaxPower is the widest digit a NumArray can hold.
const MaxPower = 64

// BitString is a flat sequence of '0' and '1' characters with no grouping.
type BitString string

// NumArray is a sequence of unsigned digits, each Power bits wide.
// Every element of Nums must be strictly less than 2^Power.
type NumArray struct {
	Power int
	Nums  []uint64
}

func checkPower(power int) error {
	if power < 1 || power > MaxPower {
		return fmt.Errorf("%w: got %d", ErrInvalidPower, power)
	}
	return nil
}

// NaToBs serializes na to a bit string, each digit left-padded to na.Power bits.
// The result is exactly len(na.Nums)*na.Power bits long.
func NaToBs(na NumArray) (BitString, error) {
	if err := checkPower(na.Power); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(na.Nums) * na.Power)
	for i, n := range na.Nums {
		chunk, err := subtle.FormatBits(n, na.Power)
		if err != nil {
			return "", fmt.Errorf("digit %d does not fit in %d bits: %w", i, na.Power, err)
		}
		sb.WriteString(chunk)
	}
	return BitString(sb.String()), nil
}

// BsToNa splits bs into digits of the given power.
// bs is right-padded with zeros to a multiple of power first, so the result
// has ceil(len(bs)/power) digits and the last one may carry padding.
func BsToNa(power int, bs BitString) (NumArray, error) {
	if err := checkPower(power); err != nil {
		return NumArray{}, err
	}

	padded, err := subtle.PadMod(subtle.Right, power, string(bs))
	if err != nil {
		return NumArray{}, err
	}
	groups, err := subtle.GroupsOf(power, padded)
	if err != nil {
		return NumArray{}, err
	}

	nums := make([]uint64, len(groups))
	for i, g := range groups {
		n, err := subtle.ParseBits(g)
		if err != nil {
			return NumArray{}, err
		}
		nums[i] = n
	}
	return NumArray{Power: power, Nums: nums}, nil
}

// ConvertNa re-encodes na as digits of toPower bits.
//
// The conversion is lossless only when len(na.Nums)*na.Power is a multiple of
// toPower. Otherwise the trailing zero bits added by BsToNa form an extra
// final digit, and converting back yields one more digit than the source.
func ConvertNa(toPower int, na NumArray) (NumArray, error) {
	bs, err := NaToBs(na)
	if err != nil {
		return NumArray{}, err
	}
	return BsToNa(toPower, bs)
}

// BitLen returns the number of bits na occupies when serialized.
func (na NumArray) BitLen() int {
	return len(na.Nums) * na.Power
}
