package wordfmt

import (
	"fmt"
	"unicode/utf8"
)

// BytePower is the digit width used to interchange raw bytes and text.
const BytePower = 8

// StringToNa converts s to its UTF-8 bytes as a power-8 NumArray.
func StringToNa(s string) NumArray {
	return BytesToNa([]byte(s))
}

// NaToString converts na to power 8 and decodes the bytes as UTF-8.
// Invalid UTF-8 returns ErrInvalidEncoding rather than replacement characters.
func NaToString(na NumArray) (string, error) {
	n8, err := ConvertNa(BytePower, na)
	if err != nil {
		return "", err
	}

	b := make([]byte, len(n8.Nums))
	for i, n := range n8.Nums {
		b[i] = byte(n)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: % x", ErrInvalidEncoding, b)
	}
	return string(b), nil
}

// BytesToNa wraps raw bytes as a power-8 NumArray.
func BytesToNa(b []byte) NumArray {
	nums := make([]uint64, len(b))
	for i, c := range b {
		nums[i] = uint64(c)
	}
	return NumArray{Power: BytePower, Nums: nums}
}

// NaToBytes converts na to bytes, keeping only whole bytes.
// The trailing len(na.Nums)*na.Power%8 bits are dropped, which recovers the
// source bytes exactly whenever na was produced from bytes at a power <= 8.
func NaToBytes(na NumArray) ([]byte, error) {
	n8, err := ConvertNa(BytePower, na)
	if err != nil {
		return nil, err
	}

	whole := na.BitLen() / BytePower
	b := make([]byte, whole)
	for i := range b {
		b[i] = byte(n8.Nums[i])
	}
	return b, nil
}
