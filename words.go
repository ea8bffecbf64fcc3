package wordfmt

import "fmt"

// NaToWords converts na to digits of v.Power() bits and maps each to a word.
func NaToWords(v *Vocabulary, na NumArray) ([]string, error) {
	vna, err := ConvertNa(v.Power(), na)
	if err != nil {
		return nil, fmt.Errorf("vocabulary of %d words: %w", v.Len(), err)
	}

	words := make([]string, len(vna.Nums))
	for i, n := range vna.Nums {
		w, err := v.LookupNumber(n)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}

// WordsToNa maps each word to its index, as digits of v.Power() bits.
func WordsToNa(v *Vocabulary, words []string) (NumArray, error) {
	nums := make([]uint64, len(words))
	for i, w := range words {
		n, err := v.LookupWord(w)
		if err != nil {
			return NumArray{}, fmt.Errorf("word %d: %w", i, err)
		}
		nums[i] = n
	}
	return NumArray{Power: v.Power(), Nums: nums}, nil
}

// StringToWords encodes s as UTF-8 and converts the bytes to words.
func StringToWords(v *Vocabulary, s string) ([]string, error) {
	return NaToWords(v, StringToNa(s))
}

// WordsToString converts words back to bytes and decodes them as UTF-8.
//
// The round trip through StringToWords is exact only when the encoded bit
// count is a multiple of both v.Power() and 8. For example "Hi" at power 5
// spans four words (20 bits) and decodes to "Hi\x00".
func WordsToString(v *Vocabulary, words []string) (string, error) {
	na, err := WordsToNa(v, words)
	if err != nil {
		return "", err
	}
	return NaToString(na)
}

// BytesToWords converts raw bytes to words.
func BytesToWords(v *Vocabulary, b []byte) ([]string, error) {
	return NaToWords(v, BytesToNa(b))
}

// WordsToBytes converts words back to whole bytes, dropping the padding remainder.
// It inverts BytesToWords for any vocabulary with Power() <= 8.
func WordsToBytes(v *Vocabulary, words []string) ([]byte, error) {
	na, err := WordsToNa(v, words)
	if err != nil {
		return nil, err
	}
	return NaToBytes(na)
}
