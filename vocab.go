package wordfmt

import (
	"fmt"
	"math/bits"
)

// Vocabulary is an ordered, immutable set of words used as a digit alphabet.
//
// Every word is addressable by lookup, but conversions only ever produce
// indices below 2^Power. A Vocabulary is safe for concurrent use.
//
// Duplicate words are not rejected; the last occurrence wins in LookupWord.
type Vocabulary struct {
	power int
	words []string
	index map[string]uint64
}

// NewVocabulary builds a Vocabulary, assigning indices in input order.
func NewVocabulary(words []string) (*Vocabulary, error) {
	if len(words) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v := &Vocabulary{
		power: floorLog2(len(words)),
		words: make([]string, len(words)),
		index: make(map[string]uint64, len(words)),
	}
	copy(v.words, words)
	for i, w := range v.words {
		v.index[w] = uint64(i)
	}
	return v, nil
}

// Power returns the digit width the vocabulary encodes, floor(log2(Len())).
func (v *Vocabulary) Power() int { return v.power }

// Len returns the number of words, including those beyond 2^Power.
func (v *Vocabulary) Len() int { return len(v.words) }

// Words returns a copy of the word list in index order.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// LookupWord returns the index assigned to w.
func (v *Vocabulary) LookupWord(w string) (uint64, error) {
	n, ok := v.index[w]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, w)
	}
	return n, nil
}

// LookupNumber returns the word assigned to index n.
func (v *Vocabulary) LookupNumber(n uint64) (string, error) {
	if n >= uint64(len(v.words)) {
		return "", fmt.Errorf("%w: %d (vocabulary has %d words)", ErrUnknownIndex, n, len(v.words))
	}
	return v.words[n], nil
}

func floorLog2(n int) int {
	return bits.Len(uint(n)) - 1
}
