package wordfmt

import (
	"errors"

	"github.com/vdparikh/wordfmt/subtle"
)

// Bit-level failures from the subtle package, re-exported so callers can
// match them with errors.Is without importing subtle.
var (
	ErrPaddingOverflow   = subtle.ErrPaddingOverflow
	ErrUngroupableLength = subtle.ErrUngroupableLength
	ErrInvalidModulus    = subtle.ErrInvalidModulus
)

var (
	// ErrInvalidPower is returned when a digit width is outside [1, 64].
	ErrInvalidPower = errors.New("power must be between 1 and 64")

	// ErrInvalidEncoding is returned when decoded bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")

	// ErrUnknownWord is returned when a word is not in the vocabulary.
	ErrUnknownWord = errors.New("unknown word")

	// ErrUnknownIndex is returned when no word is assigned to an index.
	ErrUnknownIndex = errors.New("unknown index")

	// ErrEmptyVocabulary is returned when a vocabulary is built from no words.
	ErrEmptyVocabulary = errors.New("vocabulary needs at least one word")
)
