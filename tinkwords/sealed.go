// Package tinkwords provides Tink integration for word phrase encoding.
// It seals text with a deterministic AEAD before turning the ciphertext into
// vocabulary words, so a phrase can only be read back by holders of the keyset.
package tinkwords

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/tink"

	"github.com/vdparikh/wordfmt"
)

// MaxPower is the widest vocabulary power a sealed phrase supports. Up to 8
// bits per word the ciphertext length is recoverable from the word count.
const MaxPower = wordfmt.BytePower

// ErrUnsupportedPower is returned for vocabularies whose power is outside [1, MaxPower].
var ErrUnsupportedPower = errors.New("vocabulary power unsupported for sealed phrases")

// New creates a sealed phrase codec from a Tink keyset handle.
// The handle must hold a deterministic AEAD key such as one made from KeyTemplate.
// associatedData is authenticated but not encrypted; decoding with different
// associated data fails.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkwords.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	codec, err := tinkwords.New(handle, vocab, []byte("tenant-1234"))
//	if err != nil {
//	    return err
//	}
//	phrase, err := codec.Encode("correct horse")
func New(handle *keyset.Handle, vocab *wordfmt.Vocabulary, associatedData []byte) (wordfmt.Codec, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}
	if vocab == nil {
		return nil, fmt.Errorf("vocabulary cannot be nil")
	}
	if p := vocab.Power(); p < 1 || p > MaxPower {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPower, p)
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get deterministic AEAD primitive: %w", err)
	}

	return &sealedCodec{
		daead:          primitive,
		vocab:          vocab,
		associatedData: associatedData,
	}, nil
}

// sealedCodec implements the wordfmt.Codec interface over a deterministic AEAD.
type sealedCodec struct {
	daead          tink.DeterministicAEAD
	vocab          *wordfmt.Vocabulary
	associatedData []byte
}

// Encode encrypts text and encodes the ciphertext as words.
func (c *sealedCodec) Encode(text string) ([]string, error) {
	ciphertext, err := c.daead.EncryptDeterministically([]byte(text), c.associatedData)
	if err != nil {
		return nil, fmt.Errorf("failed to seal: %w", err)
	}

	words, err := wordfmt.BytesToWords(c.vocab, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}
	return words, nil
}

// Decode decodes words to ciphertext and decrypts it.
func (c *sealedCodec) Decode(words []string) (string, error) {
	ciphertext, err := wordfmt.WordsToBytes(c.vocab, words)
	if err != nil {
		return "", fmt.Errorf("failed to decode: %w", err)
	}

	plaintext, err := c.daead.DecryptDeterministically(ciphertext, c.associatedData)
	if err != nil {
		return "", fmt.Errorf("failed to open: %w", err)
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: % x", wordfmt.ErrInvalidEncoding, plaintext)
	}
	return string(plaintext), nil
}

// Verify that sealedCodec implements wordfmt.Codec
var _ wordfmt.Codec = (*sealedCodec)(nil)
