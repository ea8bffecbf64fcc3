// Package wordfmt converts text to phrases of vocabulary words and back.
//
// Text is encoded as UTF-8 bytes, the bytes are regrouped into digits as wide
// as the vocabulary allows (floor(log2(len(words))) bits), and each digit is
// replaced by the word at that index. Decoding runs the same steps in reverse.
//
// Example usage:
//
//	words := make([]string, 256)
//	for i := range words {
//		words[i] = fmt.Sprintf("word%d", i)
//	}
//	vocab, err := wordfmt.NewVocabulary(words)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	codec := wordfmt.NewPhraseCodec(vocab)
//	phrase, err := codec.Encode("Hello")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// phrase is [word72 word101 word108 word108 word111]
//
//	text, err := codec.Decode(phrase)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// text is "Hello"
//
// Round trips are exact when the encoded bit count divides evenly by the
// vocabulary power. Otherwise the last word carries zero padding that decodes
// to trailing NUL bytes; use WithExactBytes to drop it for powers up to 8.
package wordfmt

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// PhraseCodec implements Codec over a single Vocabulary.
type PhraseCodec struct {
	vocab *Vocabulary
	opts  options
}

// NewPhraseCodec creates a PhraseCodec for vocab.
func NewPhraseCodec(vocab *Vocabulary, opts ...Option) *PhraseCodec {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &PhraseCodec{vocab: vocab, opts: o}
}

// Vocabulary returns the vocabulary the codec encodes with.
func (c *PhraseCodec) Vocabulary() *Vocabulary {
	return c.vocab
}

// Encode converts text to vocabulary words.
func (c *PhraseCodec) Encode(text string) ([]string, error) {
	words, err := StringToWords(c.vocab, text)
	if err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}

	c.opts.logger.Debug("encoded phrase",
		slog.Int("bytes", len(text)),
		slog.Int("power", c.vocab.Power()),
		slog.Int("words", len(words)),
	)
	return words, nil
}

// Decode converts words back to text.
func (c *PhraseCodec) Decode(words []string) (string, error) {
	var (
		text string
		err  error
	)
	if c.opts.exactBytes {
		text, err = c.decodeExact(words)
	} else {
		text, err = WordsToString(c.vocab, words)
	}
	if err != nil {
		return "", fmt.Errorf("failed to decode: %w", err)
	}

	c.opts.logger.Debug("decoded phrase",
		slog.Int("words", len(words)),
		slog.Int("power", c.vocab.Power()),
		slog.Int("bytes", len(text)),
	)
	return text, nil
}

func (c *PhraseCodec) decodeExact(words []string) (string, error) {
	b, err := WordsToBytes(c.vocab, words)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: % x", ErrInvalidEncoding, b)
	}
	return string(b), nil
}

var _ Codec = (*PhraseCodec)(nil)
