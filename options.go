package wordfmt

import (
	"io"
	"log/slog"
)

type options struct {
	logger     *slog.Logger
	exactBytes bool
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a PhraseCodec.
type Option func(*options)

// WithLogger sets the logger used for debug records about each conversion.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithExactBytes makes Decode keep only whole bytes, dropping the zero padding
// the last word may carry. Decoding is then exact for vocabularies with a
// power of at most 8; wider powers still need the caller to track length.
func WithExactBytes() Option {
	return func(o *options) {
		o.exactBytes = true
	}
}
