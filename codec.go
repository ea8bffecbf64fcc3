package wordfmt

// Codec converts text to a phrase of vocabulary words and back.
// Implementations are deterministic: the same text always yields the same phrase.
type Codec interface {
	// Encode converts text to words.
	Encode(text string) ([]string, error)

	// Decode converts words produced by Encode back to text.
	Decode(words []string) (string, error)
}
