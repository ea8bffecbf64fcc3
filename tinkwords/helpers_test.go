package tinkwords

import (
	"fmt"
	"testing"

	"github.com/google/tink/go/keyset"
	"github.com/stretchr/testify/require"

	"github.com/vdparikh/wordfmt"
)

// testKey is a fixed 64-byte AES-SIV key.
var testKey = []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

func newTestVocabulary(t testing.TB, n int) *wordfmt.Vocabulary {
	t.Helper()
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	v, err := wordfmt.NewVocabulary(words)
	require.NoError(t, err)
	return v
}

func newTestHandle(t testing.TB) *keyset.Handle {
	t.Helper()
	handle, err := keyset.NewHandle(KeyTemplate())
	require.NoError(t, err)
	return handle
}

func newTestCodec(t testing.TB, handle *keyset.Handle, words int, associatedData string) wordfmt.Codec {
	t.Helper()
	codec, err := New(handle, newTestVocabulary(t, words), []byte(associatedData))
	require.NoError(t, err)
	return codec
}
