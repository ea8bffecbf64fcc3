package tinkwords

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/tink/go/daead"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	aspb "github.com/google/tink/go/proto/aes_siv_go_proto"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"
)

const (
	// AESSIVKeyTypeURL is the type URL of the AES-SIV keys sealed phrases use.
	AESSIVKeyTypeURL = "type.googleapis.com/google.crypto.tink.AesSivKey"

	// KeySize is the AES-SIV key size in bytes.
	KeySize = 64
)

// KeyTemplate returns the key template for sealed phrase keysets.
// This allows users to generate keys with a single line:
//
//	handle, err := keyset.NewHandle(tinkwords.KeyTemplate())
//
// Ciphertexts carry Tink's 5-byte key prefix, so keys can be rotated.
func KeyTemplate() *tinkpb.KeyTemplate {
	return daead.AESSIVKeyTemplate()
}

// NewKeysetHandleFromKey creates a keyset handle from a raw 64-byte AES-SIV key
// (e.g., from an HSM). The key is marked RAW, so phrases are five words shorter
// than with KeyTemplate but the keyset cannot be rotated.
//
// Note: This creates an unencrypted keyset. In production, consider encrypting
// the keyset before storing it using keyset.Write() with an AEAD.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be %d)", len(key), KeySize)
	}

	serialized, err := proto.Marshal(&aspb.AesSivKey{
		Version:  0,
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         AESSIVKeyTypeURL,
				Value:           serialized,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}

// WriteKeyset stores handle as cleartext JSON.
// WARNING: In production, use encrypted keysets with handle.Write() and an AEAD.
func WriteKeyset(handle *keyset.Handle, w io.Writer) error {
	if err := insecurecleartextkeyset.Write(handle, keyset.NewJSONWriter(w)); err != nil {
		return fmt.Errorf("failed to write keyset: %w", err)
	}
	return nil
}

// ReadKeyset loads a cleartext JSON keyset written by WriteKeyset.
func ReadKeyset(r io.Reader) (*keyset.Handle, error) {
	handle, err := insecurecleartextkeyset.Read(keyset.NewJSONReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read keyset: %w", err)
	}
	return handle, nil
}
