package hostlist

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/tony-sol/zsh-ssh/pkgs/invariant"
)

// MarshalBinary produces a deterministic CBOR encoding of the list.
func (l *List) MarshalBinary() ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	invariant.ExpectNoError(err, "canonical CBOR options")

	// Avoid recursing into MarshalBinary.
	type listAlias List
	data, err := encMode.Marshal((*listAlias)(l))
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// Digest computes the BLAKE2b-256 hash of the canonical encoding.
// Returns "blake2b:<hex>".
func (l *List) Digest() (string, error) {
	data, err := l.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize host list for digest: %w", err)
	}
	sum := blake2b.Sum256(data)
	return fmt.Sprintf("blake2b:%x", sum), nil
}
