// Package sign provides the signing keys used to seal serialized
// exchange documents, so that a published root can be accompanied by a
// producer signature.
package sign

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/ed25519"
)

const (
	// PrivateKeySize is the size in bytes of a sealing private key.
	PrivateKeySize = 64
	// PublicKeySize is the size in bytes of a sealing public key.
	PublicKeySize = 32
	// SignatureSize is the size in bytes of a seal.
	SignatureSize = 64
)

// PrivateKey seals documents.
type PrivateKey ed25519.PrivateKey

// PublicKey verifies seals.
type PublicKey ed25519.PublicKey

// GenerateKey returns a fresh sealing key.
func GenerateKey() (PrivateKey, error) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	return PrivateKey(sk), err
}

// NewPrivateKey validates raw key bytes read from storage.
func NewPrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("sealing key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	return PrivateKey(b), nil
}

// NewPublicKey validates raw key bytes read from storage.
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("verification key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	return PublicKey(b), nil
}

// Sign seals the given document bytes.
func (key PrivateKey) Sign(document []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(key), document)
}

// Public returns the verification key for this sealing key.
func (key PrivateKey) Public() (PublicKey, bool) {
	pk, ok := ed25519.PrivateKey(key).Public().(ed25519.PublicKey)
	return PublicKey(pk), ok
}

// Verify checks a seal over the given document bytes.
func (pk PublicKey) Verify(document, seal []byte) bool {
	if len(seal) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pk), document, seal)
}
