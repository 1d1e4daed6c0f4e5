package crypto

import (
	"crypto/rand"
	"crypto/sha256"
)

const (
	// HashSizeByte is the size in bytes of the digests produced by the
	// default hash function.
	HashSizeByte = 32

	// SaltSizeByte is the size in bytes of the random salts generated
	// for data leaves.
	SaltSizeByte = 32
)

// Digest hashes all passed byte slices with the default hash function
// (SHA-256). The passed slices won't be mutated.
func Digest(ms ...[]byte) []byte {
	h := sha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

// MakeRand returns a fresh random salt for a data leaf.
// The raw bytes from rand.Read are hashed before use so that a weak
// system reader is never revealed directly on the wire.
func MakeRand() ([]byte, error) {
	r := make([]byte, SaltSizeByte)
	if _, err := rand.Read(r); err != nil {
		return nil, err
	}
	return Digest(r), nil
}
