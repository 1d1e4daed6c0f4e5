package hashers

import (
	"fmt"
)

// ExchangeHasher provides the digest used by the exchange tree
// implementations, and defines the way leaf and interior hashes
// of the underlying tree are constructed.
type ExchangeHasher interface {
	// ID returns the canonical name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest provides a universal hash function which
	// hashes all passed byte slices. The passed slices won't be mutated.
	Digest(ms ...[]byte) []byte

	// HashLeaf computes the hash of a data leaf.
	HashLeaf(data, salt []byte) []byte

	// HashInterior computes the hash of an interior node.
	HashInterior(left, right []byte) []byte
}

var hashers = make(map[string]ExchangeHasher)

// RegisterHasher registers a hasher for use under the given identifier.
// Legacy spellings of an algorithm name may be registered as aliases of
// the same hasher; ID() always reports the canonical spelling.
func RegisterHasher(id string, f func() ExchangeHasher) {
	if _, ok := hashers[id]; ok {
		panic(fmt.Sprintf("%s is already registered", id))
	}
	hashers[id] = f()
}

// NewExchangeHasher returns a registered ExchangeHasher identified by the
// given string. If no such ExchangeHasher exists, it returns an error.
func NewExchangeHasher(id string) (ExchangeHasher, error) {
	if h, ok := hashers[id]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("%s is an unknown hasher", id)
}
