package sha256

import (
	"crypto"
	_ "crypto/sha256"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
)

func init() {
	hashers.RegisterHasher(SHA256, New)
	hashers.RegisterHasher(SHA256Legacy, New)
}

const (
	// SHA256 is the canonical identifier of the SHA-256 hashing
	// strategy used by the exchange tree formats. It is the spelling
	// written into serialized documents.
	SHA256 = "SHA256"

	// SHA256Legacy is the lowercase identifier written by early
	// producers. Accepted on input only.
	SHA256Legacy = "sha256"
)

type hasher struct {
	crypto.Hash
}

// New returns an instance of the SHA256 exchange hasher.
func New() hashers.ExchangeHasher {
	return &hasher{Hash: crypto.SHA256}
}

func (sh *hasher) Digest(ms ...[]byte) []byte {
	h := sh.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

func (hasher) ID() string {
	return SHA256
}

func (sh *hasher) Size() int {
	return sh.Hash.Size()
}

// HashLeaf computes the hash of a data leaf as: H(data || salt).
func (sh *hasher) HashLeaf(data, salt []byte) []byte {
	return sh.Digest(data, salt)
}

// HashInterior computes the hash of an interior node as: H(left || right).
func (sh *hasher) HashInterior(left, right []byte) []byte {
	return sh.Digest(left, right)
}
