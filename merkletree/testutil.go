package merkletree

import (
	"testing"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
	_ "github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers/sha256"
)

// staticHasher returns the registered SHA256 hasher for tests.
func staticHasher(t *testing.T) hashers.ExchangeHasher {
	t.Helper()
	h, err := hashers.NewExchangeHasher("SHA256")
	if err != nil {
		t.Fatal(err)
	}
	return h
}

// staticSalt returns a fixed-content salt so that test trees are
// reproducible.
func staticSalt(b byte) []byte {
	salt := make([]byte, 32)
	for i := range salt {
		salt[i] = b
	}
	return salt
}

// twoFieldTree builds the canonical 2-field V1 test tree with the
// fields {name: "John Doe"} and {age: 30}.
func twoFieldTree(t *testing.T) *MerkleTree {
	t.Helper()
	hasher := staticHasher(t)
	m := NewMerkleTree(V1)
	if err := m.AddJSONLeaf("name", "John Doe", staticSalt(1), hasher); err != nil {
		t.Fatal(err)
	}
	if err := m.AddJSONLeaf("age", 30, staticSalt(2), hasher); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RecomputeRoot(hasher); err != nil {
		t.Fatal(err)
	}
	return m
}

// exchangeTree builds a rooted V3 tree with the given fields.
func exchangeTree(t *testing.T, fields map[string]interface{}) *MerkleTree {
	t.Helper()
	hasher := staticHasher(t)
	m := NewExchangeTree("test-document")
	if err := m.AddJSONLeaves(fields, hasher); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RecomputeRoot(hasher); err != nil {
		t.Fatal(err)
	}
	return m
}
