package merkletree

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestRecomputeRootDeterministic(t *testing.T) {
	hasher := staticHasher(t)
	m := twoFieldTree(t)
	root1 := append([]byte{}, m.Root...)
	root2, err := m.RecomputeRoot(hasher)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(root1, root2) {
		t.Error("Recompute over a fixed leaf sequence must be deterministic",
			"first", root1,
			"second", root2)
	}
}

func TestRecomputeRootEmptyTree(t *testing.T) {
	hasher := staticHasher(t)
	m := NewMerkleTree(V1)
	if _, err := m.RecomputeRoot(hasher); err != ErrEmptyTree {
		t.Error("Expected ErrEmptyTree, got", err)
	}
}

func TestSingleLeafRoot(t *testing.T) {
	hasher := staticHasher(t)
	m := NewMerkleTree(V1)
	if err := m.AddJSONLeaf("name", "John Doe", staticSalt(1), hasher); err != nil {
		t.Fatal(err)
	}
	root, err := m.RecomputeRoot(hasher)
	if err != nil {
		t.Fatal(err)
	}
	// No pairing: the root is the leaf's effective hash.
	expect := hasher.HashLeaf(m.Leaves[0].Data, m.Leaves[0].Salt)
	if !bytes.Equal(root, expect) {
		t.Error("Single-leaf root must equal the leaf hash",
			"expected", expect,
			"got", root)
	}
}

func TestOddLeafDuplication(t *testing.T) {
	hasher := staticHasher(t)
	m := NewMerkleTree(V1)
	for i, v := range []string{"a", "b", "c"} {
		if err := m.AddJSONLeaf(v, v, staticSalt(byte(i)), hasher); err != nil {
			t.Fatal(err)
		}
	}
	root, err := m.RecomputeRoot(hasher)
	if err != nil {
		t.Fatal(err)
	}

	h0 := hasher.HashLeaf(m.Leaves[0].Data, m.Leaves[0].Salt)
	h1 := hasher.HashLeaf(m.Leaves[1].Data, m.Leaves[1].Salt)
	h2 := hasher.HashLeaf(m.Leaves[2].Data, m.Leaves[2].Salt)
	expect := hasher.HashInterior(
		hasher.HashInterior(h0, h1),
		hasher.HashInterior(h2, h2))
	if !bytes.Equal(root, expect) {
		t.Error("3-leaf root must duplicate the last hash before pairing",
			"expected", expect,
			"got", root)
	}
}

func TestAddLeafInvalidatesRoot(t *testing.T) {
	hasher := staticHasher(t)
	m := twoFieldTree(t)
	if err := m.AddJSONLeaf("email", "john@example.com", nil, hasher); err != nil {
		t.Fatal(err)
	}
	if m.Root != nil {
		t.Error("Appending a leaf must invalidate the computed root")
	}
	if _, err := Marshal(m); err != ErrNoRoot {
		t.Error("Serializing an unrooted tree should fail, got", err)
	}
}

func TestVerifyRootUnknownAlgorithm(t *testing.T) {
	m := twoFieldTree(t)
	m.Metadata.HashAlgorithm = "SHA3-999"
	if _, err := m.VerifyRoot(); err == nil {
		t.Error("Unknown algorithm must fail loudly, not return false")
	}
}

func TestVerifyRootLegacyAlgorithmSpelling(t *testing.T) {
	m := twoFieldTree(t)
	m.Metadata.HashAlgorithm = "sha256"
	ok, err := m.VerifyRoot()
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Legacy lowercase spelling should resolve to the same hasher")
	}
}

func TestPrivateLeafUsesStoredHash(t *testing.T) {
	hasher := staticHasher(t)
	m := twoFieldTree(t)
	root := append([]byte{}, m.Root...)

	// Replace a leaf with its private form; the root must not move.
	m.Leaves[1] = NewPrivateLeaf(m.Leaves[1].Hash)
	if !m.VerifyRootWith(hasher) {
		t.Error("Private leaves must contribute their stored hash as-is")
	}
	if !bytes.Equal(m.Root, root) {
		t.Error("Root changed")
	}
}

func TestTamperedDataCaught(t *testing.T) {
	hasher := staticHasher(t)
	m := twoFieldTree(t)
	m.Leaves[0].Data = []byte(`{"name":"Jane Doe"}`)
	// The stored leaf hash is never trusted, so leaving it stale must
	// not mask the change.
	if m.VerifyRootWith(hasher) {
		t.Error("Tampered leaf data must fail root verification")
	}
}

func TestV3HeaderLeafSynthesis(t *testing.T) {
	hasher := staticHasher(t)
	m := NewExchangeTree("driving-licence")
	if err := m.AddJSONLeaf("name", "John Doe", nil, hasher); err != nil {
		t.Fatal(err)
	}
	if err := m.AddJSONLeaf("age", 30, nil, hasher); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RecomputeRoot(hasher); err != nil {
		t.Fatal(err)
	}

	if len(m.Leaves) != 3 {
		t.Fatal("Expected header leaf plus two data leaves, got", len(m.Leaves))
	}
	if !m.Leaves[0].IsHeader() {
		t.Fatal("Header leaf must sit at position 0")
	}
	var payload headerLeafPayload
	if err := json.Unmarshal(m.Leaves[0].Data, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Alg != "SHA256" {
		t.Error("Header leaf must bind the algorithm, got", payload.Alg)
	}
	if payload.Typ != HeaderMediaType {
		t.Error("Header leaf must carry the reserved type, got", payload.Typ)
	}
	if payload.Leaves != 3 {
		t.Error("Header leaf must count itself, got", payload.Leaves)
	}
	if payload.Exchange != "driving-licence" {
		t.Error("Header leaf must bind the document type, got", payload.Exchange)
	}
}

func TestV3HeaderLeafRefresh(t *testing.T) {
	hasher := staticHasher(t)
	m := NewExchangeTree("test-document")
	if err := m.AddJSONLeaf("name", "John Doe", nil, hasher); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RecomputeRoot(hasher); err != nil {
		t.Fatal(err)
	}
	oldHash := append([]byte{}, m.Leaves[0].Hash...)

	// Appending after a publish and recomputing must refresh the
	// header's declared count and hash, not insert a second header.
	if err := m.AddJSONLeaf("age", 30, nil, hasher); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RecomputeRoot(hasher); err != nil {
		t.Fatal(err)
	}
	if len(m.Leaves) != 3 {
		t.Fatal("Expected exactly one header leaf, got", len(m.Leaves), "leaves")
	}
	var payload headerLeafPayload
	if err := json.Unmarshal(m.Leaves[0].Data, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Leaves != 3 {
		t.Error("Header leaf count must be refreshed, got", payload.Leaves)
	}
	if bytes.Equal(m.Leaves[0].Hash, oldHash) {
		t.Error("Header leaf hash must be recomputed after refresh")
	}
	if ok, err := m.VerifyRoot(); err != nil || !ok {
		t.Error("Refreshed tree must verify:", ok, err)
	}
}

func TestAddObjectLeaves(t *testing.T) {
	type person struct {
		Name    string   `json:"name"`
		Age     int      `json:"age"`
		Friends []string `json:"friends"`
	}
	hasher := staticHasher(t)
	m := NewMerkleTree(V1)
	err := m.AddObjectLeaves(&person{Name: "John Doe", Age: 30, Friends: []string{"a", "b"}}, hasher)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Leaves) != 3 {
		t.Fatal("Expected one leaf per top-level property, got", len(m.Leaves))
	}
	// Nested values are serialized whole into their property's leaf.
	keys := make(map[string]bool)
	for i := range m.Leaves {
		obj, ok := m.Leaves[i].TryReadJSON()
		if !ok || len(obj) != 1 {
			t.Fatal("Each property leaf must hold a single-key JSON object")
		}
		for k, v := range obj {
			keys[k] = true
			if k == "friends" && string(v) != `["a","b"]` {
				t.Error("Nested array must stay whole, got", string(v))
			}
		}
	}
	for _, k := range []string{"name", "age", "friends"} {
		if !keys[k] {
			t.Error("Missing property leaf:", k)
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	m := twoFieldTree(t)
	c := m.Clone()
	c.Leaves[0].Data[0] = 'X'
	if m.Leaves[0].Data[0] == 'X' {
		t.Error("Mutating a clone must not affect the original")
	}
	if ok, err := m.VerifyRoot(); err != nil || !ok {
		t.Error("Original tree must still verify:", ok, err)
	}
}
