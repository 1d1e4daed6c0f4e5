package merkletree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto"
	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
)

// Exchange format versions.
const (
	V1 = "1.0"
	V2 = "2.0"
	V3 = "3.0"
)

// TreeMetadata names the hash algorithm and exchange format of a tree.
// For V3 trees the algorithm and document type are additionally bound
// into the root via the header leaf.
type TreeMetadata struct {
	HashAlgorithm        string
	Version              string
	ExchangeDocumentType string
}

// A MerkleTree is an ordered collection of leaves with a computed
// root. Leaf order is significant and part of the root computation.
//
// A tree is a plain mutable value during the build phase: append
// leaves with the Add methods, then publish with RecomputeRoot.
// Appending a leaf invalidates any previously computed root. Once
// rooted, the read operations (VerifyRoot, Marshal, GetObject) are
// pure functions of the leaf sequence; concurrent readers are fine as
// long as no writer mutates the leaves at the same time. The tree
// provides no locking of its own.
type MerkleTree struct {
	Leaves   []Leaf
	Root     []byte
	Metadata TreeMetadata
}

// NewMerkleTree returns an empty tree for the given format version.
func NewMerkleTree(version string) *MerkleTree {
	return &MerkleTree{Metadata: TreeMetadata{Version: version}}
}

// NewExchangeTree returns an empty V3 tree carrying the given exchange
// document type, which RecomputeRoot encodes into the header leaf.
func NewExchangeTree(exchangeDocumentType string) *MerkleTree {
	return &MerkleTree{Metadata: TreeMetadata{
		Version:              V3,
		ExchangeDocumentType: exchangeDocumentType,
	}}
}

// AddLeaf appends a leaf to the tree and invalidates any previously
// computed root.
func (t *MerkleTree) AddLeaf(leaf Leaf) {
	t.Leaves = append(t.Leaves, leaf)
	t.Root = nil
}

// AddPrivateLeaf appends a hash-only leaf.
func (t *MerkleTree) AddPrivateLeaf(hash []byte) {
	t.AddLeaf(NewPrivateLeaf(hash))
}

// AddJSONLeaf appends one leaf whose payload is the single-key JSON
// object {name: value}. If salt is nil a fresh random salt is
// generated.
func (t *MerkleTree) AddJSONLeaf(name string, value interface{}, salt []byte, hasher hashers.ExchangeHasher) error {
	if salt == nil {
		var err error
		if salt, err = crypto.MakeRand(); err != nil {
			return err
		}
	}
	leaf, err := NewJSONLeaf(name, value, salt, hasher)
	if err != nil {
		return err
	}
	t.AddLeaf(leaf)
	return nil
}

// AddJSONLeaves appends one leaf per entry of values, each with an
// independent random salt. Entries are added in sorted key order so
// that the resulting leaf sequence, and therefore the root, is
// deterministic for a given map.
func (t *MerkleTree) AddJSONLeaves(values map[string]interface{}, hasher hashers.ExchangeHasher) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := t.AddJSONLeaf(k, values[k], nil, hasher); err != nil {
			return err
		}
	}
	return nil
}

// AddObjectLeaves appends one leaf per top-level property of an
// arbitrary structured value. Nested objects and arrays are serialized
// whole into their property's single leaf, not exploded recursively.
// Properties are added in sorted name order.
func (t *MerkleTree) AddObjectLeaves(v interface{}, hasher hashers.ExchangeHasher) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("value does not serialize to a JSON object: %v", err)
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := t.AddJSONLeaf(k, obj[k], nil, hasher); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeRoot computes the tree root with the given hasher and
// records the hasher's algorithm identifier in the metadata. For a V3
// tree the header leaf is synthesized or refreshed first, so that the
// algorithm, leaf count, and document type are hashed into the root.
// Recomputing replaces any prior root.
func (t *MerkleTree) RecomputeRoot(hasher hashers.ExchangeHasher) ([]byte, error) {
	if len(t.Leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if t.Metadata.Version == V3 {
		if err := t.refreshHeaderLeaf(hasher); err != nil {
			return nil, err
		}
	}
	t.Metadata.HashAlgorithm = hasher.ID()
	t.Root = computeRoot(t.Leaves, hasher)
	return t.Root, nil
}

// VerifyRoot recomputes the root from the leaves using the algorithm
// named in the metadata and compares it to the declared root. An
// unknown algorithm name fails loudly rather than returning false:
// silently failing would hide a downgrade attack. Callers holding a
// document with an unsupported algorithm should use VerifyRootWith and
// supply the hasher themselves.
func (t *MerkleTree) VerifyRoot() (bool, error) {
	hasher, err := hashers.NewExchangeHasher(t.Metadata.HashAlgorithm)
	if err != nil {
		return false, fmt.Errorf("cannot verify root: %v; use VerifyRootWith with an explicit hasher", err)
	}
	return t.VerifyRootWith(hasher), nil
}

// VerifyRootWith recomputes the root with the given hasher and
// compares it to the declared root. An empty tree verifies only
// against an empty declared root.
func (t *MerkleTree) VerifyRootWith(hasher hashers.ExchangeHasher) bool {
	return bytes.Equal(computeRoot(t.Leaves, hasher), t.Root)
}

// headerLeafPayload is the decoded form of the V3 header leaf.
type headerLeafPayload struct {
	Alg      string `json:"alg"`
	Typ      string `json:"typ"`
	Leaves   int    `json:"leaves"`
	Exchange string `json:"exchange"`
}

// refreshHeaderLeaf synthesizes the header leaf at position 0 if none
// exists yet, or re-encodes and rehashes the existing one so that its
// declared leaf count stays exact after later appends. The encoded
// count always includes the header leaf itself.
func (t *MerkleTree) refreshHeaderLeaf(hasher hashers.ExchangeHasher) error {
	hasHeader := len(t.Leaves) > 0 && t.Leaves[0].IsHeader()

	count := len(t.Leaves)
	if !hasHeader {
		count++
	}
	data, err := json.Marshal(&headerLeafPayload{
		Alg:      hasher.ID(),
		Typ:      HeaderMediaType,
		Leaves:   count,
		Exchange: t.Metadata.ExchangeDocumentType,
	})
	if err != nil {
		return err
	}

	if hasHeader {
		// Keep the existing salt; only the payload and hash change.
		header := &t.Leaves[0]
		header.Data = data
		header.Hash = hasher.HashLeaf(header.Data, header.Salt)
		return nil
	}
	salt, err := crypto.MakeRand()
	if err != nil {
		return err
	}
	header := NewLeaf(ContentTypeHeaderV3, data, salt, hasher)
	t.Leaves = append([]Leaf{header}, t.Leaves...)
	return nil
}

// computeRoot pairs up the effective leaf hashes left to right,
// duplicating the last hash at any level with an odd count, and hashes
// each pair until one value remains. Private leaves contribute their
// stored hash as-is; public leaves are always rehashed from data and
// salt so that tampered data is caught. Zero leaves produce an empty
// root; a single leaf's root is its own effective hash.
func computeRoot(leaves []Leaf, hasher hashers.ExchangeHasher) []byte {
	if len(leaves) == 0 {
		return nil
	}
	level := make([][]byte, len(leaves))
	for i := range leaves {
		if leaves[i].IsPrivate() {
			level[i] = leaves[i].Hash
		} else {
			level[i] = hasher.HashLeaf(leaves[i].Data, leaves[i].Salt)
		}
	}
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([][]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, hasher.HashInterior(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}

// Clone returns a deep copy of the tree. Any later change to the
// original tree does not affect the clone, and vice versa.
func (t *MerkleTree) Clone() *MerkleTree {
	leaves := make([]Leaf, len(t.Leaves))
	for i := range t.Leaves {
		leaves[i] = t.Leaves[i].clone()
	}
	return &MerkleTree{
		Leaves:   leaves,
		Root:     append([]byte{}, t.Root...),
		Metadata: t.Metadata,
	}
}
