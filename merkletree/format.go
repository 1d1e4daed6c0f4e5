package merkletree

import (
	"encoding/json"
	"fmt"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// wireLeaf is the JSON shape of a leaf in every exchange format.
// Binary values are 0x-prefixed hex strings. A private leaf carries
// the hash only.
type wireLeaf struct {
	Data        string `json:"data,omitempty"`
	Salt        string `json:"salt,omitempty"`
	Hash        string `json:"hash"`
	ContentType string `json:"contentType,omitempty"`
}

// wireDocument is the superset of the three trailer shapes, used for
// format classification before the version-specific decode runs.
type wireDocument struct {
	Leaves   []wireLeaf      `json:"leaves"`
	Root     string          `json:"root"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
	Header   json.RawMessage `json:"header,omitempty"`
}

// Marshal serializes the tree into the wire format named by its
// metadata version. The root is re-verified before any output is
// produced; a tree that no longer matches its root fails with
// ErrRootMismatch rather than emitting an unverifiable document.
func Marshal(t *MerkleTree) ([]byte, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if len(t.Root) == 0 {
		return nil, ErrNoRoot
	}
	hasher, err := hashers.NewExchangeHasher(t.Metadata.HashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize: %v", err)
	}
	if !t.VerifyRootWith(hasher) {
		return nil, ErrRootMismatch
	}
	switch t.Metadata.Version {
	case V1:
		return encodeV1(t, hasher.ID())
	case V2:
		return encodeV2(t, hasher.ID())
	case V3:
		return encodeV3(t)
	}
	return nil, fmt.Errorf("%w: version %q", ErrUnknownFormat, t.Metadata.Version)
}

// MarshalRedacted serializes the tree with the given redaction rule
// applied: leaves for which shouldRedact returns true are emitted
// hash-only. The emitted document verifies against the same root.
func MarshalRedacted(t *MerkleTree, shouldRedact func(*Leaf) bool) ([]byte, error) {
	redacted, err := RedactTree(t, shouldRedact)
	if err != nil {
		return nil, err
	}
	return Marshal(redacted)
}

// Unmarshal parses an exchange document, auto-detecting the format
// from its trailer shape. Structural validation runs before any
// hashing: a malformed document never reaches root verification, and a
// well-formed document with tampered data parses fine but fails
// VerifyRoot afterwards.
func Unmarshal(data []byte) (*MerkleTree, error) {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	switch {
	case doc.Header != nil:
		var header map[string]json.RawMessage
		if err := json.Unmarshal(doc.Header, &header); err != nil {
			return nil, fmt.Errorf("%w: bad header trailer: %v", ErrMalformedDocument, err)
		}
		if _, ok := header["alg"]; ok {
			return decodeV2(&doc)
		}
		if _, ok := header["typ"]; ok {
			return decodeV3(&doc)
		}
		return nil, fmt.Errorf("%w: header trailer has neither alg nor typ", ErrUnknownFormat)
	case doc.Metadata != nil:
		return decodeV1(&doc)
	}
	return nil, fmt.Errorf("%w: no metadata or header trailer", ErrUnknownFormat)
}

func encodeLeaves(leaves []Leaf) []wireLeaf {
	out := make([]wireLeaf, len(leaves))
	for i := range leaves {
		l := &leaves[i]
		out[i] = wireLeaf{Hash: utils.EncodeHex(l.Hash)}
		if !l.IsPrivate() {
			out[i].Data = utils.EncodeHex(l.Data)
			out[i].Salt = utils.EncodeHex(l.Salt)
			out[i].ContentType = l.ContentType
		}
	}
	return out
}

func decodeLeaves(doc *wireDocument) ([]Leaf, []byte, error) {
	leaves := make([]Leaf, len(doc.Leaves))
	for i, wl := range doc.Leaves {
		hash, err := utils.DecodeHex(wl.Hash)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: leaf %d hash: %v", ErrMalformedDocument, i, err)
		}
		leaf := Leaf{ContentType: wl.ContentType, Hash: hash}
		if wl.Data != "" {
			if leaf.Data, err = utils.DecodeHex(wl.Data); err != nil {
				return nil, nil, fmt.Errorf("%w: leaf %d data: %v", ErrMalformedDocument, i, err)
			}
		}
		if wl.Salt != "" {
			if leaf.Salt, err = utils.DecodeHex(wl.Salt); err != nil {
				return nil, nil, fmt.Errorf("%w: leaf %d salt: %v", ErrMalformedDocument, i, err)
			}
		}
		leaves[i] = leaf
	}
	root, err := utils.DecodeHex(doc.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: root: %v", ErrMalformedDocument, err)
	}
	return leaves, root, nil
}
