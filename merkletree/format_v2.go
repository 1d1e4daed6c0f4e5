package merkletree

import (
	"encoding/json"
	"fmt"

	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// wireHeaderV2 is the renamed trailer of the second exchange format:
// the same facts as V1's metadata under JOSE-style field names. Still
// unprotected by the root.
type wireHeaderV2 struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

func encodeV2(t *MerkleTree, alg string) ([]byte, error) {
	return json.Marshal(&struct {
		Leaves []wireLeaf   `json:"leaves"`
		Root   string       `json:"root"`
		Header wireHeaderV2 `json:"header"`
	}{
		Leaves: encodeLeaves(t.Leaves),
		Root:   utils.EncodeHex(t.Root),
		Header: wireHeaderV2{Alg: alg, Typ: DocumentTypeV2},
	})
}

func decodeV2(doc *wireDocument) (*MerkleTree, error) {
	var header wireHeaderV2
	if err := json.Unmarshal(doc.Header, &header); err != nil {
		return nil, fmt.Errorf("%w: bad header trailer: %v", ErrMalformedDocument, err)
	}
	leaves, root, err := decodeLeaves(doc)
	if err != nil {
		return nil, err
	}
	return &MerkleTree{
		Leaves: leaves,
		Root:   root,
		Metadata: TreeMetadata{
			HashAlgorithm: header.Alg,
			Version:       V2,
		},
	}, nil
}
