package merkletree

import (
	"encoding/json"
	"fmt"

	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// wireMetadataV1 is the plain metadata trailer of the first exchange
// format. Nothing in it is protected by the root.
type wireMetadataV1 struct {
	HashAlgorithm string `json:"hashAlgorithm"`
	Version       string `json:"version"`
}

func encodeV1(t *MerkleTree, alg string) ([]byte, error) {
	return json.Marshal(&struct {
		Leaves   []wireLeaf     `json:"leaves"`
		Root     string         `json:"root"`
		Metadata wireMetadataV1 `json:"metadata"`
	}{
		Leaves:   encodeLeaves(t.Leaves),
		Root:     utils.EncodeHex(t.Root),
		Metadata: wireMetadataV1{HashAlgorithm: alg, Version: V1},
	})
}

func decodeV1(doc *wireDocument) (*MerkleTree, error) {
	var meta wireMetadataV1
	if err := json.Unmarshal(doc.Metadata, &meta); err != nil {
		return nil, fmt.Errorf("%w: bad metadata trailer: %v", ErrMalformedDocument, err)
	}
	leaves, root, err := decodeLeaves(doc)
	if err != nil {
		return nil, err
	}
	return &MerkleTree{
		Leaves: leaves,
		Root:   root,
		Metadata: TreeMetadata{
			HashAlgorithm: meta.HashAlgorithm,
			Version:       V1,
		},
	}, nil
}
