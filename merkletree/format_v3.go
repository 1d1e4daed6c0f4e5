package merkletree

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// wireHeaderV3 is the trailer of the third exchange format. It names
// only the document type: the algorithm, leaf count, and exchange
// document type live in the header leaf, where the root protects them.
type wireHeaderV3 struct {
	Typ string `json:"typ"`
}

func encodeV3(t *MerkleTree) ([]byte, error) {
	if len(t.Leaves) < 2 {
		return nil, ErrSingleLeafTree
	}
	if !t.Leaves[0].IsHeader() {
		return nil, ErrMissingHeaderLeaf
	}
	return json.Marshal(&struct {
		Leaves []wireLeaf   `json:"leaves"`
		Root   string       `json:"root"`
		Header wireHeaderV3 `json:"header"`
	}{
		Leaves: encodeLeaves(t.Leaves),
		Root:   utils.EncodeHex(t.Root),
		Header: wireHeaderV3{Typ: DocumentTypeV3},
	})
}

// decodeV3 parses a V3 document, running the structural checks before
// any hashing:
//
//  1. at least two leaves are present;
//  2. leaf 0 carries the reserved header content type and decodes as
//     UTF-8 JSON;
//  3. the decoded header carries alg, typ, leaves, and exchange, with
//     typ equal to the reserved header type string;
//  4. the declared leaf count equals the actual number of leaves.
//
// A document can pass all four and still fail root verification later;
// structural and cryptographic tampering are reported separately.
func decodeV3(doc *wireDocument) (*MerkleTree, error) {
	leaves, root, err := decodeLeaves(doc)
	if err != nil {
		return nil, err
	}
	if len(leaves) < 2 {
		return nil, ErrSingleLeafTree
	}

	header := &leaves[0]
	if header.IsPrivate() || !header.IsHeader() {
		return nil, ErrMissingHeaderLeaf
	}
	if !utf8.Valid(header.Data) {
		return nil, ErrMissingHeaderLeaf
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(header.Data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingHeaderLeaf, err)
	}
	for _, name := range []string{"alg", "typ", "leaves", "exchange"} {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeaderField, name)
		}
	}
	var payload headerLeafPayload
	if err := json.Unmarshal(header.Data, &payload); err != nil {
		return nil, fmt.Errorf("%w: bad header leaf payload: %v", ErrMalformedDocument, err)
	}
	if payload.Typ != HeaderMediaType {
		return nil, fmt.Errorf("%w: %q", ErrHeaderType, payload.Typ)
	}
	if payload.Leaves != len(leaves) {
		return nil, fmt.Errorf("%w: header declares %d, document has %d",
			ErrLeafCountMismatch, payload.Leaves, len(leaves))
	}

	return &MerkleTree{
		Leaves: leaves,
		Root:   root,
		Metadata: TreeMetadata{
			HashAlgorithm:        payload.Alg,
			Version:              V3,
			ExchangeDocumentType: payload.Exchange,
		},
	}, nil
}
