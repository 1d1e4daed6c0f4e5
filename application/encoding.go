// Defines methods/functions to move exchange documents and sealed
// documents to and from files. All documents are JSON on disk.

package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/sign"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// ErrBadSeal indicates a sealed document whose signature does not
// verify over the document bytes.
var ErrBadSeal = errors.New("[application] Seal does not verify")

// MarshalTreeToFile serializes the given tree to the given path.
func MarshalTreeToFile(m *merkletree.MerkleTree, path string) error {
	doc, err := merkletree.Marshal(m)
	if err != nil {
		return err
	}
	return utils.WriteFile(path, doc, 0600)
}

// UnmarshalTreeFromFile parses the exchange document at the given
// path.
func UnmarshalTreeFromFile(path string) (*merkletree.MerkleTree, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read document: %v", err)
	}
	return merkletree.Unmarshal(doc)
}

// A SealedDocument wraps a serialized exchange document with a
// producer signature over the exact document bytes, and the
// verification key the seal was made under. The document inside is
// carried verbatim so the sealed bytes survive JSON re-encoding.
type SealedDocument struct {
	Document  json.RawMessage `json:"document"`
	Seal      string          `json:"seal"`
	PublicKey string          `json:"publicKey"`
}

// SealDocument signs the given serialized document with the given
// sealing key.
func SealDocument(key sign.PrivateKey, doc []byte) (*SealedDocument, error) {
	pk, ok := key.Public()
	if !ok {
		return nil, fmt.Errorf("Cannot derive verification key from sealing key")
	}
	return &SealedDocument{
		Document:  json.RawMessage(doc),
		Seal:      utils.EncodeHex(key.Sign(doc)),
		PublicKey: utils.EncodeHex(pk),
	}, nil
}

// VerifySealedDocument checks the seal over the document bytes and
// returns the parsed tree. The tree's root is not verified here;
// callers decide whether to trust the sealer or re-verify.
func VerifySealedDocument(sd *SealedDocument) (*merkletree.MerkleTree, error) {
	seal, err := utils.DecodeHex(sd.Seal)
	if err != nil {
		return nil, err
	}
	pkBytes, err := utils.DecodeHex(sd.PublicKey)
	if err != nil {
		return nil, err
	}
	pk, err := sign.NewPublicKey(pkBytes)
	if err != nil {
		return nil, err
	}
	if !pk.Verify(sd.Document, seal) {
		return nil, ErrBadSeal
	}
	return merkletree.Unmarshal(sd.Document)
}

// MarshalSealedToFile serializes the given sealed document to the
// given path.
func MarshalSealedToFile(sd *SealedDocument, path string) error {
	buf, err := json.Marshal(sd)
	if err != nil {
		return err
	}
	return utils.WriteFile(path, buf, 0600)
}

// UnmarshalSealedFromFile parses the sealed document at the given
// path.
func UnmarshalSealedFromFile(path string) (*SealedDocument, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read sealed document: %v", err)
	}
	sd := new(SealedDocument)
	if err := json.Unmarshal(buf, sd); err != nil {
		return nil, err
	}
	return sd, nil
}
