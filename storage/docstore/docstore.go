// Package docstore persists serialized exchange documents in a
// key-value store, keyed by their Merkle root. Documents are verified
// on the way in, so everything the store hands back is known to have
// matched its root at write time.
package docstore

import (
	"encoding/json"
	"fmt"

	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
	"github.com/lukepuplett/evoq-blockchain-sub000/storage/kv"
)

const (
	documentKeyPrefix    = 'd'
	attestationKeyPrefix = 'a'
)

// A Store keeps serialized exchange documents and their attestation
// records in an underlying kv.DB.
type Store struct {
	db kv.DB
}

// New returns a Store backed by the given database.
func New(db kv.DB) *Store {
	return &Store{db: db}
}

// Put parses and verifies the given serialized document and stores it
// under its root. It returns the root the document was stored under.
// A document that fails structural validation or root verification is
// never stored.
func (s *Store) Put(doc []byte) ([]byte, error) {
	t, err := merkletree.Unmarshal(doc)
	if err != nil {
		return nil, err
	}
	ok, err := t.VerifyRoot()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, merkletree.ErrRootMismatch
	}
	if err := s.db.Put(documentKey(t.Root), doc); err != nil {
		return nil, err
	}
	return t.Root, nil
}

// Get returns the serialized document stored under the given root.
func (s *Store) Get(root []byte) ([]byte, error) {
	return s.db.Get(documentKey(root))
}

// Delete removes the document stored under the given root, along with
// its attestation record if any.
func (s *Store) Delete(root []byte) error {
	batch := s.db.NewBatch()
	batch.Delete(documentKey(root))
	batch.Delete(attestationKey(root))
	return s.db.Write(batch)
}

// An Attestation records where a root digest was published for
// external verification: the chain address it was attested from and a
// free-form reference such as a transaction identifier.
type Attestation struct {
	Address   ChainAddress `json:"address"`
	Reference string       `json:"reference,omitempty"`
}

// SetAttestation records an attestation for the given root. The
// document itself must already be stored.
func (s *Store) SetAttestation(root []byte, att *Attestation) error {
	if _, err := s.db.Get(documentKey(root)); err != nil {
		return fmt.Errorf("cannot attest an unstored document: %v", err)
	}
	buf, err := json.Marshal(att)
	if err != nil {
		return err
	}
	return s.db.Put(attestationKey(root), buf)
}

// GetAttestation returns the attestation recorded for the given root.
func (s *Store) GetAttestation(root []byte) (*Attestation, error) {
	buf, err := s.db.Get(attestationKey(root))
	if err != nil {
		return nil, err
	}
	att := new(Attestation)
	if err := json.Unmarshal(buf, att); err != nil {
		return nil, err
	}
	return att, nil
}

func documentKey(root []byte) []byte {
	return append([]byte{documentKeyPrefix}, root...)
}

func attestationKey(root []byte) []byte {
	return append([]byte{attestationKeyPrefix}, root...)
}
