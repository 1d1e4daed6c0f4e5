package application

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
	_ "github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers/sha256"
	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/sign"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
)

func testTree(t *testing.T) *merkletree.MerkleTree {
	t.Helper()
	hasher, err := hashers.NewExchangeHasher("SHA256")
	if err != nil {
		t.Fatal(err)
	}
	m := merkletree.NewExchangeTree("test-document")
	if err := m.AddJSONLeaves(map[string]interface{}{"name": "John Doe", "age": 30}, hasher); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RecomputeRoot(hasher); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestTreeFileRoundTrip(t *testing.T) {
	m := testTree(t)
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := MarshalTreeToFile(m, path); err != nil {
		t.Fatal(err)
	}
	parsed, err := UnmarshalTreeFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := parsed.VerifyRoot(); err != nil || !ok {
		t.Error("File round trip broke verification:", ok, err)
	}
}

func TestSealRoundTrip(t *testing.T) {
	m := testTree(t)
	doc, err := merkletree.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	sk, err := sign.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	sd, err := SealDocument(sk, doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "sealed.json")
	if err := MarshalSealedToFile(sd, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := UnmarshalSealedFromFile(path)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := VerifySealedDocument(loaded)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := parsed.VerifyRoot(); err != nil || !ok {
		t.Error("Sealed tree must still verify:", ok, err)
	}
}

func TestSealRejectsTampering(t *testing.T) {
	m := testTree(t)
	doc, err := merkletree.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	sk, err := sign.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sd, err := SealDocument(sk, doc)
	if err != nil {
		t.Fatal(err)
	}

	tampered := make([]byte, len(sd.Document))
	copy(tampered, sd.Document)
	tampered[len(tampered)-2] ^= 1
	sd.Document = tampered
	if _, err := VerifySealedDocument(sd); !errors.Is(err, ErrBadSeal) {
		t.Error("Expected ErrBadSeal, got", err)
	}
}
