package docstore

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
	_ "github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers/sha256"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
	"github.com/lukepuplett/evoq-blockchain-sub000/storage/kv/leveldbkv"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := leveldbkv.OpenDB(filepath.Join(t.TempDir(), "docs"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func testDocument(t *testing.T) ([]byte, []byte) {
	t.Helper()
	hasher, err := hashers.NewExchangeHasher("SHA256")
	if err != nil {
		t.Fatal(err)
	}
	m := merkletree.NewExchangeTree("test-document")
	if err := m.AddJSONLeaves(map[string]interface{}{"name": "John Doe", "age": 30}, hasher); err != nil {
		t.Fatal(err)
	}
	root, err := m.RecomputeRoot(hasher)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := merkletree.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return doc, root
}

func TestPutGetRoundTrip(t *testing.T) {
	s := testStore(t)
	doc, root := testDocument(t)

	stored, err := s.Put(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(stored, root) {
		t.Error("Put must key the document by its root")
	}

	got, err := s.Get(root)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, doc) {
		t.Error("Stored document bytes changed")
	}
}

func TestPutRejectsTamperedDocument(t *testing.T) {
	s := testStore(t)
	doc, root := testDocument(t)

	tampered := bytes.Replace(doc, []byte(`"root":"0x`), []byte(`"root":"0xff`), 1)
	if _, err := s.Put(tampered); !errors.Is(err, merkletree.ErrRootMismatch) {
		t.Error("Expected ErrRootMismatch, got", err)
	}
	if _, err := s.Get(root); err == nil {
		t.Error("Rejected document must not be stored")
	}
}

func TestAttestationRoundTrip(t *testing.T) {
	s := testStore(t)
	doc, root := testDocument(t)

	addr, err := ParseChainAddress("0x52908400098527886E0F7030069857D2E4169EE7")
	if err != nil {
		t.Fatal(err)
	}
	att := &Attestation{Address: addr, Reference: "0xabc123"}

	if err := s.SetAttestation(root, att); err == nil {
		t.Fatal("Attesting an unstored document must fail")
	}
	if _, err := s.Put(doc); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAttestation(root, att); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetAttestation(root)
	if err != nil {
		t.Fatal(err)
	}
	if got.Address != att.Address || got.Reference != att.Reference {
		t.Error("Attestation round-trip mismatch:", got)
	}
}

func TestDeleteRemovesBoth(t *testing.T) {
	s := testStore(t)
	doc, root := testDocument(t)
	if _, err := s.Put(doc); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAttestation(root, &Attestation{Reference: "ref"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(root); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(root); err == nil {
		t.Error("Document should be gone")
	}
	if _, err := s.GetAttestation(root); err == nil {
		t.Error("Attestation should be gone")
	}
}

func TestParseChainAddress(t *testing.T) {
	addr, err := ParseChainAddress("0x52908400098527886E0F7030069857D2E4169EE7")
	if err != nil {
		t.Fatal(err)
	}
	if addr != "0x52908400098527886e0f7030069857d2e4169ee7" {
		t.Error("Address should normalize to lowercase hex:", addr)
	}
	if _, err := ParseChainAddress("0x1234"); err == nil {
		t.Error("Short address should be rejected")
	}
	if _, err := ParseChainAddress("52908400098527886E0F7030069857D2E4169EE7"); err == nil {
		t.Error("Missing prefix should be rejected")
	}
}
