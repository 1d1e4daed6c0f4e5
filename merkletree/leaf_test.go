package merkletree

import (
	"bytes"
	"testing"
)

func TestNewLeafHash(t *testing.T) {
	hasher := staticHasher(t)
	data := []byte(`{"name":"John Doe"}`)
	salt := staticSalt(1)

	leaf := NewLeaf(ContentTypeJSONHex, data, salt, hasher)
	if leaf.IsPrivate() {
		t.Fatal("Public leaf reported as private")
	}
	if !bytes.Equal(leaf.Hash, hasher.Digest(data, salt)) {
		t.Error("Leaf hash is not H(data || salt)")
	}
}

func TestPrivateLeaf(t *testing.T) {
	leaf := NewPrivateLeaf([]byte{1, 2, 3})
	if !leaf.IsPrivate() {
		t.Error("Hash-only leaf should be private")
	}
	if _, ok := leaf.TryReadText(); ok {
		t.Error("Private leaf should not read as text")
	}
	if _, ok := leaf.TryReadJSON(); ok {
		t.Error("Private leaf should not read as JSON")
	}
}

func TestTryReadText(t *testing.T) {
	hasher := staticHasher(t)

	leaf := NewLeaf(ContentTypeText, []byte("hello"), staticSalt(1), hasher)
	s, ok := leaf.TryReadText()
	if !ok || s != "hello" {
		t.Error("UTF-8 text leaf should read back:", s, ok)
	}

	// JSON leaves are still UTF-8 text.
	leaf = NewLeaf(ContentTypeJSONHex, []byte(`{"a":1}`), staticSalt(1), hasher)
	if _, ok := leaf.TryReadText(); !ok {
		t.Error("JSON leaf is UTF-8 and should read as text")
	}

	leaf = NewLeaf(ContentTypeOctetStream, []byte{0xff, 0xfe}, staticSalt(1), hasher)
	if _, ok := leaf.TryReadText(); ok {
		t.Error("Binary leaf should not read as text")
	}
}

func TestTryReadJSON(t *testing.T) {
	hasher := staticHasher(t)

	leaf := NewLeaf(ContentTypeJSONHex, []byte(`{"name":"John Doe"}`), staticSalt(1), hasher)
	obj, ok := leaf.TryReadJSON()
	if !ok {
		t.Fatal("JSON object leaf should decode")
	}
	if string(obj["name"]) != `"John Doe"` {
		t.Error("Unexpected value:", string(obj["name"]))
	}

	// Malformed and non-object payloads are expected cases, not errors.
	leaf = NewLeaf(ContentTypeJSONHex, []byte(`{"broken`), staticSalt(1), hasher)
	if _, ok := leaf.TryReadJSON(); ok {
		t.Error("Malformed JSON should return false")
	}
	leaf = NewLeaf(ContentTypeJSONHex, []byte(`[1,2,3]`), staticSalt(1), hasher)
	if _, ok := leaf.TryReadJSON(); ok {
		t.Error("JSON array should return false")
	}
	leaf = NewLeaf(ContentTypeText, []byte(`{"a":1}`), staticSalt(1), hasher)
	if _, ok := leaf.TryReadJSON(); ok {
		t.Error("Non-JSON content type should return false")
	}
}

func TestTryReadJSONKeys(t *testing.T) {
	hasher := staticHasher(t)
	leaf := NewLeaf(ContentTypeJSONHex, []byte(`{"age":30}`), staticSalt(1), hasher)
	keys, ok := leaf.TryReadJSONKeys()
	if !ok || len(keys) != 1 || keys[0] != "age" {
		t.Error("Unexpected key set:", keys, ok)
	}
}

func TestParseContentType(t *testing.T) {
	desc := ParseContentType(ContentTypeHeaderV3)
	if desc.MediaType != HeaderMediaType {
		t.Error("Wrong media type:", desc.MediaType)
	}
	if !desc.IsUTF8() || !desc.IsJSON() || !desc.IsHeader() {
		t.Error("Header content type misclassified:", desc)
	}
	if desc.Encoding != "hex" {
		t.Error("Wrong encoding:", desc.Encoding)
	}

	desc = ParseContentType(ContentTypeOctetStreamBase64)
	if desc.IsUTF8() || desc.IsJSON() || desc.IsHeader() {
		t.Error("Octet-stream content type misclassified:", desc)
	}
	if desc.Encoding != "base64" {
		t.Error("Wrong encoding:", desc.Encoding)
	}

	if ParseContentType("").MediaType != "" {
		t.Error("Empty content type should parse to an empty descriptor")
	}
}
