package merkletree

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
)

// A Leaf is one field's commitment in the tree. A public leaf carries
// its content type, payload, salt, and hash; a private leaf carries
// the hash only. For a public leaf the invariant hash = H(data || salt)
// holds. A private leaf's hash is supplied externally and cannot be
// verified locally, only for consistency with the tree root.
type Leaf struct {
	ContentType string
	Data        []byte
	Salt        []byte
	Hash        []byte
}

// NewLeaf returns a public leaf whose hash is computed over the given
// data and salt with the given hasher.
func NewLeaf(contentType string, data, salt []byte, hasher hashers.ExchangeHasher) Leaf {
	return Leaf{
		ContentType: contentType,
		Data:        append([]byte{}, data...),
		Salt:        append([]byte{}, salt...),
		Hash:        hasher.HashLeaf(data, salt),
	}
}

// NewJSONLeaf returns a public leaf whose payload is the single-key
// JSON object {name: value}.
func NewJSONLeaf(name string, value interface{}, salt []byte, hasher hashers.ExchangeHasher) (Leaf, error) {
	data, err := json.Marshal(map[string]interface{}{name: value})
	if err != nil {
		return Leaf{}, err
	}
	return NewLeaf(ContentTypeJSONHex, data, salt, hasher), nil
}

// NewPrivateLeaf returns a private leaf carrying only the given hash.
func NewPrivateLeaf(hash []byte) Leaf {
	return Leaf{Hash: append([]byte{}, hash...)}
}

// IsPrivate reports whether the leaf has been reduced to its hash.
func (l *Leaf) IsPrivate() bool {
	return len(l.Data) == 0 && len(l.Salt) == 0 && len(l.Hash) != 0
}

// IsHeader reports whether the leaf carries the reserved V3 header
// media type.
func (l *Leaf) IsHeader() bool {
	return ParseContentType(l.ContentType).IsHeader()
}

// TryReadText returns the leaf payload as a string. It succeeds only
// for a non-private leaf whose content descriptor marks UTF-8 text and
// whose payload is valid UTF-8.
func (l *Leaf) TryReadText() (string, bool) {
	if l.IsPrivate() || !ParseContentType(l.ContentType).IsUTF8() {
		return "", false
	}
	if !utf8.Valid(l.Data) {
		return "", false
	}
	return string(l.Data), true
}

// TryReadJSON returns the leaf payload decoded as a JSON object. It
// succeeds only for a non-private, UTF-8, JSON-classified leaf whose
// payload parses as an object. Private, non-JSON, and malformed leaves
// are expected cases and simply return false.
func (l *Leaf) TryReadJSON() (map[string]json.RawMessage, bool) {
	if l.IsPrivate() {
		return nil, false
	}
	desc := ParseContentType(l.ContentType)
	if !desc.IsUTF8() || !desc.IsJSON() {
		return nil, false
	}
	if !utf8.Valid(l.Data) {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(l.Data, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// TryReadJSONKeys returns the key set of the leaf's JSON payload. It
// is used by disclosure predicates that key on field name without
// caring about the value.
func (l *Leaf) TryReadJSONKeys() ([]string, bool) {
	obj, ok := l.TryReadJSON()
	if !ok {
		return nil, false
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	return keys, true
}

// clone returns a deep copy of the leaf.
func (l *Leaf) clone() Leaf {
	return Leaf{
		ContentType: l.ContentType,
		Data:        append([]byte{}, l.Data...),
		Salt:        append([]byte{}, l.Salt...),
		Hash:        append([]byte{}, l.Hash...),
	}
}
