package merkletree

import "strings"

// Reserved content-type strings used by the exchange formats.
const (
	// ContentTypeJSON marks a UTF-8 JSON payload.
	ContentTypeJSON = "application/json; charset=utf-8"

	// ContentTypeJSONHex marks a UTF-8 JSON payload that was
	// transported hex-encoded.
	ContentTypeJSONHex = "application/json; charset=utf-8; encoding=hex"

	// ContentTypeText marks a plain UTF-8 text payload.
	ContentTypeText = "text/plain; charset=utf-8"

	// ContentTypeOctetStream marks an opaque binary payload.
	ContentTypeOctetStream = "application/octet-stream"

	// ContentTypeOctetStreamHex marks an opaque binary payload that
	// was transported hex-encoded.
	ContentTypeOctetStreamHex = "application/octet-stream; encoding=hex"

	// ContentTypeOctetStreamBase64 marks an opaque binary payload that
	// was transported base64-encoded.
	ContentTypeOctetStreamBase64 = "application/octet-stream; encoding=base64"

	// HeaderMediaType is the reserved media type of the V3 header
	// leaf. The header leaf's typ field must equal this string exactly.
	HeaderMediaType = "application/merkle-exchange-header-3.0+json"

	// ContentTypeHeaderV3 is the full content type carried by the V3
	// header leaf on the wire.
	ContentTypeHeaderV3 = "application/merkle-exchange-header-3.0+json; charset=utf-8; encoding=hex"

	// DocumentTypeV2 and DocumentTypeV3 are the typ values written
	// into the V2 and V3 document trailers.
	DocumentTypeV2 = "application/merkle-exchange-2.0+json"
	DocumentTypeV3 = "application/merkle-exchange-3.0+json"
)

// A ContentDescriptor is the parsed form of a leaf's MIME-like content
// type: the media type, the character set, and the transport encoding
// the payload was wrapped in on the wire.
type ContentDescriptor struct {
	MediaType string
	Charset   string
	Encoding  string
}

// ParseContentType splits a content-type string into its media type
// and parameters. Unknown parameters are ignored; missing ones are
// left empty. The empty string parses to an empty descriptor, which is
// what private leaves carry.
func ParseContentType(s string) ContentDescriptor {
	parts := strings.Split(s, ";")
	desc := ContentDescriptor{MediaType: strings.TrimSpace(parts[0])}
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		switch {
		case strings.HasPrefix(p, "charset="):
			desc.Charset = strings.TrimPrefix(p, "charset=")
		case strings.HasPrefix(p, "encoding="):
			desc.Encoding = strings.TrimPrefix(p, "encoding=")
		}
	}
	return desc
}

// IsUTF8 reports whether the descriptor marks a UTF-8 textual payload.
func (d ContentDescriptor) IsUTF8() bool {
	return strings.EqualFold(d.Charset, "utf-8")
}

// IsJSON reports whether the descriptor marks a JSON payload,
// including the reserved header media type.
func (d ContentDescriptor) IsJSON() bool {
	return d.MediaType == "application/json" ||
		strings.HasSuffix(d.MediaType, "+json")
}

// IsHeader reports whether the descriptor marks the reserved V3
// header media type.
func (d ContentDescriptor) IsHeader() bool {
	return d.MediaType == HeaderMediaType
}
