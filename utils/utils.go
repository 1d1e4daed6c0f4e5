package utils

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HexPrefix is the marker carried by every binary value on the wire.
const HexPrefix = "0x"

// EncodeHex returns the 0x-prefixed lowercase hex encoding of b.
// An empty slice encodes as the bare prefix.
func EncodeHex(b []byte) string {
	return HexPrefix + hex.EncodeToString(b)
}

// DecodeHex decodes a 0x-prefixed hex string into bytes. Upper- and
// lowercase digits are both accepted. The prefix is mandatory.
func DecodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, HexPrefix) {
		return nil, fmt.Errorf("hex value %q lacks the 0x prefix", s)
	}
	b, err := hex.DecodeString(strings.ToLower(s[len(HexPrefix):]))
	if err != nil {
		return nil, fmt.Errorf("malformed hex value %q: %v", s, err)
	}
	return b, nil
}

// WriteFile writes buf to a file whose path is indicated by filename.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("Can't write file. File '%s' already exists\n",
			filename)
	}

	if err := os.WriteFile(filename, buf, perm); err != nil {
		return err
	}
	return nil
}

// ResolvePath returns the absolute path of file.
// This will use other as a base path if file is just a file name.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}
