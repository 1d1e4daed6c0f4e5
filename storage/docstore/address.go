package docstore

import (
	"fmt"

	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// ChainAddressSize is the width in bytes of a chain address.
const ChainAddressSize = 20

// A ChainAddress is the 20-byte account address a root attestation was
// published from, carried as a 0x-prefixed hex string. It is a plain
// value type; nothing here talks to a chain.
type ChainAddress string

// ParseChainAddress validates the given string as a chain address and
// returns it in lowercase hex form.
func ParseChainAddress(s string) (ChainAddress, error) {
	b, err := utils.DecodeHex(s)
	if err != nil {
		return "", err
	}
	if len(b) != ChainAddressSize {
		return "", fmt.Errorf("chain address must be %d bytes, got %d", ChainAddressSize, len(b))
	}
	return ChainAddress(utils.EncodeHex(b)), nil
}

// Bytes returns the address's raw 20 bytes.
func (a ChainAddress) Bytes() ([]byte, error) {
	return utils.DecodeHex(string(a))
}
