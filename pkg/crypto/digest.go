package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Keccak256Hex returns the 0x-prefixed legacy keccak-256 of data, the same
// digest a Solidity test computes with keccak256(bytes(fixture)).
func Keccak256Hex(data []byte) string {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
