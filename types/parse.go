package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidHash    = errors.New("invalid hash")
)

// removePrefix strips a recognized identifier prefix from a query string.
// Only "0x" and the 8-character scheme tags are recognized; stripping is
// performed at most once.
func removePrefix(query string) string {
	if strings.HasPrefix(query, "0x") {
		return query[2:]
	}
	if strings.HasPrefix(query, "sync-bl:") || strings.HasPrefix(query, "sync-tx:") {
		return query[8:]
	}
	return query
}

// ParseAddress decodes a hex query string into a 20-byte account address.
func ParseAddress(query string) (common.Address, error) {
	bz, err := hex.DecodeString(removePrefix(query))
	if err != nil || len(bz) != common.AddressLength {
		return common.Address{}, ErrInvalidAddress
	}
	return common.BytesToAddress(bz), nil
}

// ParseHash decodes a hex query string into a 32-byte hash.
func ParseHash(query string) (common.Hash, error) {
	bz, err := hex.DecodeString(removePrefix(query))
	if err != nil || len(bz) != common.HashLength {
		return common.Hash{}, ErrInvalidHash
	}
	return common.BytesToHash(bz), nil
}

// DecodeRawTxHash is the legacy decoding path of the executed-transaction
// endpoint. It requires at least 2 characters and strips exactly the first
// two unconditionally, treating them as a "0x" prefix. Deliberately kept
// separate from ParseHash: clients depend on this stricter behavior.
func DecodeRawTxHash(query string) ([]byte, error) {
	if len(query) < 2 {
		return nil, ErrInvalidHash
	}
	bz, err := hex.DecodeString(query[2:])
	if err != nil {
		return nil, ErrInvalidHash
	}
	return bz, nil
}
