package chain_utils

import (
	"encoding/binary"

	"github.com/mintlabs/go-mint/common/types"
)

// Key layout of the ledger namespace. The namespace is exclusively owned by
// this service; prefixes must never be reused once deployed.
const (
	WalletKeyPrefix = byte(1)

	OutcomeKeyPrefix = byte(2)

	BlockKeyPrefix = byte(3)

	LatestHeightKeyPrefix = byte(4)
)

func CreateWalletKey(addr types.Address) []byte {
	key := make([]byte, 1+types.AddressSize)
	key[0] = WalletKeyPrefix
	copy(key[1:], addr.Bytes())
	return key
}

func CreateOutcomeKey(txHash types.Hash) []byte {
	key := make([]byte, 1+types.HashSize)
	key[0] = OutcomeKeyPrefix
	copy(key[1:], txHash.Bytes())
	return key
}

func CreateBlockKey(height uint64) []byte {
	key := make([]byte, 1+8)
	key[0] = BlockKeyPrefix
	binary.BigEndian.PutUint64(key[1:], height)
	return key
}

func CreateLatestHeightKey() []byte {
	return []byte{LatestHeightKeyPrefix}
}

func Uint64ToBytes(height uint64) []byte {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, height)
	return bytes
}

func BytesToUint64(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes)
}
