package executor

import (
	"encoding/binary"

	"github.com/mintlabs/go-mint/common/types"
)

const (
	TxTypeCreateWallet = byte(1)
	TxTypeTransfer     = byte(2)
)

// Transaction is the closed set of payload kinds the engine executes.
// Payloads are immutable value objects; structure validation happens
// upstream, domain invariants are enforced here.
type Transaction interface {
	Type() byte

	// Serialize renders the canonical payload encoding: type tag followed
	// by the fixed-layout fields.
	Serialize() []byte
}

// TxCreateWallet creates a wallet for the invoking identity with the fixed
// initial balance.
type TxCreateWallet struct {
	Name string
}

func (tx *TxCreateWallet) Type() byte {
	return TxTypeCreateWallet
}

func (tx *TxCreateWallet) Serialize() []byte {
	buf := make([]byte, 1+len(tx.Name))
	buf[0] = TxTypeCreateWallet
	copy(buf[1:], tx.Name)
	return buf
}

// TxTransfer moves amount units from the invoking identity to the recipient.
// Seed distinguishes otherwise identical transfers so they hash differently.
type TxTransfer struct {
	To     types.Address
	Amount uint64
	Seed   uint64
}

func (tx *TxTransfer) Type() byte {
	return TxTypeTransfer
}

func (tx *TxTransfer) Serialize() []byte {
	buf := make([]byte, 1+types.AddressSize+8+8)
	buf[0] = TxTypeTransfer
	copy(buf[1:], tx.To.Bytes())
	binary.BigEndian.PutUint64(buf[1+types.AddressSize:], tx.Amount)
	binary.BigEndian.PutUint64(buf[1+types.AddressSize+8:], tx.Seed)
	return buf
}

// TxHash identifies one authenticated transaction: the hash covers the
// author identity and the canonical payload encoding.
func TxHash(author types.Address, tx Transaction) types.Hash {
	return types.DataListHash(author.Bytes(), tx.Serialize())
}
