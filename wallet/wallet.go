package wallet

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/mintlabs/go-mint/common/types"
)

// InitBalance is the balance of every newly created wallet. Protocol
// constant; changing it forks the chain.
const InitBalance = uint64(100)

// Wallet is one account record in the ledger namespace. The public key is
// the identity, the name is set at creation and immutable afterwards, the
// balance only moves through transfer execution.
type Wallet struct {
	PubKey  types.Address `json:"pubKey"`
	Name    string        `json:"name"`
	Balance uint64        `json:"balance"`
}

func NewWallet(pubKey types.Address, name string, balance uint64) *Wallet {
	return &Wallet{
		PubKey:  pubKey,
		Name:    name,
		Balance: balance,
	}
}

func (w *Wallet) Increase(amount uint64) *Wallet {
	return NewWallet(w.PubKey, w.Name, w.Balance+amount)
}

func (w *Wallet) Decrease(amount uint64) *Wallet {
	return NewWallet(w.PubKey, w.Name, w.Balance-amount)
}

const walletRecordMinSize = types.AddressSize + 8

// Serialize renders the canonical record layout: 32-byte public key,
// 8-byte big-endian balance, name bytes. Every replica must produce
// byte-identical records for identical state.
func (w *Wallet) Serialize() []byte {
	buf := make([]byte, walletRecordMinSize+len(w.Name))
	copy(buf, w.PubKey.Bytes())
	binary.BigEndian.PutUint64(buf[types.AddressSize:], w.Balance)
	copy(buf[walletRecordMinSize:], w.Name)
	return buf
}

func (w *Wallet) Deserialize(buf []byte) error {
	if len(buf) < walletRecordMinSize {
		return errors.Errorf("wallet record too short: %d bytes", len(buf))
	}
	if err := w.PubKey.SetBytes(buf[:types.AddressSize]); err != nil {
		return err
	}
	w.Balance = binary.BigEndian.Uint64(buf[types.AddressSize:walletRecordMinSize])
	w.Name = string(buf[walletRecordMinSize:])
	return nil
}
