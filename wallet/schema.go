package wallet

import (
	chain_utils "github.com/mintlabs/go-mint/chain/utils"
	"github.com/mintlabs/go-mint/common/types"
	"github.com/mintlabs/go-mint/ledgerdb"
)

// Schema is the read access path to wallet records, usable over any view
// (snapshot or fork).
type Schema struct {
	view ledgerdb.View
}

func NewSchema(view ledgerdb.View) *Schema {
	return &Schema{view: view}
}

// GetWallet returns nil when no wallet exists for the identity.
func (s *Schema) GetWallet(addr types.Address) (*Wallet, error) {
	value, err := s.view.Get(chain_utils.CreateWalletKey(addr))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	w := &Wallet{}
	if err := w.Deserialize(value); err != nil {
		return nil, err
	}
	return w, nil
}

// Wallets iterates all wallet records in store key order. The order is
// consistent across replicas but carries no client meaning.
func (s *Schema) Wallets() *WalletIterator {
	return &WalletIterator{iter: s.view.NewIterator([]byte{chain_utils.WalletKeyPrefix})}
}

// MutableSchema adds the write path; it only ever wraps a fork held by the
// currently executing transaction.
type MutableSchema struct {
	*Schema
	fork ledgerdb.Writer
}

func NewMutableSchema(fork ledgerdb.Writer) *MutableSchema {
	return &MutableSchema{
		Schema: NewSchema(fork),
		fork:   fork,
	}
}

// SaveWallet inserts or overwrites the record for the wallet's identity.
func (ms *MutableSchema) SaveWallet(w *Wallet) {
	ms.fork.Put(chain_utils.CreateWalletKey(w.PubKey), w.Serialize())
}

// WalletIterator is a restartable walk over wallet records; Release must be
// called when done.
type WalletIterator struct {
	iter ledgerdb.StorageIterator

	current *Wallet
	err     error
}

func (wi *WalletIterator) Next() bool {
	if wi.err != nil {
		return false
	}
	if !wi.iter.Next() {
		wi.err = wi.iter.Error()
		return false
	}

	w := &Wallet{}
	if err := w.Deserialize(wi.iter.Value()); err != nil {
		wi.err = err
		return false
	}
	wi.current = w
	return true
}

func (wi *WalletIterator) Wallet() *Wallet {
	return wi.current
}

func (wi *WalletIterator) Error() error {
	return wi.err
}

func (wi *WalletIterator) Release() {
	wi.iter.Release()
}
