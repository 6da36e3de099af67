package chain

import (
	"github.com/pkg/errors"

	chain_utils "github.com/mintlabs/go-mint/chain/utils"
	"github.com/mintlabs/go-mint/common/types"
	"github.com/mintlabs/go-mint/wallet"
)

// GetWallet reads one wallet from the latest committed state. Returns nil
// when no wallet exists for the identity.
func (c *Chain) GetWallet(addr types.Address) (*wallet.Wallet, error) {
	if cached, ok := c.walletCache.Get(addr); ok {
		return cached.(*wallet.Wallet), nil
	}

	snapshot, err := c.store.NewSnapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	w, err := wallet.NewSchema(snapshot).GetWallet(addr)
	if err != nil {
		return nil, err
	}
	if w != nil {
		c.walletCache.Add(addr, w)
	}
	return w, nil
}

// GetWallets dumps all wallets from the latest committed state in store key
// order.
func (c *Chain) GetWallets() ([]*wallet.Wallet, error) {
	snapshot, err := c.store.NewSnapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	iter := wallet.NewSchema(snapshot).Wallets()
	defer iter.Release()

	var wallets []*wallet.Wallet
	for iter.Next() {
		wallets = append(wallets, iter.Wallet())
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return wallets, nil
}

// GetExecutionOutcome returns the recorded outcome of a transaction, or nil
// when the hash is unknown to the ledger history.
func (c *Chain) GetExecutionOutcome(txHash types.Hash) (*Outcome, error) {
	snapshot, err := c.store.NewSnapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	value, err := snapshot.Get(chain_utils.CreateOutcomeKey(txHash))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return deserializeOutcome(txHash, value)
}

func (c *Chain) LatestHeight() (uint64, error) {
	snapshot, err := c.store.NewSnapshot()
	if err != nil {
		return 0, err
	}
	defer snapshot.Release()

	value, err := snapshot.Get(chain_utils.CreateLatestHeightKey())
	if err != nil {
		return 0, err
	}
	if value == nil {
		return 0, errors.New("ledger not initialized, latest height is missing")
	}
	return chain_utils.BytesToUint64(value), nil
}

// GetBlock returns the persisted block record for a height, or nil when the
// height is beyond the chain head.
func (c *Chain) GetBlock(height uint64) (*Block, error) {
	snapshot, err := c.store.NewSnapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	value, err := snapshot.Get(chain_utils.CreateBlockKey(height))
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return deserializeBlock(height, value)
}
