package chain

import (
	"fmt"
	"path"

	lru "github.com/hashicorp/golang-lru"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	chain_utils "github.com/mintlabs/go-mint/chain/utils"
	"github.com/mintlabs/go-mint/ledgerdb"
)

const walletCacheSize = 10 * 1024

// Chain is the host side of the execution engine: it owns the ledger store,
// feeds ordered transactions to the executor one at a time, commits their
// forks, and records every outcome into the ledger history.
type Chain struct {
	dataDir  string
	chainDir string

	log log15.Logger

	store *ledgerdb.Store

	// Read cache for committed wallet records; purged on every block commit
	// so it can never serve an in-flight fork.
	walletCache *lru.Cache
}

func NewChain(dataDir string) *Chain {
	return &Chain{
		dataDir:  dataDir,
		chainDir: path.Join(dataDir, "ledger"),
		log:      log15.New("module", "chain"),
	}
}

/*
 * 1. Open the ledger store
 * 2. Check the ledger, write the genesis block when empty
 * 3. Init the wallet read cache
 */
func (c *Chain) Init() error {
	c.log.Info("Begin initializing", "method", "Init")

	store, err := ledgerdb.NewStore(c.chainDir)
	if err != nil {
		cErr := errors.New(fmt.Sprintf("ledgerdb.NewStore failed, error is %s, chainDir is %s", err, c.chainDir))
		c.log.Error(cErr.Error(), "method", "Init")
		return cErr
	}
	c.store = store

	if err := c.checkAndInitGenesis(); err != nil {
		cErr := errors.New(fmt.Sprintf("c.checkAndInitGenesis failed, error is %s", err))
		c.log.Error(cErr.Error(), "method", "Init")
		return cErr
	}

	if c.walletCache, err = lru.New(walletCacheSize); err != nil {
		return err
	}

	c.log.Info("Complete initialization", "method", "Init")
	return nil
}

func (c *Chain) Close() error {
	if err := c.store.Close(); err != nil {
		return err
	}
	c.store = nil
	c.walletCache = nil
	return nil
}

// checkAndInitGenesis writes the height-0 block when the ledger is empty.
// Genesis carries no transactions; all state evolves from executed blocks.
func (c *Chain) checkAndInitGenesis() error {
	snapshot, err := c.store.NewSnapshot()
	if err != nil {
		return err
	}
	value, err := snapshot.Get(chain_utils.CreateLatestHeightKey())
	snapshot.Release()
	if err != nil {
		return err
	}
	if value != nil {
		return nil
	}

	genesis := &Block{Height: 0}

	fork, err := c.store.NewFork()
	if err != nil {
		return err
	}
	fork.Put(chain_utils.CreateBlockKey(genesis.Height), genesis.serialize())
	fork.Put(chain_utils.CreateLatestHeightKey(), chain_utils.Uint64ToBytes(genesis.Height))

	if err := c.store.Commit(fork); err != nil {
		return err
	}

	c.log.Info("Init genesis block", "method", "checkAndInitGenesis")
	return nil
}
