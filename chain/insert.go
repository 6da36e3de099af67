package chain

import (
	chain_utils "github.com/mintlabs/go-mint/chain/utils"
	"github.com/mintlabs/go-mint/executor"
)

// InsertBlock applies one externally ordered batch of transactions. Each
// transaction executes to completion against its own fresh fork before the
// next begins; a successful fork is committed, a failed one is discarded
// with the store untouched. A failing transaction never aborts the rest of
// the batch. The block record and all outcome records are committed together
// once every transaction has run.
func (c *Chain) InsertBlock(txs []Transaction) (*Block, []*Outcome, error) {
	latest, err := c.LatestHeight()
	if err != nil {
		return nil, nil, err
	}

	block := &Block{Height: latest + 1}
	outcomes := make([]*Outcome, 0, len(txs))

	for i := range txs {
		tx := &txs[i]
		txHash := tx.Hash()

		fork, err := c.store.NewFork()
		if err != nil {
			return nil, nil, err
		}

		execErr, err := executor.Execute(fork, tx.Author, tx.Payload)
		if err != nil {
			fork.Release()
			return nil, nil, err
		}

		if execErr == nil {
			if err := c.store.Commit(fork); err != nil {
				return nil, nil, err
			}
		} else {
			fork.Release()
			c.log.Info("transaction failed", "txHash", txHash, "code", execErr.Code, "error", execErr.Description, "method", "InsertBlock")
		}

		block.TxHashes = append(block.TxHashes, txHash)
		outcomes = append(outcomes, &Outcome{TxHash: txHash, Err: execErr})
	}

	metaFork, err := c.store.NewFork()
	if err != nil {
		return nil, nil, err
	}
	for _, outcome := range outcomes {
		metaFork.Put(chain_utils.CreateOutcomeKey(outcome.TxHash), outcome.serialize())
	}
	metaFork.Put(chain_utils.CreateBlockKey(block.Height), block.serialize())
	metaFork.Put(chain_utils.CreateLatestHeightKey(), chain_utils.Uint64ToBytes(block.Height))

	if err := c.store.Commit(metaFork); err != nil {
		return nil, nil, err
	}

	c.walletCache.Purge()

	c.log.Info("insert block", "height", block.Height, "txCount", len(txs), "method", "InsertBlock")
	return block, outcomes, nil
}
