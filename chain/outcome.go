package chain

import (
	"github.com/pkg/errors"

	"github.com/mintlabs/go-mint/common/types"
	"github.com/mintlabs/go-mint/executor"
)

const (
	outcomeStatusOK     = byte(0)
	outcomeStatusFailed = byte(1)
)

// Outcome is the replicated result of one executed transaction. Err is nil
// for a successful execution; for a failure it is the member of the closed
// taxonomy whose code got recorded in the ledger history.
type Outcome struct {
	TxHash types.Hash
	Err    *executor.ExecutionError
}

func (o *Outcome) serialize() []byte {
	if o.Err == nil {
		return []byte{outcomeStatusOK}
	}
	return []byte{outcomeStatusFailed, o.Err.Code}
}

func deserializeOutcome(txHash types.Hash, buf []byte) (*Outcome, error) {
	if len(buf) == 0 {
		return nil, errors.New("empty outcome record")
	}

	switch buf[0] {
	case outcomeStatusOK:
		return &Outcome{TxHash: txHash}, nil
	case outcomeStatusFailed:
		if len(buf) < 2 {
			return nil, errors.New("truncated outcome record")
		}
		execErr, ok := executor.ErrorByCode(buf[1])
		if !ok {
			return nil, errors.Errorf("unknown execution error code %d", buf[1])
		}
		return &Outcome{TxHash: txHash, Err: execErr}, nil
	default:
		return nil, errors.Errorf("unknown outcome status %d", buf[0])
	}
}
