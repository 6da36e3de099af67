package executor

import (
	"fmt"

	"github.com/inconshreveable/log15"

	"github.com/mintlabs/go-mint/common/types"
	"github.com/mintlabs/go-mint/ledgerdb"
	"github.com/mintlabs/go-mint/wallet"
)

var elog = log15.New("module", "executor")

// Execute is the state-transition function: it runs one authenticated
// transaction against the fork and either mutates it or returns the typed
// failure. It writes nothing on failure, so discarding the fork is always
// safe. The second return reports store faults; those are fatal to the node,
// never a consensus outcome.
//
// Every replica executing the same transaction against identical state gets
// the identical result, including the failure kind: the order of the checks
// below is part of the protocol.
func Execute(fork ledgerdb.Writer, author types.Address, tx Transaction) (*ExecutionError, error) {
	switch payload := tx.(type) {
	case *TxCreateWallet:
		return executeCreateWallet(fork, author, payload)
	case *TxTransfer:
		return executeTransfer(fork, author, payload)
	default:
		panic(fmt.Sprintf("unknown transaction type %T", tx))
	}
}

func executeCreateWallet(fork ledgerdb.Writer, author types.Address, tx *TxCreateWallet) (*ExecutionError, error) {
	schema := wallet.NewMutableSchema(fork)

	existing, err := schema.GetWallet(author)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return ErrWalletAlreadyExists, nil
	}

	created := wallet.NewWallet(author, tx.Name, wallet.InitBalance)
	schema.SaveWallet(created)

	elog.Debug("create wallet", "pubKey", author, "name", tx.Name)
	return nil, nil
}

func executeTransfer(fork ledgerdb.Writer, author types.Address, tx *TxTransfer) (*ExecutionError, error) {
	if author == tx.To {
		return ErrSenderSameAsReceiver, nil
	}

	schema := wallet.NewMutableSchema(fork)

	sender, err := schema.GetWallet(author)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return ErrSenderNotFound, nil
	}

	receiver, err := schema.GetWallet(tx.To)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return ErrReceiverNotFound, nil
	}

	if sender.Balance < tx.Amount {
		return ErrInsufficientBalance, nil
	}

	// Total issuance is InitBalance per created wallet, so a uint64 credit
	// cannot overflow.
	schema.SaveWallet(sender.Decrease(tx.Amount))
	schema.SaveWallet(receiver.Increase(tx.Amount))

	elog.Debug("transfer", "from", author, "to", tx.To, "amount", tx.Amount)
	return nil, nil
}
