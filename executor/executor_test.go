package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintlabs/go-mint/common/types"
	"github.com/mintlabs/go-mint/ledgerdb"
	"github.com/mintlabs/go-mint/wallet"
)

func newTestStore(t *testing.T) *ledgerdb.Store {
	store, err := ledgerdb.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testAddress(seed byte) types.Address {
	addr, _ := types.CreateAddressFromSeed([32]byte{seed})
	return addr
}

// apply runs one transaction the way the host does: fresh fork, commit on
// success, discard on failure.
func apply(t *testing.T, store *ledgerdb.Store, author types.Address, tx Transaction) *ExecutionError {
	fork, err := store.NewFork()
	require.NoError(t, err)

	execErr, err := Execute(fork, author, tx)
	require.NoError(t, err)

	if execErr == nil {
		require.NoError(t, store.Commit(fork))
	} else {
		fork.Release()
	}
	return execErr
}

func getWallet(t *testing.T, store *ledgerdb.Store, addr types.Address) *wallet.Wallet {
	snapshot, err := store.NewSnapshot()
	require.NoError(t, err)
	defer snapshot.Release()

	w, err := wallet.NewSchema(snapshot).GetWallet(addr)
	require.NoError(t, err)
	return w
}

func TestCreateWallet(t *testing.T) {
	store := newTestStore(t)
	alice := testAddress(1)

	execErr := apply(t, store, alice, &TxCreateWallet{Name: "Alice"})
	assert.Nil(t, execErr)

	w := getWallet(t, store, alice)
	require.NotNil(t, w)
	assert.Equal(t, alice, w.PubKey)
	assert.Equal(t, "Alice", w.Name)
	assert.Equal(t, wallet.InitBalance, w.Balance)
}

func TestCreateWalletTwice(t *testing.T) {
	store := newTestStore(t)
	alice := testAddress(1)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))

	execErr := apply(t, store, alice, &TxCreateWallet{Name: "Alice again"})
	require.NotNil(t, execErr)
	assert.Equal(t, ErrWalletAlreadyExists, execErr)
	assert.Equal(t, uint8(0), execErr.Code)

	// the second attempt mutated nothing
	w := getWallet(t, store, alice)
	require.NotNil(t, w)
	assert.Equal(t, "Alice", w.Name)
	assert.Equal(t, wallet.InitBalance, w.Balance)
}

func TestTransfer(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))
	assert.Nil(t, apply(t, store, bob, &TxCreateWallet{Name: "Bob"}))
	assert.Nil(t, apply(t, store, alice, &TxTransfer{To: bob, Amount: 10}))

	assert.Equal(t, uint64(90), getWallet(t, store, alice).Balance)
	assert.Equal(t, uint64(110), getWallet(t, store, bob).Balance)
}

func TestTransferConservation(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))
	assert.Nil(t, apply(t, store, bob, &TxCreateWallet{Name: "Bob"}))

	before := getWallet(t, store, alice).Balance + getWallet(t, store, bob).Balance

	for _, amount := range []uint64{1, 7, 30, 52} {
		assert.Nil(t, apply(t, store, alice, &TxTransfer{To: bob, Amount: amount, Seed: amount}))
		after := getWallet(t, store, alice).Balance + getWallet(t, store, bob).Balance
		assert.Equal(t, before, after)
	}
}

func TestTransferToNonexistingWallet(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))

	execErr := apply(t, store, alice, &TxTransfer{To: bob, Amount: 10})
	require.NotNil(t, execErr)
	assert.Equal(t, ErrReceiverNotFound, execErr)
	assert.Equal(t, uint8(2), execErr.Code)

	assert.Equal(t, wallet.InitBalance, getWallet(t, store, alice).Balance)
	assert.Nil(t, getWallet(t, store, bob))
}

func TestTransferFromNonexistingWallet(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	assert.Nil(t, apply(t, store, bob, &TxCreateWallet{Name: "Bob"}))

	execErr := apply(t, store, alice, &TxTransfer{To: bob, Amount: 10})
	require.NotNil(t, execErr)
	assert.Equal(t, ErrSenderNotFound, execErr)
	assert.Equal(t, uint8(1), execErr.Code)

	assert.Equal(t, wallet.InitBalance, getWallet(t, store, bob).Balance)
}

func TestTransferInsufficientBalance(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))
	assert.Nil(t, apply(t, store, bob, &TxCreateWallet{Name: "Bob"}))

	execErr := apply(t, store, alice, &TxTransfer{To: bob, Amount: 150})
	require.NotNil(t, execErr)
	assert.Equal(t, ErrInsufficientBalance, execErr)
	assert.Equal(t, uint8(3), execErr.Code)

	// atomicity: both balances byte-identical to their pre-execution values
	assert.Equal(t, wallet.InitBalance, getWallet(t, store, alice).Balance)
	assert.Equal(t, wallet.InitBalance, getWallet(t, store, bob).Balance)
}

func TestTransferToSelf(t *testing.T) {
	store := newTestStore(t)
	alice := testAddress(1)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))

	execErr := apply(t, store, alice, &TxTransfer{To: alice, Amount: 5})
	require.NotNil(t, execErr)
	assert.Equal(t, ErrSenderSameAsReceiver, execErr)
	assert.Equal(t, uint8(4), execErr.Code)

	assert.Equal(t, wallet.InitBalance, getWallet(t, store, alice).Balance)
}

// The order of the failure checks is part of the protocol: a self-transfer
// from a nonexistent wallet must report SenderSameAsReceiver on every
// replica, not SenderNotFound.
func TestFailureCheckOrder(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	execErr := apply(t, store, alice, &TxTransfer{To: alice, Amount: 5})
	assert.Equal(t, ErrSenderSameAsReceiver, execErr)

	// sender missing beats receiver missing
	execErr = apply(t, store, alice, &TxTransfer{To: bob, Amount: 5})
	assert.Equal(t, ErrSenderNotFound, execErr)

	// receiver missing beats insufficient balance
	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))
	execErr = apply(t, store, alice, &TxTransfer{To: bob, Amount: 500})
	assert.Equal(t, ErrReceiverNotFound, execErr)
}

func TestTransferExactBalance(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))
	assert.Nil(t, apply(t, store, bob, &TxCreateWallet{Name: "Bob"}))
	assert.Nil(t, apply(t, store, alice, &TxTransfer{To: bob, Amount: wallet.InitBalance}))

	assert.Equal(t, uint64(0), getWallet(t, store, alice).Balance)
	assert.Equal(t, 2*wallet.InitBalance, getWallet(t, store, bob).Balance)
}

type step struct {
	author types.Address
	tx     Transaction
}

func dumpState(t *testing.T, store *ledgerdb.Store) []byte {
	snapshot, err := store.NewSnapshot()
	require.NoError(t, err)
	defer snapshot.Release()

	iter := wallet.NewSchema(snapshot).Wallets()
	defer iter.Release()

	var dump []byte
	for iter.Next() {
		dump = append(dump, iter.Wallet().Serialize()...)
	}
	require.NoError(t, iter.Error())
	return dump
}

// Replaying the same ordered sequence from genesis on two independent
// instances must yield identical state bytes and identical outcome codes.
func TestDeterministicReplay(t *testing.T) {
	alice, bob, carol := testAddress(1), testAddress(2), testAddress(3)

	sequence := []step{
		{alice, &TxCreateWallet{Name: "Alice"}},
		{bob, &TxCreateWallet{Name: "Bob"}},
		{alice, &TxCreateWallet{Name: "Alice again"}},
		{alice, &TxTransfer{To: bob, Amount: 10, Seed: 1}},
		{carol, &TxTransfer{To: alice, Amount: 1, Seed: 2}},
		{bob, &TxTransfer{To: alice, Amount: 200, Seed: 3}},
		{bob, &TxTransfer{To: bob, Amount: 1, Seed: 4}},
		{bob, &TxTransfer{To: carol, Amount: 5, Seed: 5}},
		{carol, &TxCreateWallet{Name: "Carol"}},
		{bob, &TxTransfer{To: carol, Amount: 5, Seed: 6}},
	}

	run := func() ([]byte, []*ExecutionError) {
		store := newTestStore(t)
		outcomes := make([]*ExecutionError, 0, len(sequence))
		for _, s := range sequence {
			outcomes = append(outcomes, apply(t, store, s.author, s.tx))
		}
		return dumpState(t, store), outcomes
	}

	stateA, outcomesA := run()
	stateB, outcomesB := run()

	assert.Equal(t, stateA, stateB)
	require.Equal(t, len(outcomesA), len(outcomesB))
	for i := range outcomesA {
		assert.Equal(t, outcomesA[i], outcomesB[i], "outcome %d diverged", i)
	}
}

func TestNonNegativity(t *testing.T) {
	store := newTestStore(t)
	alice, bob := testAddress(1), testAddress(2)

	assert.Nil(t, apply(t, store, alice, &TxCreateWallet{Name: "Alice"}))
	assert.Nil(t, apply(t, store, bob, &TxCreateWallet{Name: "Bob"}))

	assert.Nil(t, apply(t, store, alice, &TxTransfer{To: bob, Amount: wallet.InitBalance, Seed: 1}))
	execErr := apply(t, store, alice, &TxTransfer{To: bob, Amount: 1, Seed: 2})
	assert.Equal(t, ErrInsufficientBalance, execErr)
	assert.Equal(t, uint64(0), getWallet(t, store, alice).Balance)
}

func TestTxHash(t *testing.T) {
	alice, bob := testAddress(1), testAddress(2)

	tx := &TxTransfer{To: bob, Amount: 10, Seed: 0}
	assert.Equal(t, TxHash(alice, tx), TxHash(alice, tx))

	// author, payload fields, and seed all separate the hash space
	assert.NotEqual(t, TxHash(alice, tx), TxHash(bob, tx))
	assert.NotEqual(t, TxHash(alice, tx), TxHash(alice, &TxTransfer{To: bob, Amount: 11, Seed: 0}))
	assert.NotEqual(t, TxHash(alice, tx), TxHash(alice, &TxTransfer{To: bob, Amount: 10, Seed: 1}))
	assert.NotEqual(t, TxHash(alice, &TxCreateWallet{Name: "x"}), TxHash(alice, &TxCreateWallet{Name: "y"}))
}
