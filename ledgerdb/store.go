package ledgerdb

import (
	"os"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// Store owns the leveldb instance backing the ledger namespace. All reads go
// through views: an immutable Snapshot or a read-write Fork. Writes reach the
// disk only through Commit, as one atomic batch per fork.
type Store struct {
	dbDir string
	db    *leveldb.DB
}

func NewStore(dataDir string) (*Store, error) {
	db, err := leveldb.OpenFile(dataDir, nil)
	if err != nil {
		return nil, err
	}

	return &Store{
		dbDir: dataDir,
		db:    db,
	}, nil
}

// NewSnapshot captures an immutable read-only view of the committed state.
// Safe for concurrent readers; callers must Release it.
func (store *Store) NewSnapshot() (*Snapshot, error) {
	snap, err := store.db.GetSnapshot()
	if err != nil {
		return nil, err
	}
	return &Snapshot{snap: snap}, nil
}

// NewFork creates a read-write view stacked on a snapshot of the current
// committed state. The fork accumulates writes in memory until Commit.
func (store *Store) NewFork() (*Fork, error) {
	snapshot, err := store.NewSnapshot()
	if err != nil {
		return nil, err
	}
	return newFork(snapshot), nil
}

// Commit atomically applies all pending writes of the fork. Either every
// write becomes visible or, on error, none does. The fork is released and
// must not be used afterwards.
func (store *Store) Commit(fork *Fork) error {
	batch := new(leveldb.Batch)

	iter := fork.pendingIterator()
	for iter.Next() {
		batch.Put(copyBytes(iter.Key()), copyBytes(iter.Value()))
	}
	if err := iter.Error(); err != nil {
		iter.Release()
		return err
	}
	iter.Release()

	if err := store.db.Write(batch, nil); err != nil {
		return err
	}

	fork.Release()
	return nil
}

func (store *Store) Close() error {
	return store.db.Close()
}

func (store *Store) Clean() error {
	if err := store.Close(); err != nil {
		return err
	}

	if err := os.RemoveAll(store.dbDir); err != nil && err != os.ErrNotExist {
		return errors.New("Remove " + store.dbDir + " failed, error is " + err.Error())
	}

	store.db = nil

	return nil
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
