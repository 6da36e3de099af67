package ledgerdb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Fork is the read-write view handed to one executing transaction. Reads see
// the pending writes stacked over the snapshot taken at fork creation; the
// committed store stays untouched until Store.Commit. A fork is exclusive to
// a single goroutine.
type Fork struct {
	snapshot *Snapshot
	pending  *memdb.DB
}

func newFork(snapshot *Snapshot) *Fork {
	return &Fork{
		snapshot: snapshot,
		pending:  memdb.New(comparer.DefaultComparer, 0),
	}
}

func (f *Fork) Get(key []byte) ([]byte, error) {
	value, err := f.pending.Get(key)
	if err == nil {
		return value, nil
	}
	if err != leveldb.ErrNotFound {
		return nil, err
	}
	return f.snapshot.Get(key)
}

func (f *Fork) Put(key, value []byte) {
	f.pending.Put(copyBytes(key), copyBytes(value))
}

// NewIterator merges pending writes over the underlying snapshot in byte-wise
// key order; a pending write shadows the committed value for the same key.
func (f *Fork) NewIterator(prefix []byte) StorageIterator {
	return newMergedIterator(
		f.pending.NewIterator(util.BytesPrefix(prefix)),
		f.snapshot.NewIterator(prefix),
	)
}

func (f *Fork) pendingIterator() StorageIterator {
	return f.pending.NewIterator(nil)
}

func (f *Fork) Release() {
	f.snapshot.Release()
	f.pending.Reset()
}
