package ledgerdb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Snapshot is an immutable read-only view. Once captured it never observes
// later commits, so it can be shared by arbitrarily many readers.
type Snapshot struct {
	snap *leveldb.Snapshot
}

func (s *Snapshot) Get(key []byte) ([]byte, error) {
	value, err := s.snap.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

func (s *Snapshot) NewIterator(prefix []byte) StorageIterator {
	return s.snap.NewIterator(util.BytesPrefix(prefix), nil)
}

func (s *Snapshot) Release() {
	s.snap.Release()
}
