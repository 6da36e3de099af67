package ledgerdb

import "bytes"

const (
	srcNone = iota
	srcPending
	srcCommitted
)

// mergedIterator interleaves a fork's pending writes with the committed
// snapshot in key order. On key collision the pending entry wins and the
// committed one is skipped.
type mergedIterator struct {
	pending   StorageIterator
	committed StorageIterator

	pendingValid   bool
	committedValid bool

	started bool
	src     int
	err     error
}

func newMergedIterator(pending StorageIterator, committed StorageIterator) StorageIterator {
	return &mergedIterator{
		pending:   pending,
		committed: committed,
	}
}

func (it *mergedIterator) Next() bool {
	if it.err != nil {
		return false
	}

	if !it.started {
		it.started = true
		it.pendingValid = it.pending.Next()
		it.committedValid = it.committed.Next()
	} else {
		switch it.src {
		case srcPending:
			it.pendingValid = it.pending.Next()
		case srcCommitted:
			it.committedValid = it.committed.Next()
		}
	}

	for it.pendingValid && it.committedValid {
		cmp := bytes.Compare(it.pending.Key(), it.committed.Key())
		if cmp == 0 {
			it.committedValid = it.committed.Next()
			continue
		}
		if cmp < 0 {
			it.src = srcPending
		} else {
			it.src = srcCommitted
		}
		return true
	}

	if it.pendingValid {
		it.src = srcPending
		return true
	}
	if it.committedValid {
		it.src = srcCommitted
		return true
	}

	it.src = srcNone
	if err := it.pending.Error(); err != nil {
		it.err = err
	} else if err := it.committed.Error(); err != nil {
		it.err = err
	}
	return false
}

func (it *mergedIterator) Key() []byte {
	switch it.src {
	case srcPending:
		return it.pending.Key()
	case srcCommitted:
		return it.committed.Key()
	}
	return nil
}

func (it *mergedIterator) Value() []byte {
	switch it.src {
	case srcPending:
		return it.pending.Value()
	case srcCommitted:
		return it.committed.Value()
	}
	return nil
}

func (it *mergedIterator) Error() error {
	return it.err
}

func (it *mergedIterator) Release() {
	it.pending.Release()
	it.committed.Release()
}
