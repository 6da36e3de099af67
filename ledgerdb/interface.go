package ledgerdb

// StorageIterator walks key/value pairs in byte-wise key order.
type StorageIterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Release()
}

// View is a read-only window over one logical namespace of the ledger store.
// Get returns (nil, nil) when the key is absent.
type View interface {
	Get(key []byte) ([]byte, error)
	NewIterator(prefix []byte) StorageIterator
}

// Writer is a view that additionally accepts writes. Only a Fork implements
// it; a Writer is exclusive to the single transaction currently executing.
type Writer interface {
	View
	Put(key, value []byte)
}
