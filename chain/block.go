package chain

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/mintlabs/go-mint/common/types"
	"github.com/mintlabs/go-mint/executor"
)

// Transaction is one already-authenticated transaction as delivered by the
// consensus layer: the invoking identity plus the payload. Signature
// verification happened upstream.
type Transaction struct {
	Author  types.Address
	Payload executor.Transaction
}

func (t *Transaction) Hash() types.Hash {
	return executor.TxHash(t.Author, t.Payload)
}

// Block is the persisted record of one committed batch: the height and the
// ordered hashes of the transactions it carried.
type Block struct {
	Height   uint64
	TxHashes []types.Hash
}

// The record starts with a big-endian count so that an empty block still
// has a non-empty value in the store.
func (b *Block) serialize() []byte {
	buf := make([]byte, 4, 4+len(b.TxHashes)*types.HashSize)
	binary.BigEndian.PutUint32(buf, uint32(len(b.TxHashes)))
	for _, h := range b.TxHashes {
		buf = append(buf, h.Bytes()...)
	}
	return buf
}

func deserializeBlock(height uint64, buf []byte) (*Block, error) {
	if len(buf) < 4 {
		return nil, errors.Errorf("block record too short: %d bytes", len(buf))
	}
	count := int(binary.BigEndian.Uint32(buf))
	buf = buf[4:]
	if len(buf) != count*types.HashSize {
		return nil, errors.Errorf("block record length %d does not match tx count %d", len(buf), count)
	}

	block := &Block{Height: height}
	for off := 0; off < len(buf); off += types.HashSize {
		h, err := types.BytesToHash(buf[off : off+types.HashSize])
		if err != nil {
			return nil, err
		}
		block.TxHashes = append(block.TxHashes, h)
	}
	return block, nil
}
