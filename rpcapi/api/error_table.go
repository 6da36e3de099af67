package api

import (
	"github.com/pkg/errors"
)

// JsonRpc2Error carries a machine-readable code next to the message so
// clients querying outcome history see the stable encoding, not prose.
type JsonRpc2Error struct {
	Message string
	Code    int
}

func (e JsonRpc2Error) Error() string {
	return e.Message
}

func (e JsonRpc2Error) ErrorCode() int {
	return e.Code
}

var (
	ErrWalletNotFound = JsonRpc2Error{
		Message: "wallet not found",
		Code:    -36001,
	}

	ErrOutcomeNotFound = JsonRpc2Error{
		Message: "transaction outcome not found",
		Code:    -36002,
	}

	ErrInvalidPubKey = errors.New("invalid wallet public key")
	ErrInvalidTxHash = errors.New("invalid transaction hash")
)
