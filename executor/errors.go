package executor

// ExecutionError is a typed domain failure of a transaction. The numeric
// code is the canonical outcome replicated by every node; the description is
// diagnostic only. Codes must never be renumbered once deployed, consensus
// history depends on the encoding.
type ExecutionError struct {
	Code        uint8  `json:"code"`
	Description string `json:"description"`
}

func (e *ExecutionError) Error() string {
	return e.Description
}

// The closed set of domain failures. Handlers never return anything outside
// this set.
var (
	ErrWalletAlreadyExists  = &ExecutionError{Code: 0, Description: "Wallet already exists"}
	ErrSenderNotFound       = &ExecutionError{Code: 1, Description: "Sender does not exist"}
	ErrReceiverNotFound     = &ExecutionError{Code: 2, Description: "Receiver does not exist"}
	ErrInsufficientBalance  = &ExecutionError{Code: 3, Description: "Insufficient currency amount"}
	ErrSenderSameAsReceiver = &ExecutionError{Code: 4, Description: "Sender same as receiver"}
)

var errorTable = map[uint8]*ExecutionError{
	ErrWalletAlreadyExists.Code:  ErrWalletAlreadyExists,
	ErrSenderNotFound.Code:       ErrSenderNotFound,
	ErrReceiverNotFound.Code:     ErrReceiverNotFound,
	ErrInsufficientBalance.Code:  ErrInsufficientBalance,
	ErrSenderSameAsReceiver.Code: ErrSenderSameAsReceiver,
}

// ErrorByCode resolves a replicated outcome code back to its error value.
func ErrorByCode(code uint8) (*ExecutionError, bool) {
	e, ok := errorTable[code]
	return e, ok
}
