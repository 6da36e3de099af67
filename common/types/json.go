package types

import "errors"

var ErrJsonNotString = errors.New("json value not a string")

func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}

func trimLeftRightQuotation(input []byte) []byte {
	return input[1 : len(input)-1]
}
