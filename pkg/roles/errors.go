package roles

import "fmt"

// CombineError is returned when transactions cannot be merged: they encode
// different messages or carry conflicting signatures for the same slot.
type CombineError struct {
	Message string
}

func (e *CombineError) Error() string {
	return fmt.Sprintf("combine: %s", e.Message)
}

// ExtractError is returned when the fee-payer signature cannot be extracted
// because the transaction is malformed or not yet fully signed.
type ExtractError struct {
	Message string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("signature extraction: %s", e.Message)
}
