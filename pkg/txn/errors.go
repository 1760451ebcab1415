// Package txn error types.
//
// Decode has exactly two failure kinds and they must never be conflated:
// a DecodeError is fatal (the input is malformed, discard it), while
// ErrIncomplete means the stream ended mid-field and the caller should
// retry the same decode once more bytes have been appended to the buffer.
package txn

import (
	"errors"
	"fmt"
)

// ErrIncomplete reports that the input ended before a field could be fully
// read. It deliberately carries no message: it is a suspension signal, not a
// diagnosis. Match it with errors.Is.
var ErrIncomplete = errors.New("transaction data incomplete")

// DecodeError is a fatal decode failure: the structure is malformed (a count
// exceeds a protocol limit, an instruction references an index that does not
// resolve, a signature's bytes are not canonical). The input should be
// discarded, not retried.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("transaction decode: %s", e.Message)
}

// EncodeError is a fatal encode failure. For a Transaction produced by this
// package's own decode these are unreachable, but the signing layer can in
// principle hand over a transaction with a dangling reference, so every
// resolution is still checked.
type EncodeError struct {
	Message string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("transaction encode: %s", e.Message)
}

func decodeErrorf(format string, args ...interface{}) *DecodeError {
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}

func encodeErrorf(format string, args ...interface{}) *EncodeError {
	return &EncodeError{Message: fmt.Sprintf(format, args...)}
}
