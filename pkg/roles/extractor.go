package roles

import (
	"fmt"

	"github.com/suffix-labs/solsign/pkg/txn"
)

// SigExtractor pulls the externally meaningful output of a completed
// transaction: the fee-payer signature, the signature of the first
// signed-writable slot. That signature is the transaction's canonical
// identifier once every slot is signed.
type SigExtractor struct {
	tx *txn.Transaction
}

// NewSigExtractor creates a SigExtractor for tx.
func NewSigExtractor(tx *txn.Transaction) *SigExtractor {
	return &SigExtractor{tx: tx}
}

// Extract returns the fee-payer signature. It fails if the transaction has
// no signed-writable slot or if any signing slot is still outstanding.
func (e *SigExtractor) Extract() (txn.Signature, error) {
	if len(e.tx.SignedWritable) == 0 {
		return txn.Signature{}, &ExtractError{Message: "transaction has no signed-writable slot"}
	}
	if outstanding := NewSigner(e.tx).NeededSignatures(); len(outstanding) > 0 {
		return txn.Signature{}, &ExtractError{Message: fmt.Sprintf(
			"transaction is not fully signed (%d keys outstanding)", len(outstanding))}
	}
	return *e.tx.SignedWritable[0].Signature, nil
}
