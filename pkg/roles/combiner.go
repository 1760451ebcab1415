package roles

import (
	"bytes"
	"fmt"

	"github.com/suffix-labs/solsign/pkg/txn"
)

// Combiner merges transactions signed in parallel by independent parties.
//
// The sequential hand-off workflow never needs this: each signer decodes the
// previous signer's output. Combining is for the parallel case, where every
// party signed its own copy of the original transaction and the partial
// results must be folded back together. All inputs must carry byte-identical
// message bytes; only the signature slots may differ.
type Combiner struct {
	txs []*txn.Transaction
}

// NewCombiner creates a Combiner over the decoded transactions.
func NewCombiner(txs []*txn.Transaction) *Combiner {
	return &Combiner{txs: txs}
}

// Combine folds all signatures into the first transaction and returns it.
// Two inputs disagreeing on message bytes, or carrying different signatures
// for the same slot, are a fatal CombineError.
func (c *Combiner) Combine() (*txn.Transaction, error) {
	if len(c.txs) == 0 {
		return nil, &CombineError{Message: "no transactions to combine"}
	}

	base := c.txs[0]
	baseMsg, err := txn.Message(base)
	if err != nil {
		return nil, &CombineError{Message: fmt.Sprintf("message bytes of base transaction: %v", err)}
	}

	for i, other := range c.txs[1:] {
		msg, err := txn.Message(other)
		if err != nil {
			return nil, &CombineError{Message: fmt.Sprintf("message bytes of transaction %d: %v", i+1, err)}
		}
		if !bytes.Equal(baseMsg, msg) {
			return nil, &CombineError{Message: fmt.Sprintf("transaction %d has different message bytes", i+1)}
		}
		if err := mergeSlots(base.SignedWritable, other.SignedWritable, i+1); err != nil {
			return nil, err
		}
		if err := mergeSlots(base.SignedReadOnly, other.SignedReadOnly, i+1); err != nil {
			return nil, err
		}
	}

	return base, nil
}

// mergeSlots copies signatures from src slots into unsigned dst slots.
// Identical message bytes guarantee the partitions line up positionally.
func mergeSlots(dst, src []txn.SigningSlot, srcPos int) error {
	for i := range dst {
		if src[i].Signature == nil {
			continue
		}
		if dst[i].Signature == nil {
			c := *src[i].Signature
			dst[i].Signature = &c
			continue
		}
		if *dst[i].Signature != *src[i].Signature {
			return &CombineError{Message: fmt.Sprintf(
				"transaction %d carries a conflicting signature for %s", srcPos, dst[i].Pubkey)}
		}
	}
	return nil
}
