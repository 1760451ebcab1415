// Package roles implements the actors of a multi-party signing workflow:
// the Signer applies available keys to a transaction's outstanding slots,
// the Combiner merges the partial results of parallel signers, and the
// SigExtractor pulls the fee-payer signature out of a completed transaction.
package roles

import (
	"sort"

	"github.com/suffix-labs/solsign/pkg/keys"
	"github.com/suffix-labs/solsign/pkg/txn"
)

// Signer applies signatures to a transaction's signing slots.
//
// Each independent holder of keys runs a Signer over the transaction bytes
// it received, fills whatever slots its keys cover, and forwards the
// re-encoded result. The transaction is complete once no slot is left
// unsigned.
type Signer struct {
	tx *txn.Transaction
}

// NewSigner creates a Signer operating on tx in place.
func NewSigner(tx *txn.Transaction) *Signer {
	return &Signer{tx: tx}
}

// NeededSignatures returns the distinct public keys across both signed
// partitions whose slot has no signature yet, sorted by base58 form and
// deduplicated. It has no side effects and may be called repeatedly.
func (s *Signer) NeededSignatures() []txn.Pubkey {
	var needed []txn.Pubkey
	collect := func(slots []txn.SigningSlot) {
		for _, slot := range slots {
			if slot.Signature == nil {
				needed = append(needed, slot.Pubkey)
			}
		}
	}
	collect(s.tx.SignedWritable)
	collect(s.tx.SignedReadOnly)

	sort.Slice(needed, func(i, j int) bool {
		return needed[i].String() < needed[j].String()
	})
	out := needed[:0]
	for i, pub := range needed {
		if i == 0 || pub != needed[i-1] {
			out = append(out, pub)
		}
	}
	return out
}

// Sign attaches sig to every slot in either signed partition whose pubkey
// equals pub, overwriting any previous value. One call can fill several
// slots when the same key legitimately occupies more than one role. Returns
// the number of slots filled.
func (s *Signer) Sign(pub txn.Pubkey, sig txn.Signature) int {
	filled := 0
	apply := func(slots []txn.SigningSlot) {
		for i := range slots {
			if slots[i].Pubkey == pub {
				c := sig
				slots[i].Signature = &c
				filled++
			}
		}
	}
	apply(s.tx.SignedWritable)
	apply(s.tx.SignedReadOnly)
	return filled
}

// SignWithKeyring signs the transaction's message bytes with every keyring
// key that matches an outstanding slot. Keys the ring does not hold are
// simply left outstanding; the only error is a failure to produce the
// message bytes themselves.
func (s *Signer) SignWithKeyring(ring *keys.Keyring) error {
	msg, err := txn.Message(s.tx)
	if err != nil {
		return err
	}
	for _, pub := range s.NeededSignatures() {
		kp, ok := ring.Lookup(pub)
		if !ok {
			continue
		}
		s.Sign(pub, kp.Sign(msg))
	}
	return nil
}

// Complete reports whether every signing slot holds a signature.
func (s *Signer) Complete() bool {
	return len(s.NeededSignatures()) == 0
}

// Finish returns the transaction, partially or fully signed.
func (s *Signer) Finish() *txn.Transaction {
	return s.tx
}
