package keys

import "github.com/suffix-labs/solsign/pkg/txn"

// Keyring is the ordered collection of keypairs available to a signing
// session, keyed by base58 public key. Insertion order is preserved so that
// key listings are stable across runs: keys appear in the order the operator
// supplied them. A Keyring is an explicit value passed into the signing
// engine, never ambient state.
type Keyring struct {
	order []string
	byKey map[string]*Keypair
}

// NewKeyring returns an empty keyring.
func NewKeyring() *Keyring {
	return &Keyring{byKey: make(map[string]*Keypair)}
}

// Add inserts a keypair. Re-adding a key the ring already holds keeps its
// original position.
func (r *Keyring) Add(kp *Keypair) {
	id := kp.Pubkey().String()
	if _, ok := r.byKey[id]; ok {
		return
	}
	r.byKey[id] = kp
	r.order = append(r.order, id)
}

// Lookup returns the keypair for a public key, if held.
func (r *Keyring) Lookup(pub txn.Pubkey) (*Keypair, bool) {
	kp, ok := r.byKey[pub.String()]
	return kp, ok
}

// Keypairs returns the held keypairs in insertion order.
func (r *Keyring) Keypairs() []*Keypair {
	out := make([]*Keypair, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byKey[id])
	}
	return out
}

// Len reports the number of keypairs held.
func (r *Keyring) Len() int {
	return len(r.order)
}
