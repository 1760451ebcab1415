// Package api is the entry point for callers of the signing core: the
// surrounding tooling (prompt loop, key-file loading, base64 framing) hands
// in raw transaction bytes and a keyring and gets back either the fee-payer
// signature or a partially signed transaction to forward to the next party.
//
// Every function takes and returns raw wire bytes; callers that want to keep
// a decoded Transaction around can use pkg/txn and pkg/roles directly.
package api

import (
	"fmt"

	"github.com/suffix-labs/solsign/pkg/keys"
	"github.com/suffix-labs/solsign/pkg/roles"
	"github.com/suffix-labs/solsign/pkg/txn"
)

// SignResult is the outcome of one signing cycle.
type SignResult struct {
	// Complete is true when every signing slot carries a signature.
	Complete bool

	// Signature is the fee-payer signature; valid only when Complete.
	Signature txn.Signature

	// EncodedTransaction is the re-encoded transaction with all valid
	// partial signatures preserved, suitable for hand-off to another
	// signer when Complete is false.
	EncodedTransaction []byte

	// Outstanding lists the public keys still needing a signature, sorted
	// by base58 form. Empty when Complete.
	Outstanding []txn.Pubkey
}

// DecodeTransaction parses raw transaction bytes. The error is either a
// fatal *txn.DecodeError or txn.ErrIncomplete (more bytes needed).
func DecodeTransaction(data []byte) (*txn.Transaction, error) {
	return txn.Decode(data)
}

// EncodeTransaction serializes a transaction back to wire bytes.
func EncodeTransaction(tx *txn.Transaction) ([]byte, error) {
	return txn.Encode(tx)
}

// MessageBytes returns the signable, signature-independent serialization of
// the transaction.
func MessageBytes(tx *txn.Transaction) ([]byte, error) {
	return txn.Message(tx)
}

// NeededSignatures decodes txBytes and lists the public keys whose slots
// have no signature, sorted by base58 form and deduplicated.
func NeededSignatures(txBytes []byte) ([]txn.Pubkey, error) {
	tx, err := txn.Decode(txBytes)
	if err != nil {
		return nil, err
	}
	return roles.NewSigner(tx).NeededSignatures(), nil
}

// SignTransaction decodes txBytes, applies every matching key from the
// keyring, and reports the outcome. The returned SignResult always carries
// the re-encoded transaction; the fee-payer signature is set only when the
// transaction ended up fully signed.
func SignTransaction(txBytes []byte, ring *keys.Keyring) (*SignResult, error) {
	tx, err := txn.Decode(txBytes)
	if err != nil {
		return nil, err
	}

	signer := roles.NewSigner(tx)
	if err := signer.SignWithKeyring(ring); err != nil {
		return nil, fmt.Errorf("signing failed: %w", err)
	}
	tx = signer.Finish()

	encoded, err := txn.Encode(tx)
	if err != nil {
		return nil, fmt.Errorf("re-encoding signed transaction: %w", err)
	}

	result := &SignResult{EncodedTransaction: encoded}
	if outstanding := signer.NeededSignatures(); len(outstanding) > 0 {
		result.Outstanding = outstanding
		return result, nil
	}

	sig, err := roles.NewSigExtractor(tx).Extract()
	if err != nil {
		return nil, err
	}
	result.Complete = true
	result.Signature = sig
	return result, nil
}

// Combine merges the encodings produced by parallel signers of the same
// logical transaction and returns the combined encoding.
func Combine(encoded [][]byte) ([]byte, error) {
	txs := make([]*txn.Transaction, len(encoded))
	for i, data := range encoded {
		tx, err := txn.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs[i] = tx
	}

	combined, err := roles.NewCombiner(txs).Combine()
	if err != nil {
		return nil, err
	}
	return txn.Encode(combined)
}

// ExtractSignature decodes a fully signed transaction and returns its
// fee-payer signature.
func ExtractSignature(txBytes []byte) (txn.Signature, error) {
	tx, err := txn.Decode(txBytes)
	if err != nil {
		return txn.Signature{}, err
	}
	return roles.NewSigExtractor(tx).Extract()
}
