// Package txn implements the Solana legacy transaction wire format.
//
// A transaction on the wire is:
//
//	signature-count (compact-u16) || signatures (64 bytes each) || message
//
// where the message is the signable portion:
//
//	3 header bytes || address-count (compact-u16) || addresses (32 bytes each)
//	|| recent blockhash (32 bytes) || instruction-count (compact-u16)
//	|| instructions
//
// Addresses are grouped into four ordered partitions (signed-writable,
// signed-read-only, unsigned-writable, unsigned-read-only) and instructions
// reference them by their cumulative position across the partitions rather
// than by repeating 32-byte keys. The message bytes never depend on
// signature values, so every party that decodes and re-encodes the same
// logical transaction reproduces them byte for byte. That property is what
// makes multi-party partial signing work.
package txn

import (
	"github.com/btcsuite/btcutil/base58"
)

// Protocol limits, derived from the network packet-size budget.
const (
	// MaxSignatures bounds the signature vector.
	MaxSignatures = 18

	// MaxAddresses bounds the total signed address count declared in the
	// message header.
	MaxAddresses = 37

	// MaxAccountRefs bounds the address references of a single instruction.
	MaxAccountRefs = 1190

	// MaxInstructionData bounds the data payload of a single instruction.
	MaxInstructionData = 1192

	// MaxInstructions is defined by the protocol but intentionally not
	// checked during decode: rejecting here could refuse transactions that
	// deployed signers accept, so enforcement is left to the network.
	MaxInstructions = 397
)

// Address is a 32-byte account identifier. It carries no inherent signing
// role; the role comes from which partition of the transaction holds it.
type Address [32]byte

// Pubkey is an Address occupying a slot that must carry a signature. The two
// names are the same underlying identity; equality is over the 32 bytes.
type Pubkey = Address

// String returns the base58 form, the textual identity used everywhere keys
// are displayed or sorted.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Signature is a 64-byte ed25519 signature. Absence is represented as a nil
// *Signature in memory and as 64 zero bytes on the wire.
type Signature [64]byte

// String returns the base58 form.
func (s Signature) String() string {
	return base58.Encode(s[:])
}

// SigningSlot is a position in one of the signed partitions: a pubkey that
// must eventually be matched by a signature over the message bytes.
type SigningSlot struct {
	Pubkey    Pubkey
	Signature *Signature // nil until signed
}

// AccountRef is an instruction's reference to an address already present in
// one of the transaction's partitions, together with the permission flags
// implied by that partition.
type AccountRef struct {
	Address     Address
	IsSigned    bool
	IsReadWrite bool
}

// Instruction invokes a program with a list of account references and an
// opaque data payload. Instructions never introduce new addresses; every
// address here must resolve to a partition entry when encoding.
type Instruction struct {
	Program  Address
	Accounts []AccountRef
	Data     []byte
}

// Transaction is the decoded form of the wire format. The four partitions
// are ordered; an address's effective index is its position within the
// concatenation [signed-writable, signed-read-only, unsigned-writable,
// unsigned-read-only] and is recomputed on every encode, never stored.
//
// The first signed-writable slot is by convention the fee payer, and at
// least one signed-writable slot must exist.
type Transaction struct {
	SignedWritable   []SigningSlot
	SignedReadOnly   []SigningSlot
	UnsignedWritable []Address
	UnsignedReadOnly []Address

	// RecentBlockhash is nil when absent; absence is 32 zero bytes on the
	// wire.
	RecentBlockhash *[32]byte

	Instructions []Instruction
}

// FeePayer returns the pubkey of the first signed-writable slot.
func (tx *Transaction) FeePayer() (Pubkey, bool) {
	if len(tx.SignedWritable) == 0 {
		return Pubkey{}, false
	}
	return tx.SignedWritable[0].Pubkey, true
}
