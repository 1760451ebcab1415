package roles

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/solsign/pkg/keys"
	"github.com/suffix-labs/solsign/pkg/txn"
)

// encodeUnsigned builds the wire bytes a coordinator would hand to the first
// signer: fully formed transaction, every signature slot zeroed.
func encodeUnsigned(t *testing.T, tx *txn.Transaction) []byte {
	t.Helper()
	data, err := txn.Encode(tx)
	require.NoError(t, err)
	return data
}

// TestSingleSignerEndToEnd walks the whole cycle for a one-signature
// transaction: decode, sign with the matching key, re-encode, and verify the
// extracted fee-payer signature against the message bytes.
func TestSingleSignerEndToEnd(t *testing.T) {
	feePayer := mustKeypair(t, 0x11)
	blockhash := [32]byte{0xAB}

	wire := encodeUnsigned(t, &txn.Transaction{
		SignedWritable:  []txn.SigningSlot{{Pubkey: feePayer.Pubkey()}},
		RecentBlockhash: &blockhash,
	})

	tx, err := txn.Decode(wire)
	require.NoError(t, err)

	ring := keys.NewKeyring()
	ring.Add(feePayer)

	signer := NewSigner(tx)
	require.NoError(t, signer.SignWithKeyring(ring))
	require.True(t, signer.Complete())

	// Round-trip through the wire once more before extracting, the way a
	// receiving party would see it.
	signedWire, err := txn.Encode(signer.Finish())
	require.NoError(t, err)
	final, err := txn.Decode(signedWire)
	require.NoError(t, err)

	sig, err := NewSigExtractor(final).Extract()
	require.NoError(t, err)

	msg, err := txn.Message(final)
	require.NoError(t, err)
	pub := feePayer.Pubkey()
	assert.True(t, ed25519.Verify(pub[:], msg, sig[:]),
		"fee payer signature must verify against the message bytes")
}

// TestTwoPartyHandOff exercises the sequential multi-party workflow: party A
// signs its key and forwards the encoding, party B finishes the job. The
// message bytes both parties sign must be identical or the signatures would
// not co-verify.
func TestTwoPartyHandOff(t *testing.T) {
	partyA := mustKeypair(t, 0x21)
	partyB := mustKeypair(t, 0x22)
	blockhash := [32]byte{0xCD}

	wire := encodeUnsigned(t, &txn.Transaction{
		SignedWritable: []txn.SigningSlot{
			{Pubkey: partyA.Pubkey()},
			{Pubkey: partyB.Pubkey()},
		},
		RecentBlockhash: &blockhash,
	})

	// Party A: signs only its own key.
	txA, err := txn.Decode(wire)
	require.NoError(t, err)
	ringA := keys.NewKeyring()
	ringA.Add(partyA)
	signerA := NewSigner(txA)
	require.NoError(t, signerA.SignWithKeyring(ringA))
	require.False(t, signerA.Complete())

	outstanding := signerA.NeededSignatures()
	require.Len(t, outstanding, 1)
	assert.Equal(t, partyB.Pubkey(), outstanding[0])

	handOff, err := txn.Encode(signerA.Finish())
	require.NoError(t, err)

	// Party B: decodes A's output and adds the remaining signature.
	txB, err := txn.Decode(handOff)
	require.NoError(t, err)
	require.NotNil(t, txB.SignedWritable[0].Signature, "A's signature must survive the hand-off")

	ringB := keys.NewKeyring()
	ringB.Add(partyB)
	signerB := NewSigner(txB)
	require.NoError(t, signerB.SignWithKeyring(ringB))
	require.True(t, signerB.Complete())
	assert.Empty(t, signerB.NeededSignatures())

	msg, err := txn.Message(txB)
	require.NoError(t, err)
	for i, kp := range []*keys.Keypair{partyA, partyB} {
		pub := kp.Pubkey()
		sig := txB.SignedWritable[i].Signature
		require.NotNil(t, sig)
		assert.True(t, ed25519.Verify(pub[:], msg, sig[:]), "slot %d", i)
	}
}

// TestCombinerMergesParallelSigners folds two independently signed copies of
// the same transaction back together.
func TestCombinerMergesParallelSigners(t *testing.T) {
	partyA := mustKeypair(t, 0x31)
	partyB := mustKeypair(t, 0x32)
	blockhash := [32]byte{0xEF}

	build := func() *txn.Transaction {
		wire := encodeUnsigned(t, &txn.Transaction{
			SignedWritable: []txn.SigningSlot{
				{Pubkey: partyA.Pubkey()},
				{Pubkey: partyB.Pubkey()},
			},
			RecentBlockhash: &blockhash,
		})
		tx, err := txn.Decode(wire)
		require.NoError(t, err)
		return tx
	}

	txA := build()
	ringA := keys.NewKeyring()
	ringA.Add(partyA)
	require.NoError(t, NewSigner(txA).SignWithKeyring(ringA))

	txB := build()
	ringB := keys.NewKeyring()
	ringB.Add(partyB)
	require.NoError(t, NewSigner(txB).SignWithKeyring(ringB))

	combined, err := NewCombiner([]*txn.Transaction{txA, txB}).Combine()
	require.NoError(t, err)
	assert.True(t, NewSigner(combined).Complete())

	sig, err := NewSigExtractor(combined).Extract()
	require.NoError(t, err)
	msg, err := txn.Message(combined)
	require.NoError(t, err)
	pub := partyA.Pubkey()
	assert.True(t, ed25519.Verify(pub[:], msg, sig[:]))
}

func TestCombinerRejectsConflictingSignatures(t *testing.T) {
	a := mustKeypair(t, 0x41).Pubkey()

	build := func(fill byte) *txn.Transaction {
		return &txn.Transaction{
			SignedWritable: []txn.SigningSlot{{Pubkey: a, Signature: placeholderSig(fill)}},
		}
	}

	_, err := NewCombiner([]*txn.Transaction{build(1), build(2)}).Combine()
	var cErr *CombineError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Message, "conflicting signature")
}

func TestCombinerRejectsDifferentMessages(t *testing.T) {
	txA := &txn.Transaction{
		SignedWritable: []txn.SigningSlot{{Pubkey: mustKeypair(t, 0x51).Pubkey()}},
	}
	txB := &txn.Transaction{
		SignedWritable: []txn.SigningSlot{{Pubkey: mustKeypair(t, 0x52).Pubkey()}},
	}

	_, err := NewCombiner([]*txn.Transaction{txA, txB}).Combine()
	var cErr *CombineError
	require.ErrorAs(t, err, &cErr)
	assert.Contains(t, cErr.Message, "different message bytes")
}

func TestCombinerRequiresInput(t *testing.T) {
	_, err := NewCombiner(nil).Combine()
	var cErr *CombineError
	require.ErrorAs(t, err, &cErr)
}
