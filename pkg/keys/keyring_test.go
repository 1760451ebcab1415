package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyringInsertionOrder(t *testing.T) {
	ring := NewKeyring()

	var added []*Keypair
	for _, fill := range []byte{5, 3, 9, 1} {
		kp, err := FromSeedBytes(testSeed(fill))
		require.NoError(t, err)
		ring.Add(kp)
		added = append(added, kp)
	}

	require.Equal(t, len(added), ring.Len())
	held := ring.Keypairs()
	for i := range added {
		assert.Equal(t, added[i].Pubkey(), held[i].Pubkey(), "position %d", i)
	}
}

func TestKeyringReAddKeepsPosition(t *testing.T) {
	ring := NewKeyring()
	first, err := FromSeedBytes(testSeed(2))
	require.NoError(t, err)
	second, err := FromSeedBytes(testSeed(4))
	require.NoError(t, err)

	ring.Add(first)
	ring.Add(second)
	ring.Add(first)

	require.Equal(t, 2, ring.Len())
	assert.Equal(t, first.Pubkey(), ring.Keypairs()[0].Pubkey())
}

func TestKeyringLookup(t *testing.T) {
	ring := NewKeyring()
	kp, err := FromSeedBytes(testSeed(8))
	require.NoError(t, err)
	ring.Add(kp)

	got, ok := ring.Lookup(kp.Pubkey())
	require.True(t, ok)
	assert.Equal(t, kp.Pubkey(), got.Pubkey())

	other, err := FromSeedBytes(testSeed(6))
	require.NoError(t, err)
	_, ok = ring.Lookup(other.Pubkey())
	assert.False(t, ok)
}
