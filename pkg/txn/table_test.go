package txn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableFixture() *Transaction {
	return &Transaction{
		SignedWritable: []SigningSlot{
			{Pubkey: testAddress(1)},
			{Pubkey: testAddress(2)},
		},
		SignedReadOnly: []SigningSlot{
			{Pubkey: testAddress(3)},
		},
		UnsignedWritable: []Address{testAddress(4)},
		UnsignedReadOnly: []Address{testAddress(5)},
	}
}

func TestAddressAtIndexFlags(t *testing.T) {
	tx := &Transaction{
		SignedWritable: []SigningSlot{
			{Pubkey: testAddress(1)},
			{Pubkey: testAddress(2)},
		},
		UnsignedReadOnly: []Address{testAddress(3)},
	}

	ref, ok := tx.AddressAtIndex(0)
	require.True(t, ok)
	assert.Equal(t, testAddress(1), ref.Address)
	assert.True(t, ref.IsSigned)
	assert.True(t, ref.IsReadWrite)

	ref, ok = tx.AddressAtIndex(2)
	require.True(t, ok)
	assert.Equal(t, testAddress(3), ref.Address)
	assert.False(t, ref.IsSigned)
	assert.False(t, ref.IsReadWrite)

	_, ok = tx.AddressAtIndex(3)
	assert.False(t, ok)
	_, ok = tx.AddressAtIndex(-1)
	assert.False(t, ok)
}

func TestFindAddressIndexPartitionOrder(t *testing.T) {
	tx := tableFixture()

	for want, addr := range tx.addresses() {
		got, ok := tx.FindAddressIndex(addr)
		require.True(t, ok, "address %d", want)
		assert.Equal(t, want, got)
	}

	_, ok := tx.FindAddressIndex(testAddress(0x7F))
	assert.False(t, ok)
}

// TestFindAddressIndexFirstMatch pins the duplicate rule: the search returns
// the first occurrence in partition order regardless of the permission level
// the caller intended.
func TestFindAddressIndexFirstMatch(t *testing.T) {
	tx := tableFixture()
	tx.UnsignedWritable[0] = testAddress(1) // duplicate of the fee payer

	idx, ok := tx.FindAddressIndex(testAddress(1))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestAddressAtIndexInvertsFind(t *testing.T) {
	tx := tableFixture()
	flags := []struct{ signed, rw bool }{
		{true, true}, {true, true}, {true, false}, {false, true}, {false, false},
	}

	for i, want := range flags {
		ref, ok := tx.AddressAtIndex(i)
		require.True(t, ok)
		assert.Equal(t, want.signed, ref.IsSigned, "index %d", i)
		assert.Equal(t, want.rw, ref.IsReadWrite, "index %d", i)

		idx, ok := tx.FindAddressIndex(ref.Address)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}
