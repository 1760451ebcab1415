package txn

// Address table lookups. The effective index of an address is its cumulative
// position across the partition concatenation [signed-writable,
// signed-read-only, unsigned-writable, unsigned-read-only].

// FindAddressIndex returns the effective index of the first occurrence of
// addr, searching the partitions in order. The search ignores whatever
// permission level the caller had in mind: a transaction that legitimately
// lists an address in one partition resolves safely, and duplicate-address
// transactions are a protocol-level error the execution layer rejects.
func (tx *Transaction) FindAddressIndex(addr Address) (int, bool) {
	i := 0
	for _, slot := range tx.SignedWritable {
		if slot.Pubkey == addr {
			return i, true
		}
		i++
	}
	for _, slot := range tx.SignedReadOnly {
		if slot.Pubkey == addr {
			return i, true
		}
		i++
	}
	for _, a := range tx.UnsignedWritable {
		if a == addr {
			return i, true
		}
		i++
	}
	for _, a := range tx.UnsignedReadOnly {
		if a == addr {
			return i, true
		}
		i++
	}
	return 0, false
}

// AddressAtIndex is the inverse of FindAddressIndex: it resolves an
// effective index to the address at that position together with the
// permission flags implied by its partition.
func (tx *Transaction) AddressAtIndex(index int) (AccountRef, bool) {
	if index < 0 {
		return AccountRef{}, false
	}
	if index < len(tx.SignedWritable) {
		return AccountRef{Address: tx.SignedWritable[index].Pubkey, IsSigned: true, IsReadWrite: true}, true
	}
	index -= len(tx.SignedWritable)
	if index < len(tx.SignedReadOnly) {
		return AccountRef{Address: tx.SignedReadOnly[index].Pubkey, IsSigned: true, IsReadWrite: false}, true
	}
	index -= len(tx.SignedReadOnly)
	if index < len(tx.UnsignedWritable) {
		return AccountRef{Address: tx.UnsignedWritable[index], IsSigned: false, IsReadWrite: true}, true
	}
	index -= len(tx.UnsignedWritable)
	if index < len(tx.UnsignedReadOnly) {
		return AccountRef{Address: tx.UnsignedReadOnly[index], IsSigned: false, IsReadWrite: false}, true
	}
	return AccountRef{}, false
}

// addresses returns the partition concatenation in effective-index order.
func (tx *Transaction) addresses() []Address {
	out := make([]Address, 0,
		len(tx.SignedWritable)+len(tx.SignedReadOnly)+len(tx.UnsignedWritable)+len(tx.UnsignedReadOnly))
	for _, slot := range tx.SignedWritable {
		out = append(out, slot.Pubkey)
	}
	for _, slot := range tx.SignedReadOnly {
		out = append(out, slot.Pubkey)
	}
	out = append(out, tx.UnsignedWritable...)
	out = append(out, tx.UnsignedReadOnly...)
	return out
}
