package txn

// cursor is a pull-based sequential reader over an in-memory byte buffer.
// Running past the end yields ErrIncomplete; the caller is then expected to
// retry the whole decode against a longer buffer, which is safe because
// decode allocates a fresh Transaction and has no side effects on failure.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) readByte() (byte, error) {
	if c.off >= len(c.buf) {
		return 0, ErrIncomplete
	}
	b := c.buf[c.off]
	c.off++
	return b, nil
}

func (c *cursor) read(n int) ([]byte, error) {
	if len(c.buf)-c.off < n {
		return nil, ErrIncomplete
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Decode parses a raw transaction byte stream.
//
// Outcomes are three-way: a Transaction, a fatal *DecodeError (malformed
// input, do not retry), or ErrIncomplete (the stream ended mid-field; append
// more bytes and decode again from the start of the same buffer). Trailing
// bytes beyond one full transaction are ignored.
func Decode(data []byte) (*Transaction, error) {
	c := &cursor{buf: data}
	tx := &Transaction{}

	sigCount, err := readCompactU16(c)
	if err != nil {
		return nil, err
	}
	if sigCount > MaxSignatures {
		return nil, decodeErrorf("signature count %d exceeds maximum %d", sigCount, MaxSignatures)
	}

	sigs := make([]*Signature, sigCount)
	for i := range sigs {
		sigs[i], err = readSignature(c, i)
		if err != nil {
			return nil, err
		}
	}

	header, err := c.read(3)
	if err != nil {
		return nil, err
	}
	totalSigned := int(header[0])
	signedReadOnly := int(header[1])
	unsignedReadOnly := int(header[2])

	if totalSigned > MaxAddresses {
		return nil, decodeErrorf("signed address count %d exceeds maximum %d", totalSigned, MaxAddresses)
	}
	if int(sigCount) > totalSigned {
		return nil, decodeErrorf("signature count %d exceeds signed address count %d", sigCount, totalSigned)
	}
	if signedReadOnly > totalSigned {
		return nil, decodeErrorf("signed read-only count %d exceeds signed address count %d", signedReadOnly, totalSigned)
	}
	signedWritable := totalSigned - signedReadOnly
	if signedWritable == 0 {
		return nil, decodeErrorf("no signed-writable addresses (fee payer required)")
	}

	addrCount, err := readCompactU16(c)
	if err != nil {
		return nil, err
	}
	if int(addrCount) < totalSigned+unsignedReadOnly {
		return nil, decodeErrorf("address count %d less than declared signed %d + unsigned read-only %d",
			addrCount, totalSigned, unsignedReadOnly)
	}
	unsignedWritable := int(addrCount) - totalSigned - unsignedReadOnly

	// Populate the four partitions in wire order, pairing decoded
	// signatures with the signed slots by position.
	slot := 0
	nextSig := func() *Signature {
		var s *Signature
		if slot < len(sigs) {
			s = sigs[slot]
		}
		slot++
		return s
	}

	tx.SignedWritable = make([]SigningSlot, 0, signedWritable)
	for i := 0; i < signedWritable; i++ {
		addr, err := readAddress(c)
		if err != nil {
			return nil, err
		}
		tx.SignedWritable = append(tx.SignedWritable, SigningSlot{Pubkey: addr, Signature: nextSig()})
	}
	tx.SignedReadOnly = make([]SigningSlot, 0, signedReadOnly)
	for i := 0; i < signedReadOnly; i++ {
		addr, err := readAddress(c)
		if err != nil {
			return nil, err
		}
		tx.SignedReadOnly = append(tx.SignedReadOnly, SigningSlot{Pubkey: addr, Signature: nextSig()})
	}
	tx.UnsignedWritable = make([]Address, 0, unsignedWritable)
	for i := 0; i < unsignedWritable; i++ {
		addr, err := readAddress(c)
		if err != nil {
			return nil, err
		}
		tx.UnsignedWritable = append(tx.UnsignedWritable, addr)
	}
	tx.UnsignedReadOnly = make([]Address, 0, unsignedReadOnly)
	for i := 0; i < unsignedReadOnly; i++ {
		addr, err := readAddress(c)
		if err != nil {
			return nil, err
		}
		tx.UnsignedReadOnly = append(tx.UnsignedReadOnly, addr)
	}

	blockhash, err := c.read(32)
	if err != nil {
		return nil, err
	}
	if !allZero(blockhash) {
		var bh [32]byte
		copy(bh[:], blockhash)
		tx.RecentBlockhash = &bh
	}

	instrCount, err := readCompactU16(c)
	if err != nil {
		return nil, err
	}
	// The protocol's instruction-count bound (MaxInstructions) is
	// deliberately not checked here; see the constant's doc comment.
	tx.Instructions = make([]Instruction, 0, instrCount)
	for i := 0; i < int(instrCount); i++ {
		instr, err := readInstruction(c, tx, i)
		if err != nil {
			return nil, err
		}
		tx.Instructions = append(tx.Instructions, instr)
	}

	return tx, nil
}

// readSignature reads one 64-byte signature slot. All-zero bytes decode to
// absent. Anything else must be a canonically encoded ed25519 signature: the
// scalar half's top three bits are clear for every value below the group
// order, so a set bit there marks bytes that can never verify.
func readSignature(c *cursor, pos int) (*Signature, error) {
	raw, err := c.read(64)
	if err != nil {
		return nil, err
	}
	if allZero(raw) {
		return nil, nil
	}
	if raw[63]&0xE0 != 0 {
		return nil, decodeErrorf("signature %d is not a canonical ed25519 signature", pos)
	}
	var sig Signature
	copy(sig[:], raw)
	return &sig, nil
}

func readAddress(c *cursor) (Address, error) {
	raw, err := c.read(32)
	if err != nil {
		return Address{}, err
	}
	var addr Address
	copy(addr[:], raw)
	return addr, nil
}

// readInstruction reads one instruction, resolving every 1-byte address
// index through the transaction's partitions. An unresolved index is fatal
// and names the instruction's position.
func readInstruction(c *cursor, tx *Transaction, pos int) (Instruction, error) {
	var instr Instruction

	programIdx, err := c.readByte()
	if err != nil {
		return instr, err
	}
	program, ok := tx.AddressAtIndex(int(programIdx))
	if !ok {
		return instr, decodeErrorf("instruction %d: program address index %d not found", pos, programIdx)
	}
	instr.Program = program.Address

	refCount, err := readCompactU16(c)
	if err != nil {
		return instr, err
	}
	if refCount > MaxAccountRefs {
		return instr, decodeErrorf("instruction %d: account reference count %d exceeds maximum %d",
			pos, refCount, MaxAccountRefs)
	}
	instr.Accounts = make([]AccountRef, 0, refCount)
	for j := 0; j < int(refCount); j++ {
		idx, err := c.readByte()
		if err != nil {
			return instr, err
		}
		ref, ok := tx.AddressAtIndex(int(idx))
		if !ok {
			return instr, decodeErrorf("instruction %d: account address index %d not found", pos, idx)
		}
		instr.Accounts = append(instr.Accounts, ref)
	}

	dataLen, err := readCompactU16(c)
	if err != nil {
		return instr, err
	}
	if dataLen > MaxInstructionData {
		return instr, decodeErrorf("instruction %d: data length %d exceeds maximum %d",
			pos, dataLen, MaxInstructionData)
	}
	data, err := c.read(int(dataLen))
	if err != nil {
		return instr, err
	}
	instr.Data = append([]byte(nil), data...)

	return instr, nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
