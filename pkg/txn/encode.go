package txn

import "bytes"

// Message writes the signable payload of the transaction: everything except
// the signature vector. It is deterministic and position-based; signature
// values never influence it, which is what lets independent signers produce
// byte-identical message bytes from the same logical transaction.
func Message(tx *Transaction) ([]byte, error) {
	buf := new(bytes.Buffer)

	totalSigned := len(tx.SignedWritable) + len(tx.SignedReadOnly)
	totalAddrs := totalSigned + len(tx.UnsignedWritable) + len(tx.UnsignedReadOnly)
	if totalSigned > 0xFF || len(tx.UnsignedReadOnly) > 0xFF {
		return nil, encodeErrorf("header counts do not fit in one byte (%d signed, %d unsigned read-only)",
			totalSigned, len(tx.UnsignedReadOnly))
	}
	buf.WriteByte(byte(totalSigned))
	buf.WriteByte(byte(len(tx.SignedReadOnly)))
	buf.WriteByte(byte(len(tx.UnsignedReadOnly)))

	buf.Write(appendCompactU16(nil, uint16(totalAddrs)))
	for _, addr := range tx.addresses() {
		buf.Write(addr[:])
	}

	var blockhash [32]byte
	if tx.RecentBlockhash != nil {
		blockhash = *tx.RecentBlockhash
	}
	buf.Write(blockhash[:])

	buf.Write(appendCompactU16(nil, uint16(len(tx.Instructions))))
	for i := range tx.Instructions {
		if err := writeInstruction(buf, tx, i); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Encode writes the full wire form: the signature vector followed by the
// message. Absent signatures are written as 64 zero bytes so another party
// can identify the slots still needing a signature.
func Encode(tx *Transaction) ([]byte, error) {
	msg, err := Message(tx)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	sigCount := len(tx.SignedWritable) + len(tx.SignedReadOnly)
	buf.Write(appendCompactU16(nil, uint16(sigCount)))

	writeSlot := func(slot SigningSlot) {
		var sig Signature
		if slot.Signature != nil {
			sig = *slot.Signature
		}
		buf.Write(sig[:])
	}
	for _, slot := range tx.SignedWritable {
		writeSlot(slot)
	}
	for _, slot := range tx.SignedReadOnly {
		writeSlot(slot)
	}

	buf.Write(msg)
	return buf.Bytes(), nil
}

// writeInstruction encodes instruction i, resolving each address back to its
// current effective index. A dangling reference is unreachable for
// transactions built by Decode but is still checked: the signing layer can
// in principle be extended to rewrite transactions.
func writeInstruction(buf *bytes.Buffer, tx *Transaction, i int) error {
	instr := &tx.Instructions[i]

	idx, err := resolveIndex(tx, instr.Program, i)
	if err != nil {
		return err
	}
	buf.WriteByte(idx)

	if len(instr.Accounts) > MaxAccountRefs {
		return encodeErrorf("instruction %d: %d account references exceed maximum %d",
			i, len(instr.Accounts), MaxAccountRefs)
	}
	buf.Write(appendCompactU16(nil, uint16(len(instr.Accounts))))
	for _, ref := range instr.Accounts {
		idx, err := resolveIndex(tx, ref.Address, i)
		if err != nil {
			return err
		}
		buf.WriteByte(idx)
	}

	if len(instr.Data) > MaxInstructionData {
		return encodeErrorf("instruction %d: %d data bytes exceed maximum %d",
			i, len(instr.Data), MaxInstructionData)
	}
	buf.Write(appendCompactU16(nil, uint16(len(instr.Data))))
	buf.Write(instr.Data)

	return nil
}

func resolveIndex(tx *Transaction, addr Address, instrPos int) (byte, error) {
	idx, ok := tx.FindAddressIndex(addr)
	if !ok {
		return 0, encodeErrorf("instruction %d: address %s not present in the transaction", instrPos, addr)
	}
	if idx > 0xFF {
		return 0, encodeErrorf("instruction %d: address index %d does not fit in one byte", instrPos, idx)
	}
	return byte(idx), nil
}
