package txn

// Compact-u16: a 16-bit count encoded in 1-3 bytes, 7 bits per byte with a
// 0x80 continuation bit, least-significant group first.

// appendCompactU16 appends the shortest encoding of v.
func appendCompactU16(dst []byte, v uint16) []byte {
	if v < 0x80 {
		return append(dst, byte(v))
	}
	if v < 0x4000 {
		return append(dst, byte(v&0x7F)|0x80, byte(v>>7))
	}
	return append(dst, byte(v&0x7F)|0x80, byte((v>>7)&0x7F)|0x80, byte(v>>14))
}

// readCompactU16 reads a compact-u16 from the cursor. Returns ErrIncomplete
// if the stream ends mid-value.
//
// The third byte is combined without masking its high bits, so a value whose
// third byte is >= 4 wraps when widened into the 16-bit result. This matches
// the deployed decoder bit for bit; round-trip is only guaranteed for values
// up to 16383 and callers rely on that exact behavior.
func readCompactU16(c *cursor) (uint16, error) {
	b0, err := c.readByte()
	if err != nil {
		return 0, err
	}
	v := uint16(b0 & 0x7F)
	if b0&0x80 == 0 {
		return v, nil
	}

	b1, err := c.readByte()
	if err != nil {
		return 0, err
	}
	v |= uint16(b1&0x7F) << 7
	if b1&0x80 == 0 {
		return v, nil
	}

	b2, err := c.readByte()
	if err != nil {
		return 0, err
	}
	v |= uint16(b2) << 14
	return v, nil
}
