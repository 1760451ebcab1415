package keys

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"strconv"
	"strings"
)

// Hierarchical hardened-only derivation over an ed25519 seed, following the
// BIP32-style construction for this curve: the master key is
// HMAC-SHA512("ed25519 seed", seed) and each child is
// HMAC-SHA512(chainCode, 0x00 || key || ser32(index | hardenedOffset)).
// ed25519 admits no non-hardened derivation, so every path component must be
// hardened.

const hardenedOffset uint32 = 0x80000000

const masterHMACKey = "ed25519 seed"

// Path is a sequence of derivation indices without the hardened offset
// applied; every component is derived hardened.
type Path []uint32

// candidateCount is how many account keys DeriveCandidates produces.
const candidateCount = 10

// String renders the path in the conventional m/i'/j'/... form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, idx := range p {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(idx), 10))
		b.WriteByte('\'')
	}
	return b.String()
}

// ParsePath parses a path of the form m/44'/501'/0'/0'. Every component must
// carry the hardened marker (' or h).
func ParsePath(s string) (Path, error) {
	parts := strings.Split(s, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, &DerivationError{Path: s, Message: "path must start with \"m\""}
	}
	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		if part == "" {
			return nil, &DerivationError{Path: s, Message: "empty path component"}
		}
		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") {
			hardened = true
			part = part[:len(part)-1]
		}
		if !hardened {
			return nil, &DerivationError{Path: s, Message: "ed25519 derivation requires hardened components"}
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil || uint32(idx) >= hardenedOffset {
			return nil, &DerivationError{Path: s, Message: "invalid path component " + strconv.Quote(part)}
		}
		path = append(path, uint32(idx))
	}
	return path, nil
}

// Derive derives the keypair at path from a mnemonic seed. Pure: the same
// seed and path always yield the same keypair, and a failed attempt never
// affects keys derived earlier.
func Derive(seed []byte, path Path) (*Keypair, error) {
	if len(seed) < ed25519.SeedSize {
		return nil, &DerivationError{Path: path.String(), Message: "seed shorter than 32 bytes"}
	}

	mac := hmac.New(sha512.New, []byte(masterHMACKey))
	mac.Write(seed)
	sum := mac.Sum(nil)
	key, chain := sum[:32], sum[32:]

	for _, idx := range path {
		var ser [4]byte
		binary.BigEndian.PutUint32(ser[:], idx|hardenedOffset)

		mac := hmac.New(sha512.New, chain)
		mac.Write([]byte{0x00})
		mac.Write(key)
		mac.Write(ser[:])
		sum := mac.Sum(nil)
		key, chain = sum[:32], sum[32:]
	}

	return FromSeedBytes(key)
}

// DeriveCandidates derives the fixed set of account keypairs at
// m/44'/501'/0'/i' for i in 0..9. Operators pick the key they recognize
// from this set, so no derivation choice has to be committed in advance.
func DeriveCandidates(seed []byte) ([]*Keypair, error) {
	out := make([]*Keypair, 0, candidateCount)
	for i := uint32(0); i < candidateCount; i++ {
		kp, err := Derive(seed, Path{44, 501, 0, i})
		if err != nil {
			return nil, err
		}
		out = append(out, kp)
	}
	return out, nil
}
