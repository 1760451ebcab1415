// Package keys implements ed25519 keypairs for transaction signing, the
// mnemonic-to-seed and hierarchical derivation used to obtain them, and an
// ordered keyring holding the keys available to a signing session.
package keys

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/suffix-labs/solsign/pkg/txn"
)

// Keypair wraps an ed25519 private key.
type Keypair struct {
	priv ed25519.PrivateKey
}

// FromSeedBytes builds a keypair from a 32-byte ed25519 seed.
func FromSeedBytes(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &Keypair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// FromSecretBytes accepts either a 32-byte seed or the 64-byte
// seed-plus-pubkey form that Solana CLI key files contain. For the 64-byte
// form the trailing public key must match the one derived from the seed.
func FromSecretBytes(secret []byte) (*Keypair, error) {
	switch len(secret) {
	case ed25519.SeedSize:
		return FromSeedBytes(secret)
	case ed25519.PrivateKeySize:
		kp, err := FromSeedBytes(secret[:ed25519.SeedSize])
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(kp.priv[ed25519.SeedSize:], secret[ed25519.SeedSize:]) {
			return nil, fmt.Errorf("secret key public half does not match its seed")
		}
		return kp, nil
	default:
		return nil, fmt.Errorf("secret key must be %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(secret))
	}
}

// RootKeypair interprets the first 32 bytes of a derivation seed directly as
// an ed25519 seed. This is the "no derivation path" key an operator gets
// from a mnemonic alone.
func RootKeypair(seed []byte) (*Keypair, error) {
	if len(seed) < ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be at least %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return FromSeedBytes(seed[:ed25519.SeedSize])
}

// Pubkey returns the 32-byte public key.
func (k *Keypair) Pubkey() txn.Pubkey {
	var pub txn.Pubkey
	copy(pub[:], k.priv.Public().(ed25519.PublicKey))
	return pub
}

// Sign signs msg and returns the 64-byte signature.
func (k *Keypair) Sign(msg []byte) txn.Signature {
	var sig txn.Signature
	copy(sig[:], ed25519.Sign(k.priv, msg))
	return sig
}

// String returns the base58 public key, never key material.
func (k *Keypair) String() string {
	return k.Pubkey().String()
}
