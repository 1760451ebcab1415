package keys

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// seedLength is the output size of the mnemonic-to-seed stretch.
const seedLength = 64

// mnemonicRounds is the PBKDF2 iteration count fixed by the standard
// mnemonic-to-seed derivation.
const mnemonicRounds = 2048

// SeedFromMnemonic stretches a mnemonic phrase and passphrase into a 64-byte
// derivation seed: PBKDF2 over HMAC-SHA512, 2048 rounds, with the phrase as
// password and "mnemonic"+passphrase as salt. The phrase is not validated
// against any word list; any string an operator typed produces a seed, and
// the same inputs always produce the same seed.
func SeedFromMnemonic(phrase, passphrase string) []byte {
	return pbkdf2.Key([]byte(phrase), []byte("mnemonic"+passphrase), mnemonicRounds, seedLength, sha512.New)
}
