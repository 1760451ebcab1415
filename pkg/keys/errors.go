package keys

import "fmt"

// DerivationError is returned when a seed cannot produce a keypair for a
// given path. It is fatal for that derivation attempt only; keys already
// derived remain valid.
type DerivationError struct {
	Path    string // path in m/i'/j' form, empty when the seed itself is bad
	Message string
	Cause   error
}

func (e *DerivationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("key derivation: %s", e.Message)
	}
	return fmt.Sprintf("key derivation at %s: %s", e.Path, e.Message)
}

func (e *DerivationError) Unwrap() error {
	return e.Cause
}
