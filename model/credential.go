// file: model/credential.go

package model

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"regexp"

	"golang.org/x/crypto/pbkdf2"

	"go-bank-ledger/common"
)

const (
	saltLength = 16
	hashLength = 32
	// kdfIterations makes every PIN guess expensive. A 6-digit PIN has only
	// a million possibilities, so the iteration count is the whole defense
	// against offline brute force of a leaked snapshot.
	kdfIterations = 10000
)

var pinPattern = regexp.MustCompile(`^[0-9]{6}$`)

// Credential is the salt plus derived hash representing a verifiable PIN.
// The plaintext PIN is never stored and cannot be recovered from this pair.
type Credential struct {
	Salt []byte
	Hash []byte
}

// NewCredential generates a fresh random salt and derives the hash for pin.
// pin must be exactly 6 ASCII digits.
func NewCredential(pin string) (Credential, error) {
	if !pinPattern.MatchString(pin) {
		return Credential{}, common.ErrInvalidPin
	}
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return Credential{}, fmt.Errorf("could not generate salt: %w", err)
	}
	return Credential{Salt: salt, Hash: derivePin(pin, salt)}, nil
}

// Verify recomputes the derivation for candidate and compares it to the
// stored hash in constant time. A wrong PIN returns false, not an error;
// an error is only returned for malformed stored data.
func (c Credential) Verify(candidate string) (bool, error) {
	if len(c.Salt) != saltLength || len(c.Hash) != hashLength {
		return false, common.ErrCorruptCredential
	}
	derived := derivePin(candidate, c.Salt)
	return subtle.ConstantTimeCompare(derived, c.Hash) == 1, nil
}

func derivePin(pin string, salt []byte) []byte {
	return pbkdf2.Key([]byte(pin), salt, kdfIterations, hashLength, sha256.New)
}
