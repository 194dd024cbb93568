package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for every stored credential.
const PasswordCost = 10

// MaxPasswordBytes is the longest input bcrypt will accept.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by HashPassword for inputs bcrypt would reject.
var ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")

// dummyHash is compared against when no stored credential exists, so a login
// for an unknown account costs the same bcrypt round as a wrong password.
var dummyHash = mustHash("tenancy-dummy-credential")

// HashPassword returns a salted bcrypt digest of password. Two calls with the
// same input never return the same digest.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches digest. A malformed digest
// is a mismatch, not an error.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// BurnPasswordCheck performs a throwaway comparison with the same cost as a
// real VerifyPassword call. It always reports false.
func BurnPasswordCheck(password string) bool {
	_ = VerifyPassword(password, dummyHash)
	return false
}

func mustHash(password string) string {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to build dummy hash: %v", err))
	}
	return string(digest)
}
