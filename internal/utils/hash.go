package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters
const (
	SaltLength = 32 // 256 bits
	KeyLength  = 32 // 256 bits
	Iterations = 10000
)

var ErrEmptyInput = errors.New("password and salt must not be empty")

// HashPassword derives a PBKDF2-HMAC-SHA256 hash of the password with the
// given base64-encoded salt and returns it base64-encoded.
func HashPassword(password, salt string) (string, error) {
	if password == "" || salt == "" {
		return "", ErrEmptyInput
	}

	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", err
	}

	hash := pbkdf2.Key([]byte(password), saltBytes, Iterations, KeyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(hash), nil
}

// GenerateSalt returns a cryptographically random salt, base64-encoded.
func GenerateSalt() (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(salt), nil
}

// VerifyPassword recomputes the hash and compares in constant time.
// Any failure (e.g. malformed salt) yields false rather than an error.
func VerifyPassword(password, salt, hash string) bool {
	computed, err := HashPassword(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
