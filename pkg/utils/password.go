package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"io"
)

// SaltSize matches the HMAC-SHA512 block size.
const SaltSize = 128

// PasswordHasher computes and verifies salted keyed password hashes.
type PasswordHasher interface {
	Hash(password string) (hash, salt []byte, err error)
	Verify(password string, hash, salt []byte) bool
}

// HMACHasher keys HMAC-SHA512 with a per-user random salt.
type HMACHasher struct {
	random io.Reader
}

func NewHMACHasher() *HMACHasher {
	return &HMACHasher{random: rand.Reader}
}

// Hash draws a fresh salt and returns HMAC-SHA512(salt, password).
func (h *HMACHasher) Hash(password string) ([]byte, []byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	return computeHash(password, salt), salt, nil
}

// Verify recomputes the hash with the stored salt and compares the full
// length in constant time.
func (h *HMACHasher) Verify(password string, hash, salt []byte) bool {
	if len(salt) == 0 || len(hash) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(computeHash(password, salt), hash) == 1
}

func computeHash(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}
