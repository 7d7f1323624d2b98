// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pincode verifies secondary PINs against stored hashes. It supports
// bcrypt and argon2id PHC strings and tells the scheme apart by prefix.
package pincode

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Verifier compares a candidate PIN with a stored hash.
type Verifier interface {
	Verify(candidate, hash string) (bool, error)
}

// HashVerifier is the default [Verifier].
type HashVerifier struct{}

// NewHashVerifier returns a [HashVerifier].
func NewHashVerifier() *HashVerifier {
	return &HashVerifier{}
}

// Verify reports whether candidate matches hash. A mismatch is (false, nil);
// an error means the hash itself could not be used.
func (v *HashVerifier) Verify(candidate, hash string) (bool, error) {
	switch {
	case strings.HasPrefix(hash, argon2idPrefix):
		return verifyArgon2id(candidate, hash)
	case isBcrypt(hash):
		return verifyBcrypt(candidate, hash)
	default:
		return false, ErrUnsupportedHash
	}
}

func isBcrypt(hash string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}

	return false
}

func verifyBcrypt(candidate, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// HashBcrypt hashes pin with bcrypt at the default cost.
func HashBcrypt(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
