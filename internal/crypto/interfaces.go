// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto owns password hashing for stored accounts.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks the password hashes kept in the account
// table. Plaintext passwords never leave the service layer.
type PasswordHasher interface {
	// Hash returns a salted hash of password suitable for storage.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash. Hashes written
	// by older releases (unsalted hex SHA-256) are still accepted.
	Verify(hash, password string) bool

	// NeedsRehash reports whether a stored hash uses an outdated scheme or
	// cost and should be replaced after the next successful login.
	NeedsRehash(hash string) bool
}
