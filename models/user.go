// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UnlimitedUses is the MaxUses sentinel stored for accounts without a usage
// ceiling (premium plan).
const UnlimitedUses = -1

// DefaultFreeMaxUses is the number of analyses a free account may run per
// quota window when no other limit is configured.
const DefaultFreeMaxUses = 5

// UserAccount is a registered user of the analyzer as it is persisted in the
// account file. JSON field names are part of the file format and must not be
// renamed.
type UserAccount struct {
	// Username is the unique, immutable account identifier.
	Username string `json:"username"`

	// PasswordHash is the one-way digest of the password. Plaintext is never
	// stored.
	PasswordHash string `json:"passwordHash"`

	// Email is the contact address. Its format is not validated.
	Email string `json:"email"`

	// Plan is the subscription tier of the account.
	Plan Plan `json:"plan"`

	// UsageCount is the number of analyses run in the current quota window.
	UsageCount int `json:"usageCount"`

	// MaxUses is the analysis ceiling per window or [UnlimitedUses].
	MaxUses int `json:"maxUses"`

	// CreatedAt is the registration time (UTC).
	CreatedAt time.Time `json:"createdAt"`

	// LastReset is the start of the current quota window (UTC).
	LastReset time.Time `json:"lastReset"`
}

// Unlimited reports whether the account has no usage ceiling.
func (u UserAccount) Unlimited() bool {
	return u.MaxUses < 0
}

// HasQuotaLeft reports whether one more analysis may be granted.
func (u UserAccount) HasQuotaLeft() bool {
	return u.Unlimited() || u.UsageCount < u.MaxUses
}

// RemainingUses returns how many analyses are left in the current window,
// or [UnlimitedUses] for unlimited accounts.
func (u UserAccount) RemainingUses() int {
	if u.Unlimited() {
		return UnlimitedUses
	}

	remaining := u.MaxUses - u.UsageCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RegisterRequest carries the registration form submitted by a user.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
	Email           string `json:"email"`
	Plan            Plan   `json:"plan,omitempty"`
}

// LoginRequest carries user credentials for authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpgradeRequest asks for a plan change of the authenticated account.
type UpgradeRequest struct {
	Plan Plan `json:"plan"`
}

// UsageSummary describes the quota state of an account as shown to the user.
type UsageSummary struct {
	Username  string    `json:"username"`
	Plan      Plan      `json:"plan"`
	Used      int       `json:"used"`
	MaxUses   int       `json:"max_uses"`
	Remaining int       `json:"remaining"`
	NextReset time.Time `json:"next_reset"`
}
