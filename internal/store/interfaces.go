// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the JSON account table and the
// optional SQL database with the analysis history.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-property-analyzer/models"
)

// AccountRepository is the account table. Every mutation is durably written
// before it becomes visible to readers.
type AccountRepository interface {
	// Create adds a new account. Returns [ErrAccountAlreadyExists] when the
	// username is taken, leaving the stored record unchanged.
	Create(ctx context.Context, account models.UserAccount) error

	// Find returns the account for username or [ErrAccountNotFound].
	Find(ctx context.Context, username string) (models.UserAccount, error)

	// Update applies mutate to a copy of the stored account. When mutate
	// reports a change, the copy is persisted and replaces the stored record.
	// Returns the resulting account, or [ErrAccountNotFound].
	Update(ctx context.Context, username string, mutate func(account *models.UserAccount) bool) (models.UserAccount, error)

	// All returns a snapshot of the whole table keyed by username.
	All(ctx context.Context) map[string]models.UserAccount
}

// AnalysisHistoryRepository stores finished analyses for later review.
type AnalysisHistoryRepository interface {
	// Save inserts one analysis record.
	Save(ctx context.Context, record models.AnalysisRecord) error

	// ListByUsername returns up to limit most recent records of username,
	// newest first.
	ListByUsername(ctx context.Context, username string, limit uint64) ([]models.AnalysisRecord, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
