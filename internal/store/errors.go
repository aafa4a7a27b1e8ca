// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the account repository. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned by Create when the username is
	// already present in the table.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account has the given username.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPersistence is returned (wrapped) when the account table could not
	// be written. The in-memory table is left unchanged in that case.
	ErrPersistence = errors.New("failed to persist account table")
)

// Low-level database operation errors returned (wrapped) by the analysis
// history repository.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan analysis rows")

	// ErrRecordAlreadyExists is returned when an analysis record with the
	// same id is already stored.
	ErrRecordAlreadyExists = errors.New("analysis record already exists")

	// ErrUnsupportedDriver is returned for a database driver other than
	// sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
