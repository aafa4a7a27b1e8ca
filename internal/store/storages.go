// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
)

// Storages aggregates the repositories used by the service layer.
// AnalysisHistoryRepository is nil when no history database is configured.
type Storages struct {
	AccountRepository         AccountRepository
	AnalysisHistoryRepository AnalysisHistoryRepository

	db *DB
}

// NewStorages loads the account table and, when cfg.DB.DSN is set, connects
// to the history database and applies migrations.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		AccountRepository: NewAccountFileRepository(cfg.AccountsFile, log),
	}

	if cfg.DB.DSN == "" {
		log.Info().Msg("history database is not configured, analysis history disabled")
		return storages, nil
	}

	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting history database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating history database: %w", err)
	}

	storages.db = db
	storages.AnalysisHistoryRepository = NewAnalysisHistoryRepository(db, log)

	return storages, nil
}

// Close releases the history database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
