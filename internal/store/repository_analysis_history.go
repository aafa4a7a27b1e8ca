// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/models"
)

// DefaultHistoryLimit caps ListByUsername when the caller passes zero.
const DefaultHistoryLimit = 20

// retryDelay is the pause before the single retry of a retryable failure.
var retryDelay = 100 * time.Millisecond

// analysisHistoryRepository is the SQL implementation of
// [AnalysisHistoryRepository] on top of the "analyses" table.
type analysisHistoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewAnalysisHistoryRepository constructs an [AnalysisHistoryRepository]
// backed by db.
func NewAnalysisHistoryRepository(db *DB, log *logger.Logger) AnalysisHistoryRepository {
	log.Debug().Str("driver", db.driver).Msg("creating analysis history repository")
	return &analysisHistoryRepository{
		DB:     db,
		logger: log,
	}
}

func (r *analysisHistoryRepository) Save(ctx context.Context, record models.AnalysisRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAnalysisQuery(r.driver, record)
	if err != nil {
		log.Err(err).Str("func", "*analysisHistoryRepository.Save").Msg("failed to build query")
		return err
	}

	_, err = r.ExecContext(ctx, query, args...)
	if err != nil && r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*analysisHistoryRepository.Save").Msg("retrying insert")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
		_, err = r.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).
			Str("func", "*analysisHistoryRepository.Save").
			Str("id", record.ID).
			Str("username", record.Username).
			Msg("failed to insert analysis record")
		if isUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *analysisHistoryRepository) ListByUsername(ctx context.Context, username string, limit uint64) ([]models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	query, args, err := buildListAnalysesQuery(r.driver, username, limit)
	if err != nil {
		log.Err(err).Str("func", "*analysisHistoryRepository.ListByUsername").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*analysisHistoryRepository.ListByUsername").
			Str("username", username).
			Msg("failed to query analysis history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.AnalysisRecord, 0, limit)
	for rows.Next() {
		var rec models.AnalysisRecord
		if err = rows.Scan(
			&rec.ID,
			&rec.Username,
			&rec.Address,
			&rec.PurchasePrice,
			&rec.Backend,
			&rec.AnalysisText,
			&rec.RentalValue,
			&rec.Yield,
			&rec.Demand,
			&rec.FlipPotential,
			&rec.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*analysisHistoryRepository.ListByUsername").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
