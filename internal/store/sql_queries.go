// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/models"
)

const analysesTable = "analyses"

var analysisColumns = []string{
	"id",
	"username",
	"address",
	"purchase_price",
	"backend",
	"analysis_text",
	"rental_value",
	"yield",
	"demand",
	"flip_potential",
	"created_at",
}

// statementBuilder returns a squirrel builder using the placeholder style of
// driver: "$1" for PostgreSQL, "?" for SQLite.
func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildInsertAnalysisQuery(driver string, record models.AnalysisRecord) (string, []any, error) {
	query, args, err := statementBuilder(driver).
		Insert(analysesTable).
		Columns(analysisColumns...).
		Values(
			record.ID,
			record.Username,
			record.Address,
			record.PurchasePrice,
			record.Backend,
			record.AnalysisText,
			record.RentalValue,
			record.Yield,
			record.Demand,
			record.FlipPotential,
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListAnalysesQuery(driver, username string, limit uint64) (string, []any, error) {
	query, args, err := statementBuilder(driver).
		Select(analysisColumns...).
		From(analysesTable).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
