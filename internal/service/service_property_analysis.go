// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/store"
	"github.com/MKhiriev/go-property-analyzer/internal/utils"
	"github.com/MKhiriev/go-property-analyzer/models"
)

type propertyAnalysisService struct {
	accountService  AccountService
	analysisService AnalysisService

	// historyRepository is nil when no history database is configured.
	historyRepository store.AnalysisHistoryRepository

	ids utils.IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewPropertyAnalysisService wires the analysis workflow. historyRepository
// may be nil.
func NewPropertyAnalysisService(
	accountService AccountService,
	analysisService AnalysisService,
	historyRepository store.AnalysisHistoryRepository,
	log *logger.Logger,
) PropertyAnalysisService {
	return &propertyAnalysisService{
		accountService:    accountService,
		analysisService:   analysisService,
		historyRepository: historyRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               func() time.Time { return time.Now().UTC() },
		logger:            log,
	}
}

// Run executes one analysis for username. Usage is recorded only after the
// backend returned text, so a failed call never consumes quota.
func (p *propertyAnalysisService) Run(ctx context.Context, username string, req models.AnalysisRequest) (models.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	ok, err := p.accountService.HasQuota(ctx, username)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	if !ok {
		log.Info().Str("username", username).Msg("usage limit reached")
		return models.AnalysisResult{}, ErrUsageLimitReached
	}

	text, err := p.analysisService.Analyze(ctx, req.Property, req.Comparables)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	if err = p.accountService.RecordUsage(ctx, username); err != nil {
		log.Err(err).Str("func", "*propertyAnalysisService.Run").Str("username", username).Msg("failed to record usage")
		return models.AnalysisResult{}, err
	}

	result := models.AnalysisResult{
		ID:         p.ids.Generate(),
		Text:       text,
		Metrics:    ExtractMetrics(text),
		Comparison: CompareMarket(req.Property.PurchasePrice, req.Comparables),
		Backend:    p.analysisService.Status().Backend,
		CreatedAt:  p.now(),
	}

	usage, err := p.accountService.Usage(ctx, username)
	if err != nil {
		log.Warn().Err(err).Str("func", "*propertyAnalysisService.Run").Msg("usage summary unavailable")
	}
	result.Usage = usage

	p.saveHistory(ctx, username, req, result)

	return result, nil
}

// saveHistory stores the result when a history database is configured. A
// failed insert is logged and does not fail the analysis.
func (p *propertyAnalysisService) saveHistory(ctx context.Context, username string, req models.AnalysisRequest, result models.AnalysisResult) {
	if p.historyRepository == nil {
		return
	}

	record := models.AnalysisRecord{
		ID:            result.ID,
		Username:      username,
		Address:       req.Property.Address,
		PurchasePrice: req.Property.PurchasePrice,
		Backend:       result.Backend,
		AnalysisText:  result.Text,
		RentalValue:   result.Metrics.RentalValue,
		Yield:         result.Metrics.Yield,
		Demand:        result.Metrics.Demand,
		FlipPotential: result.Metrics.FlipPotential,
		CreatedAt:     result.CreatedAt,
	}

	if err := p.historyRepository.Save(ctx, record); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*propertyAnalysisService.saveHistory").
			Str("id", record.ID).Msg("analysis was not saved to history")
	}
}

func (p *propertyAnalysisService) History(ctx context.Context, username string, limit uint64) ([]models.AnalysisRecord, error) {
	if p.historyRepository == nil {
		return nil, ErrHistoryUnavailable
	}
	if p.accountService.PlanOf(ctx, username) != models.PlanPremium {
		return nil, ErrPremiumRequired
	}

	records, err := p.historyRepository.ListByUsername(ctx, username, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyAnalysisService.History").Str("username", username).
			Msg("failed to list analysis history")
		return nil, fmt.Errorf("list analysis history: %w", err)
	}

	return records, nil
}
