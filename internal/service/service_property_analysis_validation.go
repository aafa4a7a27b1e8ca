// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-property-analyzer/internal/validators"
	"github.com/MKhiriev/go-property-analyzer/models"
)

// PropertyAnalysisServiceWrapper decorates a PropertyAnalysisService.
type PropertyAnalysisServiceWrapper interface {
	Wrap(PropertyAnalysisService) PropertyAnalysisService
}

// PropertyAnalysisValidationService rejects malformed analysis requests
// before they reach the wrapped service, so invalid input never touches the
// quota or the backend.
type PropertyAnalysisValidationService struct {
	inner     PropertyAnalysisService
	validator validators.Validator
}

func NewPropertyAnalysisValidationService() PropertyAnalysisServiceWrapper {
	return &PropertyAnalysisValidationService{
		validator: validators.NewPropertyValidator(),
	}
}

func (v *PropertyAnalysisValidationService) Run(ctx context.Context, username string, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if username == "" {
		return models.AnalysisResult{}, fmt.Errorf("%w: empty username", ErrInvalidInput)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return v.inner.Run(ctx, username, req)
}

func (v *PropertyAnalysisValidationService) History(ctx context.Context, username string, limit uint64) ([]models.AnalysisRecord, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", ErrInvalidInput)
	}

	return v.inner.History(ctx, username, limit)
}

func (v *PropertyAnalysisValidationService) Wrap(inner PropertyAnalysisService) PropertyAnalysisService {
	v.inner = inner
	return v
}
