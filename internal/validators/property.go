// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-analyzer/models"
)

// Field names accepted by [PropertyValidator].
const (
	FieldBedrooms      = "bedrooms"
	FieldBathrooms     = "bathrooms"
	FieldSquareFeet    = "square_feet"
	FieldPropertyType  = "property_type"
	FieldYearBuilt     = "year_built"
	FieldPurchasePrice = "purchase_price"
	FieldCondition     = "condition"
	FieldComparables   = "comparables"
)

const (
	MaxRooms       = 10
	MinYearBuilt   = 1800
	MaxComparables = 3
)

// PropertyTypes lists the accepted property types.
var PropertyTypes = []string{"Single Family", "Condo", "Townhouse", "Multi-Family"}

// Conditions lists the accepted property conditions.
var Conditions = []string{"Excellent", "Good", "Fair", "Poor", "Needs Renovation"}

// PropertyValidator validates property details and comparable sales before
// they are turned into a prompt. The address is free text and may be empty.
type PropertyValidator struct {
	now func() time.Time
}

func NewPropertyValidator() Validator {
	return &PropertyValidator{now: time.Now}
}

func (v *PropertyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PropertyInput:
		return v.validateProperty(value, fields...)
	case *models.PropertyInput:
		return v.validateProperty(*value, fields...)

	case models.AnalysisRequest:
		return v.validateAnalysisRequest(value)
	case *models.AnalysisRequest:
		return v.validateAnalysisRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *PropertyValidator) validateProperty(p models.PropertyInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBedrooms, FieldBathrooms, FieldSquareFeet, FieldPropertyType,
			FieldYearBuilt, FieldPurchasePrice, FieldCondition}
	}

	for _, f := range fields {
		switch f {
		case FieldBedrooms:
			if p.Bedrooms < 0 || p.Bedrooms > MaxRooms {
				return ErrInvalidBedrooms
			}
		case FieldBathrooms:
			if p.Bathrooms < 0 || p.Bathrooms > MaxRooms {
				return ErrInvalidBathrooms
			}
		case FieldSquareFeet:
			if p.SquareFeet < 0 {
				return ErrInvalidSquareFeet
			}
		case FieldPropertyType:
			if !oneOf(p.PropertyType, PropertyTypes) {
				return ErrInvalidPropertyType
			}
		case FieldYearBuilt:
			if p.YearBuilt < MinYearBuilt || p.YearBuilt > v.now().Year()+1 {
				return ErrInvalidYearBuilt
			}
		case FieldPurchasePrice:
			if p.PurchasePrice < 0 {
				return ErrInvalidPurchasePrice
			}
		case FieldCondition:
			if !oneOf(p.Condition, Conditions) {
				return ErrInvalidCondition
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PropertyValidator) validateAnalysisRequest(request models.AnalysisRequest) error {
	if err := v.validateProperty(request.Property); err != nil {
		return err
	}

	if len(request.Comparables) > MaxComparables {
		return ErrTooManyComparables
	}
	for i, c := range request.Comparables {
		if c.Price < 0 || c.Rent < 0 || c.SquareFeet < 0 {
			return fmt.Errorf("validation error at comparable %d: %w", i+1, ErrInvalidComparable)
		}
	}

	return nil
}

func oneOf(value string, allowed []string) bool {
	return slices.ContainsFunc(allowed, func(a string) bool {
		return strings.EqualFold(a, strings.TrimSpace(value))
	})
}
