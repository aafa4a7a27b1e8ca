// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrPasswordTooShort  = errors.New("password must be at least 3 characters")
	ErrPasswordsMismatch = errors.New("passwords don't match")
	ErrInvalidPlan       = errors.New("invalid plan")

	ErrInvalidBedrooms      = errors.New("bedrooms must be between 0 and 10")
	ErrInvalidBathrooms     = errors.New("bathrooms must be between 0 and 10")
	ErrInvalidSquareFeet    = errors.New("square feet must not be negative")
	ErrInvalidPropertyType  = errors.New("unknown property type")
	ErrInvalidYearBuilt     = errors.New("year built is out of range")
	ErrInvalidPurchasePrice = errors.New("purchase price must not be negative")
	ErrInvalidCondition     = errors.New("unknown property condition")
	ErrTooManyComparables   = errors.New("too many comparable properties")
	ErrInvalidComparable    = errors.New("comparable values must not be negative")
)
