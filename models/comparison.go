// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable is displayed for comparison cells that cannot be computed.
const NotAvailable = "N/A"

// ComparisonRow is one line of the market comparison table.
type ComparisonRow struct {
	Property     string `json:"property"`
	Price        string `json:"price"`
	MonthlyRent  string `json:"monthly_rent"`
	PricePerSqFt string `json:"price_per_sqft"`
}

// MarketComparison is the locally computed benchmark of the property against
// its comparables.
type MarketComparison struct {
	Rows []ComparisonRow `json:"rows"`

	// HasComparables is false when no comparables were supplied; the
	// aggregate fields are zero in that case.
	HasComparables bool `json:"has_comparables"`

	AverageCompPrice       float64 `json:"average_comp_price"`
	PriceDifference        float64 `json:"price_difference"`
	PriceDifferencePercent float64 `json:"price_difference_percent"`

	// AverageRent is the mean of positive comparable rents, zero if none.
	AverageRent float64 `json:"average_rent"`
}
