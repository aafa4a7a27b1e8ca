// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PropertyInput describes the property submitted for analysis. It is never
// persisted.
type PropertyInput struct {
	Address       string  `json:"address"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	SquareFeet    int     `json:"square_feet"`
	PropertyType  string  `json:"property_type"`
	YearBuilt     int     `json:"year_built"`
	PurchasePrice int64   `json:"purchase_price"`
	Condition     string  `json:"condition"`
}

// ComparableEntry is a nearby reference property used to benchmark price and
// rent.
type ComparableEntry struct {
	Price      int64 `json:"price"`
	Rent       int64 `json:"rent"`
	SquareFeet int   `json:"sqft"`
}

// AnalysisRequest is the input of one analysis run.
type AnalysisRequest struct {
	Property    PropertyInput     `json:"property"`
	Comparables []ComparableEntry `json:"comparables"`
}
