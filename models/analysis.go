// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MetricPlaceholder is shown for every metric that could not be extracted
// from the analysis text.
const MetricPlaceholder = "See analysis"

// MetricSet holds the headline figures extracted from the model reply. Every
// field is best-effort and falls back to [MetricPlaceholder].
type MetricSet struct {
	RentalValue   string `json:"rental_value"`
	Yield         string `json:"yield"`
	Demand        string `json:"demand"`
	FlipPotential string `json:"flip_potential"`
}

// NewMetricSet returns a MetricSet with every field set to the placeholder.
func NewMetricSet() MetricSet {
	return MetricSet{
		RentalValue:   MetricPlaceholder,
		Yield:         MetricPlaceholder,
		Demand:        MetricPlaceholder,
		FlipPotential: MetricPlaceholder,
	}
}

// AnalysisResult is returned to the caller after a successful analysis run.
type AnalysisResult struct {
	ID         string           `json:"id"`
	Text       string           `json:"text"`
	Metrics    MetricSet        `json:"metrics"`
	Comparison MarketComparison `json:"comparison"`
	Backend    string           `json:"backend"`
	Usage      UsageSummary     `json:"usage"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AnalysisRecord is a stored analysis kept in the history database.
type AnalysisRecord struct {
	ID            string    `json:"id" db:"id"`
	Username      string    `json:"username" db:"username"`
	Address       string    `json:"address" db:"address"`
	PurchasePrice int64     `json:"purchase_price" db:"purchase_price"`
	Backend       string    `json:"backend" db:"backend"`
	AnalysisText  string    `json:"analysis_text" db:"analysis_text"`
	RentalValue   string    `json:"rental_value" db:"rental_value"`
	Yield         string    `json:"yield" db:"yield"`
	Demand        string    `json:"demand" db:"demand"`
	FlipPotential string    `json:"flip_potential" db:"flip_potential"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// GenerateOptions tunes a single text-generation call.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// ServiceStatus reports whether the text-generation backend is configured.
type ServiceStatus struct {
	Available bool   `json:"available"`
	Backend   string `json:"backend"`
}
