// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-property-analyzer/models"
)

const yourPropertyLabel = "Your Property"

// CompareMarket benchmarks purchasePrice against the comparables. The price
// per square foot of the subject property is computed with the first
// comparable's square footage, since the comparison table has no size for
// the subject itself.
func CompareMarket(purchasePrice int64, comps []models.ComparableEntry) models.MarketComparison {
	subject := models.ComparisonRow{
		Property:     yourPropertyLabel,
		Price:        formatMoney(float64(purchasePrice)),
		MonthlyRent:  models.NotAvailable,
		PricePerSqFt: models.NotAvailable,
	}
	if len(comps) > 0 && comps[0].SquareFeet > 0 {
		subject.PricePerSqFt = formatMoney(float64(purchasePrice) / float64(comps[0].SquareFeet))
	}

	result := models.MarketComparison{Rows: []models.ComparisonRow{subject}}

	var (
		priceSum  float64
		rentSum   float64
		rentCount int
	)
	for i, comp := range comps {
		row := models.ComparisonRow{
			Property:     fmt.Sprintf("Comp %d", i+1),
			Price:        formatMoney(float64(comp.Price)),
			MonthlyRent:  formatMoney(float64(comp.Rent)),
			PricePerSqFt: models.NotAvailable,
		}
		if comp.SquareFeet > 0 {
			row.PricePerSqFt = formatMoney(float64(comp.Price) / float64(comp.SquareFeet))
		}
		result.Rows = append(result.Rows, row)

		priceSum += float64(comp.Price)
		if comp.Rent > 0 {
			rentSum += float64(comp.Rent)
			rentCount++
		}
	}

	if len(comps) == 0 {
		return result
	}

	result.HasComparables = true
	result.AverageCompPrice = priceSum / float64(len(comps))
	result.PriceDifference = float64(purchasePrice) - result.AverageCompPrice
	if result.AverageCompPrice != 0 {
		result.PriceDifferencePercent = result.PriceDifference / result.AverageCompPrice * 100
	}
	if rentCount > 0 {
		result.AverageRent = rentSum / float64(rentCount)
	}

	return result
}
