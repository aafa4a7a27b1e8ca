// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/models"
)

const notSpecified = "Not specified"

// BuildPrompt renders the analysis prompt for property and its comparables.
// The output depends only on the inputs.
func BuildPrompt(property models.PropertyInput, comps []models.ComparableEntry) string {
	if comps == nil {
		comps = []models.ComparableEntry{}
	}
	compsJSON, err := json.MarshalIndent(comps, "", "  ")
	if err != nil {
		// ComparableEntry holds only numbers
		compsJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("\nYou are an expert real estate investment analyst. Analyze this property for investment potential.\n\n")

	b.WriteString("PROPERTY DETAILS:\n")
	fmt.Fprintf(&b, "- Address: %s\n", orDefault(property.Address, notSpecified))
	fmt.Fprintf(&b, "- Type: %s\n", orDefault(property.PropertyType, notSpecified))
	fmt.Fprintf(&b, "- Bedrooms: %d\n", property.Bedrooms)
	fmt.Fprintf(&b, "- Bathrooms: %s\n", strconv.FormatFloat(property.Bathrooms, 'f', -1, 64))
	fmt.Fprintf(&b, "- Square Feet: %d\n", property.SquareFeet)
	fmt.Fprintf(&b, "- Year Built: %d\n", property.YearBuilt)
	fmt.Fprintf(&b, "- Condition: %s\n", orDefault(property.Condition, models.NotAvailable))
	fmt.Fprintf(&b, "- Purchase Price: $%s\n\n", formatThousands(property.PurchasePrice))

	fmt.Fprintf(&b, "COMPARABLE PROPERTIES (%d properties):\n", len(comps))
	b.Write(compsJSON)
	b.WriteString("\n\n")

	b.WriteString("Please provide a comprehensive but concise analysis with these specific sections:\n\n")
	b.WriteString("1. **Rental Value Estimate**: Provide a monthly rental range based on comparables\n")
	b.WriteString("2. **Gross Rental Yield**: Calculate (Annual Rent / Purchase Price) as percentage\n")
	b.WriteString("3. **Demand Assessment**: Rate as High/Medium/Low based on market data\n")
	b.WriteString("4. **Improvement Suggestions**: 3-5 cost-effective upgrades to increase value\n")
	b.WriteString("5. **Flip Potential**: Assess as Strong/Moderate/Poor with reasoning\n")
	b.WriteString("6. **Investment Recommendation**: Overall verdict and key considerations\n\n")
	b.WriteString("Be data-driven and reference the comparable properties in your analysis. Keep it practical for real estate investors.\n")

	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// formatThousands renders n with comma separators: 1234567 -> "1,234,567".
func formatThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	b.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// formatMoney renders a whole-dollar amount as "$1,234" or "-$1,234".
func formatMoney(v float64) string {
	if v < 0 {
		return "-" + formatMoney(-v)
	}
	return "$" + formatThousands(int64(roundHalfAway(v)))
}

func roundHalfAway(v float64) float64 {
	if v < 0 {
		return -roundHalfAway(-v)
	}
	return float64(int64(v + 0.5))
}
