// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/app"
	"github.com/MKhiriev/go-property-analyzer/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const dateLayout = "2006-01-02 15:04"

// renderResult lays out a finished analysis: quick insights, the full text
// and the market comparison.
func renderResult(result models.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(okStyle.Render("Analysis Complete! ✅"))
	if result.Backend != "" {
		b.WriteString(labelStyle.Render("  by " + result.Backend))
	}
	b.WriteString("\n\n")

	b.WriteString(viewTitle("📈 Quick Insights"))
	b.WriteString(renderMetrics(result.Metrics))
	b.WriteString("\n\n")

	b.WriteString(viewTitle("📊 Detailed Analysis"))
	b.WriteString(strings.TrimSpace(result.Text))
	b.WriteString("\n\n")

	b.WriteString(renderComparison(result.Comparison))
	return strings.TrimRight(b.String(), "\n")
}

// renderRecord lays out a stored history record.
func renderRecord(rec models.AnalysisRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", valueOrDash(rec.Address)))
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s │ %s │ %s",
		rec.CreatedAt.Local().Format(dateLayout), formatDollars(float64(rec.PurchasePrice)), valueOrDash(rec.Backend))))
	b.WriteString("\n\n")

	b.WriteString(viewTitle("📈 Quick Insights"))
	b.WriteString(renderMetrics(models.MetricSet{
		RentalValue:   rec.RentalValue,
		Yield:         rec.Yield,
		Demand:        rec.Demand,
		FlipPotential: rec.FlipPotential,
	}))
	b.WriteString("\n\n")

	b.WriteString(viewTitle("📊 Detailed Analysis"))
	b.WriteString(strings.TrimSpace(rec.AnalysisText))
	return b.String()
}

func renderMetrics(m models.MetricSet) string {
	box := func(label, value string) string {
		return metricStyle.Render(labelStyle.Render(label) + "\n" + valueOrDash(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Estimated Rental Value", m.RentalValue),
		box("Gross Yield", m.Yield),
		box("Demand Level", m.Demand),
		box("Flip Potential", m.FlipPotential),
	)
}

// renderComparison renders the comparison table followed by the market
// insights, which are only shown when comparables were supplied.
func renderComparison(c models.MarketComparison) string {
	var b strings.Builder
	b.WriteString(viewTitle("📊 Market Comparison"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Property", "Price", "Monthly Rent", "Price per SqFt")
	for _, row := range c.Rows {
		t.Row(row.Property, row.Price, row.MonthlyRent, row.PricePerSqFt)
	}
	b.WriteString(t.String())
	b.WriteString("\n\n")

	b.WriteString(viewTitle("💡 Market Insights"))
	if !c.HasComparables {
		b.WriteString("No comparable properties supplied.")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Average comp price:  %s\n", formatDollars(c.AverageCompPrice)))
	b.WriteString(fmt.Sprintf("Price vs market:     %s (%s)\n",
		formatDollars(c.PriceDifference), formatSignedPercent(c.PriceDifferencePercent)))
	if c.AverageRent > 0 {
		b.WriteString(fmt.Sprintf("Avg monthly rent:    %s\n", formatDollars(c.AverageRent)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// usageLine describes the remaining analyses of a usage summary.
func usageLine(u models.UsageSummary) string {
	if u.Plan == models.PlanPremium || u.MaxUses == models.UnlimitedUses {
		return "Remaining analyses: unlimited"
	}
	return fmt.Sprintf("Remaining analyses: %d of %d", u.Remaining, u.MaxUses)
}

func resetLine(u models.UsageSummary, now time.Time) string {
	if u.Plan == models.PlanPremium || u.NextReset.IsZero() {
		return ""
	}
	if now.After(u.NextReset) {
		return "Usage resets with the next analysis"
	}
	return "Usage resets on " + u.NextReset.Local().Format(dateLayout)
}

// limitReached reports whether a free account has no analyses left. The
// counter restarts only once now is past NextReset.
func limitReached(u models.UsageSummary, now time.Time) bool {
	if u.Plan == models.PlanPremium || u.MaxUses == models.UnlimitedUses || u.Remaining > 0 {
		return false
	}
	return u.NextReset.IsZero() || !now.After(u.NextReset)
}

func statusLine(s models.ServiceStatus, known bool) string {
	switch {
	case !known:
		return "AI service: checking..."
	case s.Available && s.Backend != "":
		return okStyle.Render(app.MsgServiceReady + " (" + s.Backend + ")")
	case s.Available:
		return okStyle.Render(app.MsgServiceReady)
	default:
		return errorStyle.Render(app.MsgServiceUnavailable)
	}
}

func planLabel(p models.Plan) string {
	if p == models.PlanPremium {
		return "Premium"
	}
	return "Free"
}
