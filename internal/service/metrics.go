// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/internal/app"
	"github.com/MKhiriev/go-property-analyzer/models"
)

var (
	rentalPattern = regexp.MustCompile(`\$(\d{1,4}(?:,\d{3})*(?:\s*-\s*\$\d{1,4}(?:,\d{3})*)?)\s*(?:per month|monthly|rent)`)
	yieldPattern  = regexp.MustCompile(`(?i)(\d+\.?\d*)%\s*(?:yield|return)`)
)

// Ordered vocabularies of the extractor. When several words occur, the one
// appearing earliest in the text wins.
var (
	demandLevels = []string{"High", "Medium", "Low"}
	flipRatings  = []string{"Excellent", "Strong", "Good", "Moderate", "Fair", "Poor"}

	flipVocabulary = []string{"flip", "potential", "investment", "candidate"}
)

// errorMarkers start every failure text produced by this system.
var errorMarkers = []string{"❌", "⚠️"}

// ExtractMetrics pulls the headline figures out of a model reply. It never
// fails: anything not found stays [models.MetricPlaceholder], and empty text
// or one of this system's own error texts yields all placeholders.
func ExtractMetrics(text string) models.MetricSet {
	metrics := models.NewMetricSet()
	if isErrorText(text) {
		return metrics
	}

	if m := rentalPattern.FindStringSubmatch(text); m != nil {
		metrics.RentalValue = "$" + m[1] + "/mo"
	}

	if m := yieldPattern.FindStringSubmatch(text); m != nil {
		metrics.Yield = m[1] + "%"
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "demand") {
		if level, ok := earliestWord(text, demandLevels); ok {
			metrics.Demand = level
		}
	}

	if containsAny(lower, flipVocabulary) {
		if rating, ok := earliestWord(text, flipRatings); ok {
			metrics.FlipPotential = rating
		}
	}

	return metrics
}

func isErrorText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	for _, marker := range errorMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	for _, msg := range analysisFailureTexts {
		if trimmed == msg {
			return true
		}
	}
	return false
}

// earliestWord returns the word of candidates whose first whole-word,
// case-sensitive occurrence comes first in text.
func earliestWord(text string, candidates []string) (string, bool) {
	best, bestPos := "", -1
	for _, word := range candidates {
		pos := indexWord(text, word)
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos {
			best, bestPos = word, pos
		}
	}
	return best, bestPos >= 0
}

// indexWord is strings.Index restricted to matches not surrounded by letters,
// so "Low" does not match inside "Lower" or "Below".
func indexWord(text, word string) int {
	offset := 0
	for {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return -1
		}
		start := offset + i
		end := start + len(word)
		if !isLetterAt(text, start-1) && !isLetterAt(text, end) {
			return start
		}
		offset = start + 1
	}
}

func isLetterAt(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return false
	}
	c := text[i]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var analysisFailureTexts = []string{
	app.MsgAnalysisServiceUnavailable,
	app.MsgAnalysisQuotaExceeded,
	app.MsgAnalysisContentFiltered,
	app.MsgAnalysisFailed,
}

// UserErrorText maps an analysis failure to the message shown in place of
// the analysis text. Every returned text is recognised by ExtractMetrics.
func UserErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrServiceUnavailable):
		return app.MsgAnalysisServiceUnavailable
	case errors.Is(err, ErrQuotaExceeded):
		return app.MsgAnalysisQuotaExceeded
	case errors.Is(err, ErrContentFiltered):
		return app.MsgAnalysisContentFiltered
	default:
		return app.MsgAnalysisFailed
	}
}
