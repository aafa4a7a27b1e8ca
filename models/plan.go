// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Plan is the subscription tier of an account.
type Plan string

const (
	// PlanFree is limited to a fixed number of analyses per quota window.
	PlanFree Plan = "free"

	// PlanPremium has no usage ceiling.
	PlanPremium Plan = "premium"
)

// ParsePlan normalises s into a known plan. An empty string resolves to
// [PlanFree]; ok is false for unknown values.
func ParsePlan(s string) (plan Plan, ok bool) {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case "", PlanFree:
		return PlanFree, true
	case PlanPremium:
		return PlanPremium, true
	default:
		return "", false
	}
}

// String implements [fmt.Stringer].
func (p Plan) String() string {
	return string(p)
}
