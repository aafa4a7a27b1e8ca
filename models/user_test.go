// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAccount_Quota(t *testing.T) {
	free := UserAccount{Plan: PlanFree, UsageCount: 3, MaxUses: 5}
	assert.False(t, free.Unlimited())
	assert.True(t, free.HasQuotaLeft())
	assert.Equal(t, 2, free.RemainingUses())

	free.UsageCount = 5
	assert.False(t, free.HasQuotaLeft())
	assert.Equal(t, 0, free.RemainingUses())

	free.UsageCount = 9
	assert.Equal(t, 0, free.RemainingUses())

	premium := UserAccount{Plan: PlanPremium, UsageCount: 500, MaxUses: UnlimitedUses}
	assert.True(t, premium.Unlimited())
	assert.True(t, premium.HasQuotaLeft())
	assert.Equal(t, UnlimitedUses, premium.RemainingUses())
}

func TestParsePlan(t *testing.T) {
	tests := []struct {
		in     string
		want   Plan
		wantOK bool
	}{
		{"", PlanFree, true},
		{"free", PlanFree, true},
		{" Premium ", PlanPremium, true},
		{"gold", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePlan(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}
