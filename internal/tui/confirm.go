// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// upgradeConfirmView lists the premium benefits and asks for confirmation.
func upgradeConfirmView(submitting bool) string {
	var b strings.Builder
	b.WriteString("🚀 Upgrade to Premium\n\n")
	b.WriteString("Unlock unlimited property analyses:\n")
	b.WriteString("✅ Unlimited AI analyses\n")
	b.WriteString("✅ Advanced analytics\n")
	b.WriteString("✅ Historical data\n")
	b.WriteString("✅ Priority support\n\n")
	if submitting {
		b.WriteString("Upgrading...")
	} else {
		b.WriteString("Upgrade now? y yes    n no")
	}
	return overlayBoxStyle.Render(b.String())
}
