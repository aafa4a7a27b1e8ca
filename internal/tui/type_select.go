// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// optionSelect is a one-line picker cycled with left/right.
type optionSelect struct {
	items []string
	idx   int
}

func newOptionSelect(items []string, selected string) optionSelect {
	s := optionSelect{items: items}
	for i, item := range items {
		if item == selected {
			s.idx = i
		}
	}
	return s
}

func (s *optionSelect) next() {
	if len(s.items) == 0 {
		return
	}
	s.idx = (s.idx + 1) % len(s.items)
}

func (s *optionSelect) prev() {
	if len(s.items) == 0 {
		return
	}
	s.idx = (s.idx - 1 + len(s.items)) % len(s.items)
}

func (s optionSelect) value() string {
	if len(s.items) == 0 {
		return ""
	}
	return s.items[s.idx]
}

func (s optionSelect) View(focused bool) string {
	if focused {
		return "◀ " + s.value() + " ▶"
	}
	return "  " + s.value()
}
