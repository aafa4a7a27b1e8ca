// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/internal/validators"
	"github.com/MKhiriev/go-property-analyzer/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	errNotWholeNumber = errors.New("must be a whole number")
	errNotNumber      = errors.New("must be a number")
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldInt
	fieldFloat
	fieldSelect
)

const (
	fieldAddress = iota
	fieldBedrooms
	fieldBathrooms
	fieldSquareFeet
	fieldPropertyType
	fieldYearBuilt
	fieldPurchasePrice
	fieldCondition
	firstCompField
)

// Each comparable occupies three consecutive fields: price, rent, sqft.
const compFieldCount = 3

type formField struct {
	label   string
	kind    fieldKind
	input   textinput.Model
	options optionSelect
}

// propertyFormModel is the property details form with up to
// validators.MaxComparables comparable properties. Defaults follow the
// values a typical starter home would have.
type propertyFormModel struct {
	fields []formField
	focus  int
}

func newPropertyForm() propertyFormModel {
	fields := []formField{
		textField("Address", "123 Main Street, City, State", ""),
		numberField("Bedrooms", fieldInt, "3"),
		numberField("Bathrooms", fieldFloat, "2"),
		numberField("Square feet", fieldInt, "1500"),
		selectField("Property type", validators.PropertyTypes, "Single Family"),
		numberField("Year built", fieldInt, "1990"),
		numberField("Purchase price ($)", fieldInt, "300000"),
		selectField("Condition", validators.Conditions, "Good"),
	}
	for i := 1; i <= validators.MaxComparables; i++ {
		fields = append(fields,
			numberField(fmt.Sprintf("Comp %d sale price", i), fieldInt, "300000"),
			numberField(fmt.Sprintf("Comp %d monthly rent", i), fieldInt, "2000"),
			numberField(fmt.Sprintf("Comp %d square feet", i), fieldInt, "1500"),
		)
	}

	m := propertyFormModel{fields: fields}
	m.setFocus(0)
	return m
}

func textField(label, placeholder, value string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	in.SetValue(value)
	return formField{label: label, kind: fieldText, input: in}
}

func numberField(label string, kind fieldKind, value string) formField {
	in := textinput.New()
	in.CharLimit = 12
	in.Width = 14
	in.SetValue(value)
	return formField{label: label, kind: kind, input: in}
}

func selectField(label string, items []string, selected string) formField {
	return formField{label: label, kind: fieldSelect, options: newOptionSelect(items, selected)}
}

func (m *propertyFormModel) setFocus(i int) {
	if m.fields[m.focus].kind != fieldSelect {
		m.fields[m.focus].input.Blur()
	}
	m.focus = i
	if m.fields[m.focus].kind != fieldSelect {
		m.fields[m.focus].input.Focus()
	}
}

func (m *propertyFormModel) focusNext() {
	m.setFocus((m.focus + 1) % len(m.fields))
}

func (m *propertyFormModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
}

// update handles navigation keys and forwards the rest to the focused input.
func (m *propertyFormModel) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		// j/k stay typeable in the address field.
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			m.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			m.focusPrev()
			return nil
		}

		if f := &m.fields[m.focus]; f.kind == fieldSelect {
			switch {
			case key.Matches(keyMsg, keys.right), keyMsg.String() == " ":
				f.options.next()
			case key.Matches(keyMsg, keys.left):
				f.options.prev()
			}
			return nil
		}
	}

	if m.fields[m.focus].kind == fieldSelect {
		return nil
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return cmd
}

// request parses the form. Property numbers are required; a comparable
// whose three fields are all blank or zero is left out, a blank field of
// any other comparable counts as zero.
func (m propertyFormModel) request() (models.AnalysisRequest, error) {
	var req models.AnalysisRequest
	var err error

	p := &req.Property
	p.Address = strings.TrimSpace(m.fields[fieldAddress].input.Value())
	p.PropertyType = m.fields[fieldPropertyType].options.value()
	p.Condition = m.fields[fieldCondition].options.value()

	if p.Bedrooms, err = m.intValue(fieldBedrooms, false); err != nil {
		return models.AnalysisRequest{}, err
	}
	if p.Bathrooms, err = m.floatValue(fieldBathrooms); err != nil {
		return models.AnalysisRequest{}, err
	}
	if p.SquareFeet, err = m.intValue(fieldSquareFeet, false); err != nil {
		return models.AnalysisRequest{}, err
	}
	if p.YearBuilt, err = m.intValue(fieldYearBuilt, false); err != nil {
		return models.AnalysisRequest{}, err
	}
	price, err := m.intValue(fieldPurchasePrice, false)
	if err != nil {
		return models.AnalysisRequest{}, err
	}
	p.PurchasePrice = int64(price)

	for i := firstCompField; i+compFieldCount <= len(m.fields); i += compFieldCount {
		compPrice, err := m.intValue(i, true)
		if err != nil {
			return models.AnalysisRequest{}, err
		}
		rent, err := m.intValue(i+1, true)
		if err != nil {
			return models.AnalysisRequest{}, err
		}
		sqft, err := m.intValue(i+2, true)
		if err != nil {
			return models.AnalysisRequest{}, err
		}
		if compPrice == 0 && rent == 0 && sqft == 0 {
			continue
		}
		req.Comparables = append(req.Comparables, models.ComparableEntry{
			Price:      int64(compPrice),
			Rent:       int64(rent),
			SquareFeet: sqft,
		})
	}

	return req, nil
}

func (m propertyFormModel) intValue(i int, blankIsZero bool) (int, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(m.fields[i].input.Value()), ",", "")
	if raw == "" && blankIsZero {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m.fields[i].label, errNotWholeNumber)
	}
	return v, nil
}

func (m propertyFormModel) floatValue(i int) (float64, error) {
	raw := strings.TrimSpace(m.fields[i].input.Value())
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m.fields[i].label, errNotNumber)
	}
	return v, nil
}

func (m propertyFormModel) View() string {
	var b strings.Builder

	b.WriteString(viewTitle("Property Details"))
	for i := 0; i < firstCompField; i++ {
		m.writeRow(&b, i)
	}

	b.WriteString("\n")
	b.WriteString(viewTitle("Comparable Properties"))
	b.WriteString(helpStyle.Render("Add 2-3 comparable properties in the area. Leave a row empty or zero to skip it."))
	b.WriteString("\n")
	for i := firstCompField; i < len(m.fields); i++ {
		if (i-firstCompField)%compFieldCount == 0 && i != firstCompField {
			b.WriteString("\n")
		}
		m.writeRow(&b, i)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m propertyFormModel) writeRow(b *strings.Builder, i int) {
	f := m.fields[i]
	cursor := " "
	if i == m.focus {
		cursor = ">"
	}

	b.WriteString(fmt.Sprintf("%s %-22s │ ", cursor, f.label))
	if f.kind == fieldSelect {
		b.WriteString(f.options.View(i == m.focus))
	} else {
		b.WriteString("[")
		b.WriteString(f.input.View())
		b.WriteString("]")
	}
	b.WriteString("\n")
}
