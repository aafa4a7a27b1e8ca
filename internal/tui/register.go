// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders
// four text inputs (username, email, password and its confirmation) and
// dispatches an async registration command on form submission. A successful
// registration starts a session, so [RootModel] finishes the login flow on the
// resulting [RegisterResult].
type RegisterModel struct {
	ctx    context.Context
	client service.ClientService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, client service.ClientService) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[registerUsername] = textinput.New()
	fields[registerUsername].Placeholder = "username"
	fields[registerUsername].CharLimit = 64
	fields[registerUsername].Width = 40
	fields[registerUsername].Focus()

	fields[registerEmail] = textinput.New()
	fields[registerEmail].Placeholder = "email"
	fields[registerEmail].Width = 40

	fields[registerPassword] = textinput.New()
	fields[registerPassword].Placeholder = "password"
	fields[registerPassword].EchoMode = textinput.EchoPassword
	fields[registerPassword].EchoCharacter = '*'
	fields[registerPassword].CharLimit = 72
	fields[registerPassword].Width = 40

	fields[registerConfirm] = textinput.New()
	fields[registerConfirm].Placeholder = "confirm password"
	fields[registerConfirm].EchoMode = textinput.EchoPassword
	fields[registerConfirm].EchoCharacter = '*'
	fields[registerConfirm].CharLimit = 72
	fields[registerConfirm].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		client: client,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Field validation happens in the client
// service; its errors are shown under the form.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.resetForm()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.request())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field             │ Value\n")
	b.WriteString("──────────────────┼──────────────────────────────────────────\n")
	b.WriteString("Username          │ [")
	b.WriteString(m.inputs[registerUsername].View())
	b.WriteString("]\n")
	b.WriteString("Email             │ [")
	b.WriteString(m.inputs[registerEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password          │ [")
	b.WriteString(m.inputs[registerPassword].View())
	b.WriteString("]\n")
	b.WriteString("Confirm password  │ [")
	b.WriteString(m.inputs[registerConfirm].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("New accounts start on the free plan."))

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: register")
}

func (m *RegisterModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		Username:        strings.TrimSpace(m.inputs[registerUsername].Value()),
		Email:           strings.TrimSpace(m.inputs[registerEmail].Value()),
		Password:        m.inputs[registerPassword].Value(),
		ConfirmPassword: m.inputs[registerConfirm].Value(),
		Plan:            models.PlanFree,
	}
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		usage, err := client.Register(ctx, req)
		return RegisterResult{
			Username: req.Username,
			Usage:    usage,
			Err:      err,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
