// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/models"
)

// Field names accepted by [AccountValidator].
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldEmail           = "email"
	FieldPlan            = "plan"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 3

// AccountValidator validates registration, login and upgrade requests.
// A blank (whitespace-only) value counts as empty.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UpgradeRequest:
		return v.validateUpgrade(value)
	case *models.UpgradeRequest:
		return v.validateUpgrade(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail, FieldConfirmPassword, FieldPlan}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(request.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if len([]rune(request.Password)) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmptyEmail
			}
		case FieldConfirmPassword:
			// only checked when the caller sends a confirmation
			if request.ConfirmPassword != "" && request.ConfirmPassword != request.Password {
				return ErrPasswordsMismatch
			}
		case FieldPlan:
			if _, ok := models.ParsePlan(string(request.Plan)); !ok {
				return ErrInvalidPlan
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(request.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateUpgrade(request models.UpgradeRequest) error {
	if request.Plan == "" {
		return ErrInvalidPlan
	}
	if _, ok := models.ParsePlan(string(request.Plan)); !ok {
		return ErrInvalidPlan
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
