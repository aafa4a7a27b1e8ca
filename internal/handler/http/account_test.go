// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/app"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/internal/validators"
	"github.com/MKhiriev/go-property-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var aliceUsage = models.UsageSummary{
	Username:  "alice",
	Plan:      models.PlanFree,
	MaxUses:   5,
	Remaining: 5,
	NextReset: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
}

func TestRegister_Created(t *testing.T) {
	h, m := newTestHandler(t)
	req := models.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.io"}

	m.accounts.EXPECT().Register(gomock.Any(), req).Return(nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), "alice").Return(models.Token{SignedString: "jwt-alice"}, nil)
	m.accounts.EXPECT().Usage(gomock.Any(), "alice").Return(aliceUsage, nil)

	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/api/user/register", jsonBody(t, req)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer jwt-alice", rec.Header().Get("Authorization"))

	var got models.UsageSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, aliceUsage, got)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "duplicate", err: service.ErrDuplicateUser, wantStatus: http.StatusConflict, wantMsg: app.MsgUsernameAlreadyExists},
		{name: "invalid", err: fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrEmptyEmail), wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "mismatch", err: fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrPasswordsMismatch), wantStatus: http.StatusBadRequest, wantMsg: app.MsgPasswordsDontMatch},
		{name: "storage", err: fmt.Errorf("%w: disk full", service.ErrPersistence), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgStorageFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).Return(tt.err)

			rec := httptest.NewRecorder()
			body := jsonBody(t, models.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x.io"})
			h.register(rec, httptest.NewRequest(http.MethodPost, "/api/user/register", body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.register(rec, httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeError(t, rec))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		authErr    error
		wantStatus int
		wantMsg    string
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "unknown user", authErr: service.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: app.MsgUserNotFound},
		{name: "wrong password", authErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: app.MsgInvalidLoginPassword},
		{name: "empty fields", authErr: service.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			req := models.LoginRequest{Username: "alice", Password: "pw1"}

			if tt.authErr != nil {
				m.accounts.EXPECT().Authenticate(gomock.Any(), "alice", "pw1").Return(models.UserAccount{}, tt.authErr)
			} else {
				m.accounts.EXPECT().Authenticate(gomock.Any(), "alice", "pw1").Return(models.UserAccount{Username: "alice"}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), "alice").Return(models.Token{SignedString: "jwt-alice"}, nil)
				m.accounts.EXPECT().Usage(gomock.Any(), "alice").Return(aliceUsage, nil)
			}

			rec := httptest.NewRecorder()
			h.login(rec, httptest.NewRequest(http.MethodPost, "/api/user/login", jsonBody(t, req)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, rec))
			} else {
				assert.Equal(t, "Bearer jwt-alice", rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestLogin_TokenFailure(t *testing.T) {
	h, m := newTestHandler(t)

	m.accounts.EXPECT().Authenticate(gomock.Any(), "alice", "pw1").Return(models.UserAccount{Username: "alice"}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), "alice").Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := httptest.NewRecorder()
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "pw1"})
	h.login(rec, httptest.NewRequest(http.MethodPost, "/api/user/login", body))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeError(t, rec))
}

func TestUsage(t *testing.T) {
	h, m := newTestHandler(t)
	m.accounts.EXPECT().Usage(gomock.Any(), "alice").Return(aliceUsage, nil)

	rec := httptest.NewRecorder()
	h.usage(rec, authedRequest(http.MethodGet, "/api/user/usage", nil, "alice"))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.UsageSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 5, got.Remaining)
}

func TestUsage_NoUsername(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.usage(rec, httptest.NewRequest(http.MethodGet, "/api/user/usage", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgNoUsernameProvided, decodeError(t, rec))
}

func TestUpgrade(t *testing.T) {
	h, m := newTestHandler(t)
	premium := models.UsageSummary{Username: "alice", Plan: models.PlanPremium, MaxUses: -1, Remaining: -1}

	m.accounts.EXPECT().Upgrade(gomock.Any(), "alice", models.PlanPremium).Return(true, nil)
	m.accounts.EXPECT().Usage(gomock.Any(), "alice").Return(premium, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, models.UpgradeRequest{Plan: models.PlanPremium})
	h.upgrade(rec, authedRequest(http.MethodPost, "/api/user/upgrade", body, "alice"))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.UsageSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.PlanPremium, got.Plan)
}

func TestUpgrade_UnknownAccount(t *testing.T) {
	h, m := newTestHandler(t)
	m.accounts.EXPECT().Upgrade(gomock.Any(), "ghost", models.PlanPremium).Return(false, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, models.UpgradeRequest{Plan: models.PlanPremium})
	h.upgrade(rec, authedRequest(http.MethodPost, "/api/user/upgrade", body, "ghost"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, decodeError(t, rec))
}

func TestUpgrade_InvalidPlan(t *testing.T) {
	h, m := newTestHandler(t)
	m.accounts.EXPECT().Upgrade(gomock.Any(), "alice", models.Plan("gold")).Return(false, service.ErrInvalidInput)

	rec := httptest.NewRecorder()
	body := jsonBody(t, models.UpgradeRequest{Plan: "gold"})
	h.upgrade(rec, authedRequest(http.MethodPost, "/api/user/upgrade", body, "alice"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
