// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/utils"
	"github.com/MKhiriev/go-property-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	utils.WriteError(w, msg, status)
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestRegister_Success(t *testing.T) {
	want := models.UsageSummary{Username: "alice", Plan: models.PlanFree, MaxUses: 5, Remaining: 5}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, registerPath, r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.Header().Set("Authorization", "Bearer token-123")
		_, _ = utils.WriteJSON(w, want, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "pw1", Email: "a@x"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "token-123", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusConflict, "username already exists")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username already exists")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.UsageSummary{Username: "alice"}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw1"})

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, loginPath, r.URL.Path)
		writeAPIError(w, http.StatusUnauthorized, "invalid login/password")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticatedRequestsCarryToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case usagePath:
			_, _ = utils.WriteJSON(w, models.UsageSummary{Username: "alice", Used: 2}, http.StatusOK)
		case upgradePath:
			var req models.UpgradeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, models.PlanPremium, req.Plan)
			_, _ = utils.WriteJSON(w, models.UsageSummary{Username: "alice", Plan: models.PlanPremium, MaxUses: -1}, http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  token-abc ")

	usage, err := a.Usage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, usage.Used)

	usage, err = a.Upgrade(context.Background(), models.UpgradeRequest{Plan: models.PlanPremium})
	require.NoError(t, err)
	assert.Equal(t, models.PlanPremium, usage.Plan)
}

func TestAnalyze(t *testing.T) {
	want := models.AnalysisResult{
		ID:      "id-1",
		Text:    "analysis",
		Metrics: models.NewMetricSet(),
		Backend: "gemini",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, analysisPath, r.URL.Path)
		var req models.AnalysisRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "1 Elm St", req.Property.Address)
		assert.Len(t, req.Comparables, 1)
		_, _ = utils.WriteJSON(w, want, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Analyze(context.Background(), models.AnalysisRequest{
		Property:    models.PropertyInput{Address: "1 Elm St"},
		Comparables: []models.ComparableEntry{{Price: 100}},
	})

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Metrics, got.Metrics)
}

func TestAnalyze_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeAPIError(w, tt.status, "message")
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Analyze(context.Background(), models.AnalysisRequest{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHistory_LimitQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, historyPath, r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("limit"))
		_, _ = utils.WriteJSON(w, []models.AnalysisRecord{{ID: "a"}, {ID: "b"}}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).History(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHistory_NoLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		writeAPIError(w, http.StatusNotImplemented, "analysis history is not available")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).History(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestStatusAndVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case statusPath:
			_, _ = utils.WriteJSON(w, models.ServiceStatus{Available: true, Backend: "openai"}, http.StatusOK)
		case versionPath:
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("1.2.3\n"))
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	status, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStatus{Available: true, Backend: "openai"}, status)

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Usage(context.Background())
	assert.Error(t, err)
}
