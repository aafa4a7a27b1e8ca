// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/utils"
	"github.com/MKhiriev/go-property-analyzer/models"
)

const (
	registerPath = "/api/user/register"
	loginPath    = "/api/user/login"
	usagePath    = "/api/user/usage"
	upgradePath  = "/api/user/upgrade"
	analysisPath = "/api/analysis/"
	historyPath  = "/api/analysis/history"
	statusPath   = "/api/status"
	versionPath  = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// for the server at cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.Adapter, log *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout),
		logger: log,
	}, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It posts the form to
// POST /api/user/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UsageSummary, error) {
	return h.authenticate(ctx, registerPath, req)
}

// Login implements [ServerAdapter] via POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UsageSummary, error) {
	return h.authenticate(ctx, loginPath, req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.UsageSummary, error) {
	var usage models.UsageSummary

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&usage).
		Post(path)
	if err != nil {
		return models.UsageSummary{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UsageSummary{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UsageSummary{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	h.SetToken(token)
	return usage, nil
}

// Usage implements [ServerAdapter] via GET /api/user/usage.
func (h *httpServerAdapter) Usage(ctx context.Context) (models.UsageSummary, error) {
	var usage models.UsageSummary

	resp, err := h.authedRequest(ctx).SetResult(&usage).Get(usagePath)
	if err != nil {
		return models.UsageSummary{}, fmt.Errorf("usage request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UsageSummary{}, err
	}

	return usage, nil
}

// Upgrade implements [ServerAdapter] via POST /api/user/upgrade.
func (h *httpServerAdapter) Upgrade(ctx context.Context, req models.UpgradeRequest) (models.UsageSummary, error) {
	var usage models.UsageSummary

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&usage).
		Post(upgradePath)
	if err != nil {
		return models.UsageSummary{}, fmt.Errorf("upgrade request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UsageSummary{}, err
	}

	return usage, nil
}

// Analyze implements [ServerAdapter] via POST /api/analysis/.
func (h *httpServerAdapter) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	var result models.AnalysisResult

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(analysisPath)
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("analysis request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AnalysisResult{}, err
	}

	return result, nil
}

// History implements [ServerAdapter] via GET /api/analysis/history. A
// non-positive limit lets the server pick its default.
func (h *httpServerAdapter) History(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	var records []models.AnalysisRecord

	req := h.authedRequest(ctx).SetResult(&records)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get(historyPath)
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// Status implements [ServerAdapter] via GET /api/status.
func (h *httpServerAdapter) Status(ctx context.Context) (models.ServiceStatus, error) {
	var status models.ServiceStatus

	resp, err := h.client.R().SetContext(ctx).SetResult(&status).Get(statusPath)
	if err != nil {
		return models.ServiceStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceStatus{}, err
	}

	return status, nil
}

// Version implements [ServerAdapter] via GET /api/version/. The body is
// plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
