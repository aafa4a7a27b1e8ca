// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-property-analyzer/internal/app"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/utils"
	"github.com/MKhiriev/go-property-analyzer/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.AccountService.Register(ctx, req); err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	h.respondWithSession(ctx, w, r, req.Username, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.services.AccountService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	logger.FromRequest(r).Debug().Str("username", account.Username).Msg("user successfully logged in")

	h.respondWithSession(ctx, w, r, account.Username, http.StatusOK)
}

// respondWithSession issues a token for username into the Authorization
// header and writes the account usage summary as the body.
func (h *Handler) respondWithSession(ctx context.Context, w http.ResponseWriter, r *http.Request, username string, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(ctx, username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	usage, err := h.services.AccountService.Usage(ctx, username)
	if err != nil {
		writeServiceError(w, r, err, "usage lookup failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, usage, status)
}

func (h *Handler) usage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	usage, err := h.services.AccountService.Usage(ctx, username)
	if err != nil {
		writeServiceError(w, r, err, "usage lookup failed")
		return
	}

	utils.WriteJSON(w, usage, http.StatusOK)
}

func (h *Handler) upgrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpgradeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	changed, err := h.services.AccountService.Upgrade(ctx, username, req.Plan)
	if err != nil {
		writeServiceError(w, r, err, "plan change failed")
		return
	}
	if !changed {
		logger.FromRequest(r).Warn().Str("username", username).Msg("plan change for unknown account")
		utils.WriteError(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}

	usage, err := h.services.AccountService.Usage(ctx, username)
	if err != nil {
		writeServiceError(w, r, err, "usage lookup failed")
		return
	}

	utils.WriteJSON(w, usage, http.StatusOK)
}

// decodeJSON reads a size-limited JSON body into dst. On failure it answers
// 400 and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// usernameFromRequest returns the account name stored by the auth
// middleware, answering 401 when it is missing.
func usernameFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok || username == "" {
		logger.FromRequest(r).Err(ErrNoUsernameInContext).Send()
		utils.WriteError(w, app.MsgNoUsernameProvided, http.StatusUnauthorized)
		return "", false
	}
	return username, true
}
