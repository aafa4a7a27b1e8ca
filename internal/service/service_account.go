// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/crypto"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/store"
	"github.com/MKhiriev/go-property-analyzer/internal/validators"
	"github.com/MKhiriev/go-property-analyzer/models"
)

// accountService is the concrete implementation of AccountService on top of
// an AccountRepository. Every mutation goes through the repository's Update,
// which serializes writers and persists before returning.
type accountService struct {
	accountRepository store.AccountRepository
	hasher            crypto.PasswordHasher
	validator         validators.Validator

	// freeMaxUses is the ceiling written to new and downgraded free accounts.
	freeMaxUses int

	// quotaWindow is the age LastReset must exceed before UsageCount
	// restarts from zero.
	quotaWindow time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an AccountService. Quota settings come from
// cfg; zero values fall back to the defaults.
func NewAccountService(accountRepository store.AccountRepository, hasher crypto.PasswordHasher, cfg config.App, log *logger.Logger) AccountService {
	freeMaxUses := cfg.FreeMaxUses
	if freeMaxUses <= 0 {
		freeMaxUses = models.DefaultFreeMaxUses
	}
	window := cfg.QuotaWindow
	if window <= 0 {
		window = config.DefaultQuotaWindow
	}

	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		validator:         validators.NewAccountValidator(),
		freeMaxUses:       freeMaxUses,
		quotaWindow:       window,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            log,
	}
}

func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*accountService.Register").Str("username", req.Username).Msg("invalid registration data")
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	plan, _ := models.ParsePlan(string(req.Plan))

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	now := a.now()
	account := models.UserAccount{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Plan:         plan,
		UsageCount:   0,
		MaxUses:      a.maxUsesFor(plan),
		CreatedAt:    now,
		LastReset:    now,
	}

	if err = a.accountRepository.Create(ctx, account); err != nil {
		log.Err(err).Str("func", "*accountService.Register").Str("username", req.Username).Msg("account creation failed")
		return mapStoreError(err)
	}

	log.Info().Str("username", req.Username).Str("plan", plan.String()).Msg("account registered")
	return nil
}

func (a *accountService) Authenticate(ctx context.Context, username, password string) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.LoginRequest{Username: username, Password: password}); err != nil {
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	account, err := a.accountRepository.Find(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Authenticate").Str("username", username).Msg("account lookup failed")
		return models.UserAccount{}, mapStoreError(err)
	}

	if !a.hasher.Verify(account.PasswordHash, password) {
		log.Warn().Str("func", "*accountService.Authenticate").Str("username", username).Msg("wrong password")
		return models.UserAccount{}, ErrInvalidCredentials
	}

	if a.hasher.NeedsRehash(account.PasswordHash) {
		account = a.rehash(ctx, account, password)
	}

	return account, nil
}

// rehash replaces an outdated password hash after a successful login. A
// failure is logged and the login still succeeds.
func (a *accountService) rehash(ctx context.Context, account models.UserAccount, password string) models.UserAccount {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.rehash").Msg("password rehash failed")
		return account
	}

	updated, err := a.accountRepository.Update(ctx, account.Username, func(acc *models.UserAccount) bool {
		acc.PasswordHash = hash
		return true
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.rehash").Str("username", account.Username).Msg("failed to store upgraded password hash")
		return account
	}

	log.Info().Str("username", account.Username).Msg("password hash upgraded")
	return updated
}

func (a *accountService) HasQuota(ctx context.Context, username string) (bool, error) {
	account, err := a.refreshWindow(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return account.HasQuotaLeft(), nil
}

// refreshWindow applies the lazy quota reset and returns the current account.
func (a *accountService) refreshWindow(ctx context.Context, username string) (models.UserAccount, error) {
	now := a.now()

	account, err := a.accountRepository.Update(ctx, username, func(acc *models.UserAccount) bool {
		if now.Sub(acc.LastReset) <= a.quotaWindow {
			return false
		}
		acc.UsageCount = 0
		acc.LastReset = now
		return true
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.refreshWindow").Str("username", username).
			Msg("quota window refresh failed")
		return models.UserAccount{}, mapStoreError(err)
	}

	return account, nil
}

func (a *accountService) RecordUsage(ctx context.Context, username string) error {
	_, err := a.accountRepository.Update(ctx, username, func(acc *models.UserAccount) bool {
		acc.UsageCount++
		return true
	})
	if errors.Is(err, store.ErrAccountNotFound) {
		return nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.RecordUsage").Str("username", username).
			Msg("failed to record usage")
		return mapStoreError(err)
	}

	return nil
}

func (a *accountService) PlanOf(ctx context.Context, username string) models.Plan {
	account, err := a.accountRepository.Find(ctx, username)
	if err != nil || account.Plan == "" {
		return models.PlanFree
	}
	return account.Plan
}

func (a *accountService) Upgrade(ctx context.Context, username string, plan models.Plan) (bool, error) {
	if err := a.validator.Validate(ctx, models.UpgradeRequest{Plan: plan}); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	plan, _ = models.ParsePlan(string(plan))

	_, err := a.accountRepository.Update(ctx, username, func(acc *models.UserAccount) bool {
		acc.Plan = plan
		acc.MaxUses = a.maxUsesFor(plan)
		return true
	})
	if errors.Is(err, store.ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.Upgrade").Str("username", username).
			Msg("plan change failed")
		return true, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Str("plan", plan.String()).Msg("plan changed")
	return true, nil
}

func (a *accountService) Usage(ctx context.Context, username string) (models.UsageSummary, error) {
	account, err := a.refreshWindow(ctx, username)
	if err != nil {
		return models.UsageSummary{}, err
	}

	return models.UsageSummary{
		Username:  account.Username,
		Plan:      account.Plan,
		Used:      account.UsageCount,
		MaxUses:   account.MaxUses,
		Remaining: account.RemainingUses(),
		NextReset: account.LastReset.Add(a.quotaWindow),
	}, nil
}

func (a *accountService) maxUsesFor(plan models.Plan) int {
	if plan == models.PlanPremium {
		return models.UnlimitedUses
	}
	return a.freeMaxUses
}

// mapStoreError translates account repository errors into service errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrAccountAlreadyExists):
		return ErrDuplicateUser
	case errors.Is(err, store.ErrAccountNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrPersistence):
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	default:
		return err
	}
}
