// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/models"
)

// accountFileRepository is the JSON-file implementation of
// [AccountRepository]. The whole table is loaded once at construction and
// rewritten on every mutation.
//
// Writes are serialized by mu and go through a temp file in the target
// directory which is fsynced and renamed over the table, so a crash leaves
// either the old or the new file on disk. The in-memory table is swapped only
// after the rename succeeded.
type accountFileRepository struct {
	path   string
	logger *logger.Logger

	mu       sync.Mutex
	accounts map[string]models.UserAccount
}

// NewAccountFileRepository constructs an [AccountRepository] backed by the
// JSON file at path. A missing file yields an empty table. An unreadable or
// corrupt file is logged and also yields an empty table, so the next
// successful write replaces it.
func NewAccountFileRepository(path string, log *logger.Logger) AccountRepository {
	r := &accountFileRepository{
		path:     path,
		logger:   log,
		accounts: make(map[string]models.UserAccount),
	}

	accounts, err := r.load()
	if err != nil {
		log.Warn().Err(err).Str("func", "NewAccountFileRepository").Str("path", path).
			Msg("account table could not be loaded, starting with an empty table")
		return r
	}
	r.accounts = accounts

	log.Debug().Str("func", "NewAccountFileRepository").Int("accounts", len(accounts)).Msg("account table loaded")
	return r
}

func (r *accountFileRepository) Create(ctx context.Context, account models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Username]; ok {
		return ErrAccountAlreadyExists
	}

	next := maps.Clone(r.accounts)
	next[account.Username] = account
	if err := r.persist(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountFileRepository.Create").
			Str("username", account.Username).Msg("failed to persist new account")
		return err
	}

	r.accounts = next
	return nil
}

func (r *accountFileRepository) Find(ctx context.Context, username string) (models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[username]
	if !ok {
		return models.UserAccount{}, ErrAccountNotFound
	}
	return account, nil
}

func (r *accountFileRepository) Update(ctx context.Context, username string, mutate func(account *models.UserAccount) bool) (models.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[username]
	if !ok {
		return models.UserAccount{}, ErrAccountNotFound
	}

	if !mutate(&account) {
		return account, nil
	}
	// the key never changes
	account.Username = username

	next := maps.Clone(r.accounts)
	next[username] = account
	if err := r.persist(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountFileRepository.Update").
			Str("username", username).Msg("failed to persist account update")
		return r.accounts[username], err
	}

	r.accounts = next
	return account, nil
}

func (r *accountFileRepository) All(ctx context.Context) map[string]models.UserAccount {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.accounts)
}

func (r *accountFileRepository) load() (map[string]models.UserAccount, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]models.UserAccount), nil
		}
		return nil, fmt.Errorf("read account file: %w", err)
	}

	accounts := make(map[string]models.UserAccount)
	if err = json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode account file: %w", err)
	}

	for username, account := range accounts {
		if account.Username == "" {
			account.Username = username
			accounts[username] = account
		}
	}

	return accounts, nil
}

// persist writes accounts to a temp file next to the target and renames it
// into place.
func (r *accountFileRepository) persist(accounts map[string]models.UserAccount) error {
	payload, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}

	dir := filepath.Dir(r.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir: %w", ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if err = writeAndSync(tmp, payload); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %w", ErrPersistence, err)
	}

	if err = os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace account file: %w", ErrPersistence, err)
	}

	return nil
}

func writeAndSync(f *os.File, payload []byte) error {
	if _, err := f.Write(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
