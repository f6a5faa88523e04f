package accounts

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	"github.com/ishauck/canvas-cli/internal/dbx"
	accountsrepo "github.com/ishauck/canvas-cli/internal/repositories/accounts"
	"github.com/ishauck/canvas-cli/internal/repositories/metadata"
	"github.com/ishauck/canvas-cli/internal/secrets"
)

// currentIndexKey is the metadata key holding the current account index.
// Absent key means no selection has been made.
const currentIndexKey = "current_account_index"

// noSelection marks an unset current index.
const noSelection = -1

// Registry is the process-wide account registry. Every mutation writes the
// updated rows (and the current-index metadata) to the database before the
// in-memory view changes, so a crash right after a mutation cannot silently
// revert it.
type Registry struct {
	mu       sync.Mutex
	db       *sql.DB
	secrets  secrets.Store
	accounts []Account
	current  int
}

// NewRegistry loads the persisted registry from db. A stored current index
// that no longer points inside the list is discarded.
func NewRegistry(ctx context.Context, db *sql.DB, secretStore secrets.Store) (*Registry, error) {
	r := &Registry{db: db, secrets: secretStore, current: noSelection}

	recs, err := accountsrepo.NewSQLiteRepository(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, rec := range recs {
		r.accounts = append(r.accounts, Account{
			ID:     rec.ID,
			Domain: rec.Domain,
			Name:   rec.Name,
			Email:  rec.Email,
			Avatar: rec.Avatar,
		})
	}

	raw, err := metadata.NewSQLiteRepository(db).Get(ctx, currentIndexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load current account index: %w", err)
	}
	if raw != nil {
		idx, err := strconv.Atoi(string(raw))
		if err == nil && idx >= 0 && idx < len(r.accounts) {
			r.current = idx
		} else {
			// Stale index from an interrupted run; drop it.
			_ = metadata.NewSQLiteRepository(db).Delete(ctx, currentIndexKey)
		}
	}

	return r, nil
}

// Add appends the account and stores its credential in the secret store.
// The credential is written first so a registered account always has a
// retrievable secret; the row insert is rolled back with a compensating
// secret delete if it fails.
func (r *Registry) Add(ctx context.Context, acc Account, credential string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.ID == acc.ID {
			return ErrDuplicateAccount
		}
	}

	if err := r.secrets.Set(ctx, acc.ID, credential); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return accountsrepo.NewSQLiteRepository(tx).Insert(ctx, accountsrepo.Record{
			ID:     acc.ID,
			Domain: acc.Domain,
			Name:   acc.Name,
			Email:  acc.Email,
			Avatar: acc.Avatar,
		})
	})
	if err != nil {
		_ = r.secrets.Delete(ctx, acc.ID)
		return fmt.Errorf("failed to persist account: %w", err)
	}

	r.accounts = append(r.accounts, acc)
	return nil
}

// Remove deletes the account row, its credential, and clears the current
// selection when the removed account was selected. A selection pointing
// after the removed entry is shifted so it keeps naming the same account.
func (r *Registry) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == noSelection {
		return ErrAccountNotFound
	}

	newCurrent := r.current
	switch {
	case r.current == idx:
		newCurrent = noSelection
	case r.current > idx:
		newCurrent = r.current - 1
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := accountsrepo.NewSQLiteRepository(tx).Delete(ctx, id); err != nil {
			return err
		}
		return persistIndex(ctx, metadata.NewSQLiteRepository(tx), newCurrent)
	})
	if err != nil {
		return fmt.Errorf("failed to remove account: %w", err)
	}

	if err := r.secrets.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	r.accounts = append(r.accounts[:idx], r.accounts[idx+1:]...)
	r.current = newCurrent
	return nil
}

// SetCurrent selects the account at index.
func (r *Registry) SetCurrent(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.accounts) {
		return ErrIndexOutOfRange
	}

	if err := persistIndex(ctx, metadata.NewSQLiteRepository(r.db), index); err != nil {
		return fmt.Errorf("failed to persist current account index: %w", err)
	}

	r.current = index
	return nil
}

// ClearCurrent drops the selection without touching the account list.
func (r *Registry) ClearCurrent(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := persistIndex(ctx, metadata.NewSQLiteRepository(r.db), noSelection); err != nil {
		return fmt.Errorf("failed to clear current account index: %w", err)
	}

	r.current = noSelection
	return nil
}

// UpdateProfile refreshes display metadata for the account (name, email,
// avatar) from a freshly fetched remote profile.
func (r *Registry) UpdateProfile(ctx context.Context, id, name, email, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == noSelection {
		return ErrAccountNotFound
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return accountsrepo.NewSQLiteRepository(tx).UpdateProfile(ctx, id, name, email, avatar)
	})
	if err != nil {
		return fmt.Errorf("failed to update account profile: %w", err)
	}

	r.accounts[idx].Name = name
	r.accounts[idx].Email = email
	r.accounts[idx].Avatar = avatar
	return nil
}

// List returns a copy of the accounts in display order.
func (r *Registry) List() []Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// Current returns the selected account, its index, and whether a selection
// exists.
func (r *Registry) Current() (Account, int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == noSelection {
		return Account{}, noSelection, false
	}
	return r.accounts[r.current], r.current, true
}

// Len reports the number of registered accounts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

// indexOf returns the position of id, or noSelection. Caller holds the lock.
func (r *Registry) indexOf(id string) int {
	for i, acc := range r.accounts {
		if acc.ID == id {
			return i
		}
	}
	return noSelection
}

func persistIndex(ctx context.Context, repo metadata.Repository, index int) error {
	if index == noSelection {
		return repo.Delete(ctx, currentIndexKey)
	}
	return repo.Set(ctx, currentIndexKey, []byte(strconv.Itoa(index)))
}
