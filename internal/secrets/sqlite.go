package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ishauck/canvas-cli/internal/cryptox"
	"github.com/ishauck/canvas-cli/internal/dbx"
)

// SQLiteStore keeps credentials as AES-GCM ciphertext rows. The vault key is
// provided by the caller (see cryptox.LoadOrCreateVaultKey) and is never
// written to the database.
type SQLiteStore struct {
	db  dbx.DBTX
	key []byte
}

func NewSQLiteStore(db dbx.DBTX, vaultKey []byte) *SQLiteStore {
	return &SQLiteStore{db: db, key: vaultKey}
}

func (s *SQLiteStore) Get(ctx context.Context, accountID string) (string, error) {
	var ciphertext, nonce []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT ciphertext, nonce FROM secrets WHERE key = ?`, storageKey(accountID),
	).Scan(&ciphertext, &nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}

	plaintext, err := cryptox.Open(ciphertext, nonce, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt credential: %w", err)
	}
	return string(plaintext), nil
}

func (s *SQLiteStore) Set(ctx context.Context, accountID, credential string) error {
	ciphertext, nonce, err := cryptox.Seal([]byte(credential), s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO secrets (key, ciphertext, nonce) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET ciphertext = excluded.ciphertext, nonce = excluded.nonce
	`, storageKey(accountID), ciphertext, nonce)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, accountID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM secrets WHERE key = ?`, storageKey(accountID))
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
