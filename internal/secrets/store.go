// Package secrets stores account credentials separately from the rest of the
// registry. The two stores are joined only by account id, so registry rows
// never carry token material.
//
// Stored keys use the form "account:{accountID}".
package secrets

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no credential exists for the account.
var ErrNotFound = errors.New("credential not found")

// Store is the secret store adapter: per-key atomic get/set/delete of one
// credential per account. Implementations must never persist plaintext.
type Store interface {
	Get(ctx context.Context, accountID string) (string, error)
	Set(ctx context.Context, accountID, credential string) error
	Delete(ctx context.Context, accountID string) error
}

func storageKey(accountID string) string {
	return "account:" + accountID
}
