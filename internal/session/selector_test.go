package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishauck/canvas-cli/internal/accounts"
	"github.com/ishauck/canvas-cli/internal/secrets"
	"github.com/ishauck/canvas-cli/internal/storage"
)

func setupSelector(t *testing.T) (*Selector, *accounts.Registry, secrets.Store) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := secrets.NewMemoryStore()
	reg, err := accounts.NewRegistry(ctx, db, store)
	require.NoError(t, err)

	return NewSelector(reg, store), reg, store
}

func TestResolve_EmptyRegistry(t *testing.T) {
	sel, _, _ := setupSelector(t)

	state, route := sel.Resolve()
	assert.Equal(t, StateNoAccounts, state)
	assert.Equal(t, RouteLogin, route)
}

func TestResolve_SingleAccountRoutesToMain(t *testing.T) {
	ctx := context.Background()
	sel, reg, _ := setupSelector(t)

	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "a", Domain: "a.instructure.com"}, "t1"))

	state, route := sel.Resolve()
	assert.Equal(t, StateSingleAccount, state)
	assert.Equal(t, RouteMain, route)
}

func TestResolve_MultipleWithoutSelectionRoutesToChooser(t *testing.T) {
	ctx := context.Background()
	sel, reg, _ := setupSelector(t)

	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "a", Domain: "a.instructure.com"}, "t1"))
	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "b", Domain: "b.instructure.com"}, "t2"))

	state, route := sel.Resolve()
	assert.Equal(t, StateNoSelection, state)
	assert.Equal(t, RouteChooser, route)
}

func TestResolve_ExplicitSelectionWins(t *testing.T) {
	ctx := context.Background()
	sel, reg, _ := setupSelector(t)

	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "a", Domain: "a.instructure.com"}, "t1"))
	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "b", Domain: "b.instructure.com"}, "t2"))
	require.NoError(t, reg.SetCurrent(ctx, 1))

	state, route := sel.Resolve()
	assert.Equal(t, StateSelected, state)
	assert.Equal(t, RouteMain, route)
}

func TestResolve_ScenarioWalk(t *testing.T) {
	ctx := context.Background()
	sel, reg, _ := setupSelector(t)

	// 0 accounts.
	state, _ := sel.Resolve()
	require.Equal(t, StateNoAccounts, state)

	// 1 account: Open auto-selects index 0.
	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "a", Domain: "a.instructure.com"}, "t1"))
	_, err := sel.Open(ctx)
	require.NoError(t, err)
	state, _ = sel.Resolve()
	require.Equal(t, StateSelected, state)

	// Adding a second account keeps the existing selection.
	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "b", Domain: "b.instructure.com"}, "t2"))
	state, _ = sel.Resolve()
	require.Equal(t, StateSelected, state)

	// Clearing the selection with several accounts lands in the chooser.
	require.NoError(t, reg.ClearCurrent(ctx))
	state, route := sel.Resolve()
	require.Equal(t, StateNoSelection, state)
	require.Equal(t, RouteChooser, route)
}

func TestOpen_AutoSelectsSingleAccount(t *testing.T) {
	ctx := context.Background()
	sel, reg, _ := setupSelector(t)

	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "a", Domain: "a.instructure.com", Name: "Alice"}, "token-a"))

	sess, err := sel.Open(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", sess.Account.ID)
	assert.Equal(t, "token-a", sess.Token)

	_, idx, ok := reg.Current()
	require.True(t, ok, "auto-selection must be persisted")
	assert.Equal(t, 0, idx)
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()
	sel, reg, _ := setupSelector(t)

	_, err := sel.Open(ctx)
	assert.ErrorIs(t, err, ErrNoAccounts)

	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "a", Domain: "a.instructure.com"}, "t1"))
	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "b", Domain: "b.instructure.com"}, "t2"))

	_, err = sel.Open(ctx)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestOpen_RemovingSelectedFallsBack(t *testing.T) {
	ctx := context.Background()
	sel, reg, _ := setupSelector(t)

	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "a", Domain: "a.instructure.com"}, "t1"))
	require.NoError(t, reg.Add(ctx, accounts.Account{ID: "b", Domain: "b.instructure.com"}, "t2"))
	require.NoError(t, reg.SetCurrent(ctx, 0))

	require.NoError(t, reg.Remove(ctx, "a"))

	state, route := sel.Resolve()
	assert.Equal(t, StateSingleAccount, state)
	assert.Equal(t, RouteMain, route)

	require.NoError(t, reg.Remove(ctx, "b"))
	state, route = sel.Resolve()
	assert.Equal(t, StateNoAccounts, state)
	assert.Equal(t, RouteLogin, route, "removing the last account routes to onboarding")
}
