package accounts

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE accounts (
  id       TEXT PRIMARY KEY,
  domain   TEXT NOT NULL,
  name     TEXT NOT NULL DEFAULT '',
  email    TEXT NOT NULL DEFAULT '',
  avatar   TEXT NOT NULL DEFAULT '',
  position INTEGER NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_InsertAssignsPositions(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Insert(ctx, Record{ID: "a", Domain: "one.instructure.com"}))
	require.NoError(t, repo.Insert(ctx, Record{ID: "b", Domain: "two.instructure.com"}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, 0, got[0].Position)
	require.Equal(t, "b", got[1].ID)
	require.Equal(t, 1, got[1].Position)
}

func TestSQLiteRepository_InsertDuplicateFails(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Insert(ctx, Record{ID: "a", Domain: "one.instructure.com"}))
	require.Error(t, repo.Insert(ctx, Record{ID: "a", Domain: "one.instructure.com"}))
}

func TestSQLiteRepository_DeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Insert(ctx, Record{ID: id, Domain: id + ".instructure.com"}))
	}
	require.NoError(t, repo.Delete(ctx, "b"))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "c", got[1].ID)
}

func TestSQLiteRepository_DeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	require.NoError(t, repo.Delete(ctx, "ghost"))
}

func TestSQLiteRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Insert(ctx, Record{ID: "a", Domain: "one.instructure.com"}))
	require.NoError(t, repo.UpdateProfile(ctx, "a", "Alice", "alice@example.com", "https://cdn/avatar.png"))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alice", got[0].Name)
	require.Equal(t, "alice@example.com", got[0].Email)
	require.Equal(t, "https://cdn/avatar.png", got[0].Avatar)
}
