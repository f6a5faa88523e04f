package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ishauck/canvas-cli/internal/accounts"
	"github.com/ishauck/canvas-cli/internal/canvas"
	"github.com/ishauck/canvas-cli/internal/logging"
	"github.com/ishauck/canvas-cli/internal/repositories/metadata"
	"github.com/ishauck/canvas-cli/internal/secrets"
	"github.com/ishauck/canvas-cli/internal/session"
	"github.com/ishauck/canvas-cli/internal/storage"
)

// fakeClient implements canvas.Client with canned responses and per-call
// counters, so tests can assert what went remote.
type fakeClient struct {
	profile    *canvas.Profile
	profileErr error
	courses    []canvas.Course
	coursesErr error
	colors     map[string]string
	cards      []canvas.DashboardCard
	pages      map[string]*canvas.FeedPage
	pagesErr   error

	verifyCalls  int
	coursesCalls int
	colorsCalls  int
	cardsCalls   int
	pageCalls    map[string]int
}

func (f *fakeClient) VerifyIdentity(ctx context.Context) (*canvas.Profile, error) {
	f.verifyCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeClient) ListCourses(ctx context.Context) ([]canvas.Course, error) {
	f.coursesCalls++
	if f.coursesErr != nil {
		return nil, f.coursesErr
	}
	return f.courses, nil
}

func (f *fakeClient) ListColors(ctx context.Context) (map[string]string, error) {
	f.colorsCalls++
	return f.colors, nil
}

func (f *fakeClient) ListDashboardCards(ctx context.Context) ([]canvas.DashboardCard, error) {
	f.cardsCalls++
	return f.cards, nil
}

func (f *fakeClient) FetchActivityFeed(ctx context.Context, cursor string) (*canvas.FeedPage, error) {
	if f.pageCalls == nil {
		f.pageCalls = make(map[string]int)
	}
	f.pageCalls[cursor]++
	if f.pagesErr != nil {
		return nil, f.pagesErr
	}
	page, ok := f.pages[cursor]
	if !ok {
		return &canvas.FeedPage{}, nil
	}
	return page, nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// setupServices wires the service layer over a temp database, an in-memory
// secret store, and the given fake client for every domain.
func setupServices(t *testing.T, fc *fakeClient) (*Services, *accounts.Registry) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reg, err := accounts.NewRegistry(ctx, db, secrets.NewMemoryStore())
	require.NoError(t, err)

	factory := func(domain, token string) canvas.Client { return fc }
	brandFetch := func(ctx context.Context, domain string) (canvas.BrandConfig, error) {
		return canvas.BrandConfig{"ic-brand-primary": "#394B58"}, nil
	}

	return New(reg, metadata.NewSQLiteRepository(db), factory, brandFetch, discardLogger()), reg
}

func testSession(acc accounts.Account) *session.Session {
	return &session.Session{Account: acc, Token: "token"}
}
