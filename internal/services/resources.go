package services

import (
	"context"

	"github.com/ishauck/canvas-cli/internal/cache"
	"github.com/ishauck/canvas-cli/internal/canvas"
	"github.com/ishauck/canvas-cli/internal/session"
)

// ResourceService serves the session's remote resources through the cache:
// repeat reads hit memory, explicit refresh marks entries stale so the next
// read refetches.
type ResourceService struct {
	cache     *cache.Cache
	newClient ClientFactory
}

func NewResourceService(c *cache.Cache, newClient ClientFactory) *ResourceService {
	return &ResourceService{cache: c, newClient: newClient}
}

func (s *ResourceService) client(sess *session.Session) canvas.Client {
	return s.newClient(sess.Account.Domain, sess.Token)
}

func key(sess *session.Session, kind cache.Kind) cache.Key {
	return cache.Key{AccountID: sess.Account.ID, Kind: kind}
}

// Profile returns the current-user profile for the session.
func (s *ResourceService) Profile(ctx context.Context, sess *session.Session) (*canvas.Profile, error) {
	return cache.Fetch(ctx, s.cache, key(sess, cache.KindProfile), func(ctx context.Context) (*canvas.Profile, error) {
		return s.client(sess).VerifyIdentity(ctx)
	})
}

// Courses returns the session's active courses in display order.
func (s *ResourceService) Courses(ctx context.Context, sess *session.Session) ([]canvas.Course, error) {
	return cache.Fetch(ctx, s.cache, key(sess, cache.KindCourses), func(ctx context.Context) ([]canvas.Course, error) {
		return s.client(sess).ListCourses(ctx)
	})
}

// Colors returns the user's custom asset colors.
func (s *ResourceService) Colors(ctx context.Context, sess *session.Session) (map[string]string, error) {
	return cache.Fetch(ctx, s.cache, key(sess, cache.KindColors), func(ctx context.Context) (map[string]string, error) {
		return s.client(sess).ListColors(ctx)
	})
}

// DashboardCards returns the user's dashboard cards.
func (s *ResourceService) DashboardCards(ctx context.Context, sess *session.Session) ([]canvas.DashboardCard, error) {
	return cache.Fetch(ctx, s.cache, key(sess, cache.KindDashboardCards), func(ctx context.Context) ([]canvas.DashboardCard, error) {
		return s.client(sess).ListDashboardCards(ctx)
	})
}

// Refresh marks every cached resource for the account stale. Used on
// pull-to-refresh and on account switch; the next read of each resource
// refetches while the old value stays readable until then.
func (s *ResourceService) Refresh(accountID string) {
	for _, kind := range []cache.Kind{cache.KindProfile, cache.KindCourses, cache.KindColors, cache.KindDashboardCards, cache.KindFeedPage} {
		s.cache.InvalidateKind(accountID, kind)
	}
}

// RefreshDashboardCards marks the dashboard cards stale, along with the
// course list: card membership follows course enrollment state, so the two
// must not drift apart.
func (s *ResourceService) RefreshDashboardCards(accountID string) {
	s.cache.InvalidateKind(accountID, cache.KindDashboardCards)
	s.cache.InvalidateKind(accountID, cache.KindCourses)
}
