package services

import (
	"context"
	"sync"

	"github.com/ishauck/canvas-cli/internal/cache"
	"github.com/ishauck/canvas-cli/internal/canvas"
	"github.com/ishauck/canvas-cli/internal/session"
)

// feedStream is the accumulated activity feed for one account: the items
// loaded so far in arrival order plus the cursor for the next page. An empty
// cursor after loading means the stream is exhausted.
type feedStream struct {
	items      []canvas.FeedItem
	nextCursor string
	loaded     bool
}

// FeedService accumulates activity stream pages per account. Pages are
// cached individually, so reloading the first page after a refresh does not
// refetch pages that are still fresh.
type FeedService struct {
	cache     *cache.Cache
	newClient ClientFactory

	mu      sync.Mutex
	streams map[string]*feedStream
}

func NewFeedService(c *cache.Cache, newClient ClientFactory) *FeedService {
	return &FeedService{cache: c, newClient: newClient, streams: make(map[string]*feedStream)}
}

// LoadFirst fetches the first feed page and resets the accumulation to it.
func (s *FeedService) LoadFirst(ctx context.Context, sess *session.Session) ([]canvas.FeedItem, error) {
	page, err := s.fetchPage(ctx, sess, "")
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.streams[sess.Account.ID] = &feedStream{
		items:      append([]canvas.FeedItem(nil), page.Items...),
		nextCursor: page.NextCursor,
		loaded:     true,
	}
	return s.itemsLocked(sess.Account.ID), nil
}

// LoadMore appends the next page to the accumulation and returns all items
// loaded so far. Without a prior LoadFirst it loads the first page; on an
// exhausted stream it returns the current items unchanged.
func (s *FeedService) LoadMore(ctx context.Context, sess *session.Session) ([]canvas.FeedItem, error) {
	s.mu.Lock()
	st, ok := s.streams[sess.Account.ID]
	if !ok || !st.loaded {
		s.mu.Unlock()
		return s.LoadFirst(ctx, sess)
	}
	cursor := st.nextCursor
	s.mu.Unlock()

	if cursor == "" {
		return s.Items(sess.Account.ID), nil
	}

	page, err := s.fetchPage(ctx, sess, cursor)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Skip the append if a concurrent call already advanced past this cursor.
	if st.nextCursor == cursor {
		st.items = append(st.items, page.Items...)
		st.nextCursor = page.NextCursor
	}
	return s.itemsLocked(sess.Account.ID), nil
}

// Items returns a copy of the accumulated feed for the account.
func (s *FeedService) Items(accountID string) []canvas.FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked(accountID)
}

// HasMore reports whether another page can be loaded. It is false before the
// first load and once the stream is exhausted.
func (s *FeedService) HasMore(accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.streams[accountID]
	return ok && st.loaded && st.nextCursor != ""
}

// Refresh clears the accumulation and marks the cached pages stale, so the
// next LoadFirst refetches from the top of the stream.
func (s *FeedService) Refresh(accountID string) {
	s.mu.Lock()
	delete(s.streams, accountID)
	s.mu.Unlock()

	s.cache.InvalidateKind(accountID, cache.KindFeedPage)
}

// Drop discards the accumulation for a removed account.
func (s *FeedService) Drop(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.streams, accountID)
}

func (s *FeedService) fetchPage(ctx context.Context, sess *session.Session, cursor string) (*canvas.FeedPage, error) {
	k := cache.Key{AccountID: sess.Account.ID, Kind: cache.KindFeedPage, Cursor: cursor}
	return cache.Fetch(ctx, s.cache, k, func(ctx context.Context) (*canvas.FeedPage, error) {
		return s.newClient(sess.Account.Domain, sess.Token).FetchActivityFeed(ctx, cursor)
	})
}

// itemsLocked copies the accumulated items. Caller holds the lock.
func (s *FeedService) itemsLocked(accountID string) []canvas.FeedItem {
	st, ok := s.streams[accountID]
	if !ok {
		return nil
	}
	out := make([]canvas.FeedItem, len(st.items))
	copy(out, st.items)
	return out
}
