package canvas

import "context"

// Client is the remote resource contract for one (domain, credential) pair.
type Client interface {
	// VerifyIdentity fetches the current-user profile. It doubles as the
	// credential check during account creation.
	VerifyIdentity(ctx context.Context) (*Profile, error)

	// ListCourses returns active-enrollment courses sorted by name,
	// case-insensitively and locale-aware.
	ListCourses(ctx context.Context) ([]Course, error)

	// ListColors returns the user's custom asset colors keyed by asset
	// string (e.g. "course_123").
	ListColors(ctx context.Context) (map[string]string, error)

	// ListDashboardCards returns the user's dashboard cards in dashboard
	// order.
	ListDashboardCards(ctx context.Context) ([]DashboardCard, error)

	// FetchActivityFeed returns one page of the activity stream. An empty
	// cursor fetches the first page; otherwise cursor must be a
	// continuation token from a previous page. The returned NextCursor is
	// empty when the stream is exhausted.
	FetchActivityFeed(ctx context.Context, cursor string) (*FeedPage, error)
}
