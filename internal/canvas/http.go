package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	profilePath = "/api/v1/users/self"
	colorsPath  = "/api/v1/users/self/colors?no_verifiers=1"
	cardsPath   = "/api/v1/dashboard/dashboard_cards?no_verifiers=1"
	feedPath    = "/api/v1/users/self/activity_stream?only_active_courses=true&per_page=20"

	// The course query matches the mobile dashboard: active enrollments
	// with every sub-resource the course screens render.
	coursesPath = "/api/v1/courses?per_page=100&enrollment_state=active&state[]=current_and_concluded" +
		"&include[]=banner_image&include[]=course_image&include[]=current_grading_period_scores" +
		"&include[]=favorites&include[]=permissions&include[]=sections&include[]=syllabus_body" +
		"&include[]=term&include[]=total_scores&include[]=observed_users&include[]=settings" +
		"&include[]=grading_scheme&include[]=tabs&no_verifiers=1"
)

// HTTPClient implements Client over HTTPS JSON for one (domain, token) pair.
type HTTPClient struct {
	baseURL string
	token   string
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// New returns a client for https://{domain} using the given access token.
// A nil httpClient falls back to http.DefaultClient (transport-default
// timeouts; the app configures its own client in main).
func New(domain, token string, httpClient *http.Client) *HTTPClient {
	return NewWithBaseURL("https://"+domain, token, httpClient)
}

// NewWithBaseURL is New with an explicit base URL. Used by tests to point
// the client at a local server.
func NewWithBaseURL(baseURL, token string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), token: token, hc: httpClient}
}

// get issues an authorized GET for url, decodes the JSON body into v, and
// returns the response headers. Errors are classified per the package
// taxonomy; the raw body of non-2xx responses is preserved in RemoteError.
func (c *HTTPClient) get(ctx context.Context, url string, v any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &RemoteError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return resp.Header, nil
}

func (c *HTTPClient) VerifyIdentity(ctx context.Context) (*Profile, error) {
	var profile Profile
	if _, err := c.get(ctx, c.baseURL+profilePath, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) ListCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if _, err := c.get(ctx, c.baseURL+coursesPath, &courses); err != nil {
		return nil, err
	}
	sortCoursesByName(courses)
	return courses, nil
}

// sortCoursesByName orders courses by name, case-insensitively and
// locale-aware, keeping the input order for equal names.
func sortCoursesByName(courses []Course) {
	coll := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(courses, func(i, j int) bool {
		return coll.CompareString(courses[i].Name, courses[j].Name) < 0
	})
}

func (c *HTTPClient) ListColors(ctx context.Context) (map[string]string, error) {
	var payload struct {
		CustomColors map[string]string `json:"custom_colors"`
	}
	if _, err := c.get(ctx, c.baseURL+colorsPath, &payload); err != nil {
		return nil, err
	}
	return payload.CustomColors, nil
}

func (c *HTTPClient) ListDashboardCards(ctx context.Context) ([]DashboardCard, error) {
	var cards []DashboardCard
	if _, err := c.get(ctx, c.baseURL+cardsPath, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *HTTPClient) FetchActivityFeed(ctx context.Context, cursor string) (*FeedPage, error) {
	url := cursor
	if url == "" {
		url = c.baseURL + feedPath
	}

	var items []FeedItem
	header, err := c.get(ctx, url, &items)
	if err != nil {
		return nil, err
	}

	return &FeedPage{Items: items, NextCursor: parseNextLink(header.Get("Link"))}, nil
}

// parseNextLink extracts the rel="next" URL from a Link response header.
// Returns "" when there is no next page.
func parseNextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}

		url := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(url, "<") || !strings.HasSuffix(url, ">") {
			continue
		}

		for _, param := range segments[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return strings.Trim(url, "<>")
			}
		}
	}
	return ""
}
