// Package services contains the application services for the CLI: account
// lifecycle (verify-then-store), cached resource access for the active
// session, and activity feed pagination.
package services

import (
	"net/http"

	"github.com/ishauck/canvas-cli/internal/accounts"
	"github.com/ishauck/canvas-cli/internal/cache"
	"github.com/ishauck/canvas-cli/internal/canvas"
	"github.com/ishauck/canvas-cli/internal/logging"
	"github.com/ishauck/canvas-cli/internal/repositories/metadata"
)

// ClientFactory builds a remote client for one (domain, token) pair.
// Swapped for a fake in tests.
type ClientFactory func(domain, token string) canvas.Client

// HTTPClientFactory returns the production factory, sharing one *http.Client
// across accounts.
func HTTPClientFactory(httpClient *http.Client) ClientFactory {
	return func(domain, token string) canvas.Client {
		return canvas.New(domain, token, httpClient)
	}
}

// Services bundles the application services over a shared cache and client
// factory.
type Services struct {
	Accounts  *AccountService
	Resources *ResourceService
	Feed      *FeedService
	Theme     *ThemeService
}

func New(registry *accounts.Registry, meta metadata.Repository, newClient ClientFactory, brandFetch BrandFetcher, log logging.Logger) *Services {
	c := cache.New()
	feed := NewFeedService(c, newClient)
	return &Services{
		Accounts:  NewAccountService(registry, c, feed, newClient, log),
		Resources: NewResourceService(c, newClient),
		Feed:      feed,
		Theme:     NewThemeService(meta, brandFetch, log),
	}
}
