package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ishauck/canvas-cli/internal/accounts"
	"github.com/ishauck/canvas-cli/internal/cache"
	"github.com/ishauck/canvas-cli/internal/logging"
	"github.com/ishauck/canvas-cli/internal/session"
)

// AccountService handles the account lifecycle: verified login, removal with
// cache eviction, and profile refresh.
type AccountService struct {
	registry  *accounts.Registry
	cache     *cache.Cache
	feed      *FeedService
	newClient ClientFactory
	log       logging.Logger
}

func NewAccountService(registry *accounts.Registry, c *cache.Cache, feed *FeedService, newClient ClientFactory, log logging.Logger) *AccountService {
	return &AccountService{registry: registry, cache: c, feed: feed, newClient: newClient, log: log}
}

// AddAccount verifies the credential against the domain before anything is
// stored. A rejected or undecodable identity response returns the error and
// leaves no partial state behind. On success the new account carries the
// remote profile's display metadata.
func (s *AccountService) AddAccount(ctx context.Context, domain, token string) (accounts.Account, error) {
	profile, err := s.newClient(domain, token).VerifyIdentity(ctx)
	if err != nil {
		return accounts.Account{}, fmt.Errorf("failed to verify credential for %s: %w", domain, err)
	}

	acc := accounts.Account{
		ID:     uuid.NewString(),
		Domain: domain,
		Name:   profile.Name,
		Email:  profile.Email,
		Avatar: profile.AvatarURL,
	}
	if err := s.registry.Add(ctx, acc, token); err != nil {
		return accounts.Account{}, err
	}

	s.log.Info(ctx, "account added", "domain", domain, "account_id", acc.ID)
	return acc, nil
}

// RemoveAccount deletes the account and evicts every cached resource and the
// accumulated feed for it, so a later re-login starts clean.
func (s *AccountService) RemoveAccount(ctx context.Context, id string) error {
	if err := s.registry.Remove(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateAccount(id)
	s.feed.Drop(id)
	s.log.Info(ctx, "account removed", "account_id", id)
	return nil
}

// RefreshProfile re-fetches the remote profile for the session's account and
// updates the stored display metadata.
func (s *AccountService) RefreshProfile(ctx context.Context, sess *session.Session) error {
	profile, err := s.newClient(sess.Account.Domain, sess.Token).VerifyIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh profile: %w", err)
	}
	return s.registry.UpdateProfile(ctx, sess.Account.ID, profile.Name, profile.Email, profile.AvatarURL)
}
