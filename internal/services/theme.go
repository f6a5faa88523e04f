package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ishauck/canvas-cli/internal/canvas"
	"github.com/ishauck/canvas-cli/internal/logging"
	"github.com/ishauck/canvas-cli/internal/repositories/metadata"
)

// brandKeyPrefix namespaces per-domain brand variables in the metadata
// repository.
const brandKeyPrefix = "brand:"

// BrandFetcher downloads the brand variables for a domain. Swapped for a
// fake in tests; production wires canvas.FetchBrandConfig.
type BrandFetcher func(ctx context.Context, domain string) (canvas.BrandConfig, error)

// ThemeService serves per-domain theming variables, persisted in the
// metadata repository so they survive restarts and offline starts.
type ThemeService struct {
	meta  metadata.Repository
	fetch BrandFetcher
	log   logging.Logger
}

func NewThemeService(meta metadata.Repository, fetch BrandFetcher, log logging.Logger) *ThemeService {
	return &ThemeService{meta: meta, fetch: fetch, log: log}
}

// BrandConfig returns the brand variables for domain, fetching and persisting
// them on first use. Later calls read the stored copy without going remote.
func (s *ThemeService) BrandConfig(ctx context.Context, domain string) (canvas.BrandConfig, error) {
	raw, err := s.meta.Get(ctx, brandKeyPrefix+domain)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand config: %w", err)
	}
	if raw != nil {
		var config canvas.BrandConfig
		if err := json.Unmarshal(raw, &config); err == nil {
			return config, nil
		}
		// Undecodable stored copy; refetch below.
		s.log.Warn(ctx, "discarding malformed brand config", "domain", domain)
	}

	return s.RefreshBrandConfig(ctx, domain)
}

// RefreshBrandConfig force-fetches the brand variables and replaces the
// stored copy.
func (s *ThemeService) RefreshBrandConfig(ctx context.Context, domain string) (canvas.BrandConfig, error) {
	config, err := s.fetch(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brand config for %s: %w", domain, err)
	}

	blob, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode brand config: %w", err)
	}
	if err := s.meta.Set(ctx, brandKeyPrefix+domain, blob); err != nil {
		return nil, fmt.Errorf("failed to store brand config: %w", err)
	}
	return config, nil
}
