package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// BrandConfig holds a domain's theming variables from
// /api/v1/brand_variables (colors, font and logo URLs, keyed by CSS
// variable name). The endpoint is public, so no credential is involved.
type BrandConfig map[string]any

// FetchBrandConfig downloads the brand variables for domain. A nil
// httpClient falls back to http.DefaultClient. Error classification matches
// the rest of the package.
func FetchBrandConfig(ctx context.Context, httpClient *http.Client, domain string) (BrandConfig, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	url := "https://" + domain + "/api/v1/brand_variables"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Status: resp.StatusCode, Body: string(body)}
	}

	var config BrandConfig
	if err := json.Unmarshal(body, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return config, nil
}
