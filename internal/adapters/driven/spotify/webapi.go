package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
)

// Ensure WebAPIClient implements the interface.
var _ driven.WebAPI = (*WebAPIClient)(nil)

// WebAPIClient calls the provider's Web API.
type WebAPIClient struct {
	baseURL string
	client  *http.Client
	limiter *RateLimiter
}

// NewWebAPIClient creates a Web API client for the given base URL
// (e.g. "https://api.spotify.com/v1").
func NewWebAPIClient(baseURL string) *WebAPIClient {
	return &WebAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
		limiter: NewRateLimiter(),
	}
}

// UserProfile GETs the current user's profile with a bearer token and
// returns the decoded JSON body regardless of HTTP status. Only transport
// failures return an error, wrapped as *domain.FetchError.
func (c *WebAPIClient) UserProfile(ctx context.Context, accessToken string) (*driven.UserProfileResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return nil, fmt.Errorf("create profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	recordRetryAfter(c.limiter, resp)

	var profileResp driven.UserProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profileResp); err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("decode profile response: %w", err)}
	}
	return &profileResp, nil
}
