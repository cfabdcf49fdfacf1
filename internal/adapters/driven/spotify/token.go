// Package spotify provides HTTP clients for the provider's accounts service
// and Web API.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
)

// requestTimeout bounds every outbound provider call.
const requestTimeout = 30 * time.Second

// Ensure TokenClient implements the interface.
var _ driven.TokenAPI = (*TokenClient)(nil)

// TokenClient calls the provider's token endpoint.
type TokenClient struct {
	endpoint string
	client   *http.Client
	limiter  *RateLimiter
}

// NewTokenClient creates a token client for the given endpoint.
func NewTokenClient(endpoint string) *TokenClient {
	return &TokenClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: requestTimeout},
		limiter:  NewRateLimiter(),
	}
}

// Exchange POSTs the authorization-code grant and returns the decoded JSON
// body. The provider encodes denials as JSON too, so the body is decoded
// regardless of HTTP status; only transport-level failures return an error,
// wrapped as *domain.FetchError.
func (c *TokenClient) Exchange(ctx context.Context, req driven.TokenRequest) (*driven.TokenResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", req.Code)
	data.Set("redirect_uri", req.RedirectURI)
	data.Set("client_id", req.ClientID)
	data.Set("code_verifier", req.CodeVerifier)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	recordRetryAfter(c.limiter, resp)

	var tokenResp driven.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("decode token response: %w", err)}
	}
	return &tokenResp, nil
}

// recordRetryAfter feeds a 429 response's Retry-After header back into the
// limiter.
func recordRetryAfter(limiter *RateLimiter, resp *http.Response) {
	if resp.StatusCode != http.StatusTooManyRequests {
		return
	}
	seconds, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
	limiter.RecordRateLimitError(seconds)
}
