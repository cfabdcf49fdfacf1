package driven

import "context"

// TokenRequest carries the authorization-code grant parameters
// (RFC 6749 section 4.1.3, RFC 7636 section 4.5).
type TokenRequest struct {
	Code         string
	RedirectURI  string
	ClientID     string
	CodeVerifier string
}

// TokenResponse is the decoded token endpoint payload. The provider encodes
// both success and denial as JSON bodies, so a single shape covers both: a
// non-empty Error marks a denial (RFC 6749 section 5.2).
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`

	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// TokenAPI exchanges an authorization code for tokens at the provider's token
// endpoint.
type TokenAPI interface {
	// Exchange POSTs the grant and returns the decoded JSON body regardless
	// of HTTP status. The returned error is reserved for transport-level
	// failures, wrapped as *domain.FetchError.
	Exchange(ctx context.Context, req TokenRequest) (*TokenResponse, error)
}
