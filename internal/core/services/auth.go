package services

import (
	"net/url"
	"strings"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

// buildAuthURL assembles the provider authorization URL
// (RFC 6749 section 4.1.1, RFC 7636 section 4.3).
func buildAuthURL(endpoint, clientID, redirectURI string, scopes []string, state, challenge string) string {
	params := url.Values{
		"client_id":             {clientID},
		"response_type":         {"code"},
		"redirect_uri":          {redirectURI},
		"code_challenge_method": {"S256"},
		"code_challenge":        {challenge},
	}
	if len(scopes) > 0 {
		params.Set("scope", strings.Join(scopes, " "))
	}
	if state != "" {
		params.Set("state", state)
	}

	return endpoint + "?" + params.Encode()
}

// parseAuthResponse extracts the authorization outcome from a callback query
// string (RFC 6749 sections 4.1.2 and 4.1.2.1). It returns the authorization
// code on success, a *domain.AuthError on a provider denial, and a
// *domain.ConnectionError when the query carries neither a code nor an error
// key.
func parseAuthResponse(rawQuery string) (string, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", &domain.ConnectionError{Code: domain.ErrCodeInvalidAuthResponse}
	}

	if code := values.Get("code"); code != "" {
		return code, nil
	}

	if errCode := values.Get("error"); errCode != "" {
		return "", &domain.AuthError{
			Code:        errCode,
			Description: values.Get("error_description"),
			URI:         values.Get("error_uri"),
		}
	}

	return "", &domain.ConnectionError{Code: domain.ErrCodeInvalidAuthResponse}
}
