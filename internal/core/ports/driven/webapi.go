package driven

import (
	"context"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

// WebAPIErrorBody is the provider's regular error object
// (RFC 6749 section 7.2 shape).
type WebAPIErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// UserProfileResponse is the decoded current-user profile payload. As with
// the token endpoint, success and error share one JSON surface: a non-nil
// Error marks a denial.
type UserProfileResponse struct {
	DisplayName  string                `json:"display_name"`
	ID           string                `json:"id"`
	Images       []domain.ProfileImage `json:"images"`
	Href         string                `json:"href"`
	URI          string                `json:"uri"`
	Type         string                `json:"type"`
	ExternalURLs map[string]string     `json:"external_urls"`
	Followers    Followers             `json:"followers"`

	Error *WebAPIErrorBody `json:"error,omitempty"`
}

// Followers is the follower summary attached to a profile.
type Followers struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// WebAPI fetches account data from the provider's Web API.
type WebAPI interface {
	// UserProfile GETs the current user's profile with a bearer token and
	// returns the decoded JSON body regardless of HTTP status. The returned
	// error is reserved for transport-level failures, wrapped as
	// *domain.FetchError.
	UserProfile(ctx context.Context, accessToken string) (*UserProfileResponse, error)
}
