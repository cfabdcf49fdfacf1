package services

import (
	"context"
	"fmt"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
)

// ProfileFetcher retrieves the connected account's profile from the Web API.
type ProfileFetcher struct {
	api   driven.WebAPI
	store driven.StateStore
}

// NewProfileFetcher creates a profile fetcher.
func NewProfileFetcher(api driven.WebAPI, store driven.StateStore) *ProfileFetcher {
	return &ProfileFetcher{api: api, store: store}
}

// RequestProfile fetches the current user's profile with the stored access
// token. Fails with *domain.ConnectionError when no credential record is
// available.
func (f *ProfileFetcher) RequestProfile(ctx context.Context) (*driven.UserProfileResponse, error) {
	raw, ok := f.store.Get(driven.KeyTokens)
	if !ok {
		return nil, &domain.ConnectionError{Code: domain.ErrCodeAccessTokenNotFound}
	}
	tokens := domain.ParseTokens(raw)
	if tokens == nil {
		return nil, &domain.ConnectionError{Code: domain.ErrCodeAccessTokenNotFound}
	}

	return f.api.UserProfile(ctx, tokens.AccessToken)
}

// HandleResponse validates a profile payload and extracts the fields kept in
// memory. A payload carrying an error key fails with *domain.WebAPIError.
func (f *ProfileFetcher) HandleResponse(resp *driven.UserProfileResponse) (*domain.UserProfile, error) {
	if resp.Error != nil {
		return nil, &domain.WebAPIError{
			Status:  resp.Error.Status,
			Message: resp.Error.Message,
		}
	}

	profile := &domain.UserProfile{
		DisplayName: resp.DisplayName,
		ID:          resp.ID,
		Images:      resp.Images,
	}
	if !profile.Valid() {
		return nil, fmt.Errorf("user profile: %w", domain.ErrInvalidInput)
	}
	return profile, nil
}
