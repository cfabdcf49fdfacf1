package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
)

func storeWithTokens(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()
	tokens := domain.NewTokens("access-1", "refresh-1", 3600, time.Now())
	raw, err := json.Marshal(tokens)
	require.NoError(t, err)
	require.NoError(t, store.Set(driven.KeyTokens, string(raw)))
	return store
}

func TestProfileFetcher_RequestProfile(t *testing.T) {
	api := &fakeWebAPI{resp: &driven.UserProfileResponse{DisplayName: "Alice", ID: "alice-1"}}
	fetcher := NewProfileFetcher(api, storeWithTokens(t))

	resp, err := fetcher.RequestProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.DisplayName)
	assert.Equal(t, "access-1", api.lastToken)
}

func TestProfileFetcher_RequestProfile_NoTokens(t *testing.T) {
	fetcher := NewProfileFetcher(&fakeWebAPI{}, newFakeStore())

	_, err := fetcher.RequestProfile(context.Background())

	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, domain.ErrCodeAccessTokenNotFound, connErr.Code)
}

func TestProfileFetcher_RequestProfile_CorruptTokens(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Set(driven.KeyTokens, "garbage"))
	api := &fakeWebAPI{}
	fetcher := NewProfileFetcher(api, store)

	_, err := fetcher.RequestProfile(context.Background())

	var connErr *domain.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, domain.ErrCodeAccessTokenNotFound, connErr.Code)
	assert.Zero(t, api.calls)
}

func TestProfileFetcher_HandleResponse(t *testing.T) {
	fetcher := NewProfileFetcher(&fakeWebAPI{}, newFakeStore())

	profile, err := fetcher.HandleResponse(&driven.UserProfileResponse{
		DisplayName: "Alice",
		ID:          "alice-1",
		Images:      []domain.ProfileImage{{URL: "https://img.example/a", Width: 300, Height: 300}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.DisplayName)
	assert.Equal(t, "alice-1", profile.ID)
	require.Len(t, profile.Images, 1)
	assert.Equal(t, "https://img.example/a", profile.Images[0].URL)
}

func TestProfileFetcher_HandleResponse_APIError(t *testing.T) {
	fetcher := NewProfileFetcher(&fakeWebAPI{}, newFakeStore())

	_, err := fetcher.HandleResponse(&driven.UserProfileResponse{
		Error: &driven.WebAPIErrorBody{Status: 401, Message: "The access token expired"},
	})

	var apiErr *domain.WebAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "The access token expired", apiErr.Message)
}

func TestProfileFetcher_HandleResponse_IncompleteProfile(t *testing.T) {
	fetcher := NewProfileFetcher(&fakeWebAPI{}, newFakeStore())

	_, err := fetcher.HandleResponse(&driven.UserProfileResponse{DisplayName: "Alice"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
