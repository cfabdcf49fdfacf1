package services

import (
	"context"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
)

// fakeStore is an in-memory StateStore for service tests.
type fakeStore struct {
	data    map[string]string
	setErr  error
	popErr  error
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(key string) (string, bool) {
	value, ok := s.data[key]
	return value, ok
}

func (s *fakeStore) Set(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(key string) error {
	delete(s.data, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStore) Pop(key string) (string, error) {
	if s.popErr != nil {
		return "", s.popErr
	}
	value, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	delete(s.data, key)
	return value, nil
}

// fakeTokenAPI records the last exchange request and returns a canned
// response.
type fakeTokenAPI struct {
	resp    *driven.TokenResponse
	err     error
	lastReq driven.TokenRequest
	calls   int
}

func (a *fakeTokenAPI) Exchange(_ context.Context, req driven.TokenRequest) (*driven.TokenResponse, error) {
	a.lastReq = req
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.resp, nil
}

// fakeWebAPI records the access token it was handed and returns a canned
// profile response.
type fakeWebAPI struct {
	resp      *driven.UserProfileResponse
	err       error
	lastToken string
	calls     int
}

func (a *fakeWebAPI) UserProfile(_ context.Context, accessToken string) (*driven.UserProfileResponse, error) {
	a.lastToken = accessToken
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.resp, nil
}
