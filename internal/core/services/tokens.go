package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
	"github.com/m-kupiec/music-app/internal/logger"
)

// TokenExchanger runs the authorization-code-for-tokens exchange and owns
// credential persistence.
type TokenExchanger struct {
	api         driven.TokenAPI
	store       driven.StateStore
	clientID    string
	redirectURI string
	now         func() time.Time
}

// NewTokenExchanger creates a token exchanger.
func NewTokenExchanger(api driven.TokenAPI, store driven.StateStore, clientID, redirectURI string) *TokenExchanger {
	return &TokenExchanger{
		api:         api,
		store:       store,
		clientID:    clientID,
		redirectURI: redirectURI,
		now:         time.Now,
	}
}

// RequestTokens pops the pending code verifier and exchanges the
// authorization code for tokens. The verifier is consumed even when the
// exchange fails: it is never reused across two attempts.
func (e *TokenExchanger) RequestTokens(ctx context.Context, authCode string) (*driven.TokenResponse, error) {
	verifier, err := e.store.Pop(driven.KeyCodeVerifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ConnectionError{Code: domain.ErrCodeVerifierNotFound}
		}
		return nil, err
	}

	return e.api.Exchange(ctx, driven.TokenRequest{
		Code:         authCode,
		RedirectURI:  e.redirectURI,
		ClientID:     e.clientID,
		CodeVerifier: verifier,
	})
}

// HandleResponse validates a token endpoint payload and commits the
// credential record to storage. A payload carrying an error key fails with
// *domain.TokenAPIError.
func (e *TokenExchanger) HandleResponse(resp *driven.TokenResponse) error {
	if resp.Error != "" {
		return &domain.TokenAPIError{
			Code:        resp.Error,
			Description: resp.ErrorDescription,
			URI:         resp.ErrorURI,
		}
	}
	return e.persist(resp)
}

// extractTokens builds a credential record from a success payload, or nil
// when access_token, refresh_token or expires_in is missing.
func extractTokens(resp *driven.TokenResponse, now time.Time) *domain.Tokens {
	if resp == nil {
		return nil
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" || resp.ExpiresIn == 0 {
		return nil
	}

	tokens := domain.NewTokens(resp.AccessToken, resp.RefreshToken, resp.ExpiresIn, now)
	return &tokens
}

// persist serialises and stores the extracted credential record.
func (e *TokenExchanger) persist(resp *driven.TokenResponse) error {
	tokens := extractTokens(resp, e.now())
	if tokens == nil {
		return &domain.ConnectionError{Code: domain.ErrCodeInvalidTokenData}
	}

	raw, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	return e.store.Set(driven.KeyTokens, string(raw))
}

// Load reads the stored credential record. Absent or corrupt records read as
// nil.
func (e *TokenExchanger) Load() *domain.Tokens {
	raw, ok := e.store.Get(driven.KeyTokens)
	if !ok {
		return nil
	}

	tokens := domain.ParseTokens(raw)
	if tokens == nil {
		logger.Warn("discarding unreadable credential record")
	}
	return tokens
}

// Clear removes the stored credential record.
func (e *TokenExchanger) Clear() error {
	return e.store.Delete(driven.KeyTokens)
}
