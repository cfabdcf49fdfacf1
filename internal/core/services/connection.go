package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
	"github.com/m-kupiec/music-app/internal/core/ports/driving"
	"github.com/m-kupiec/music-app/internal/logger"
)

// Ensure Connection implements the interface.
var _ driving.ConnectionService = (*Connection)(nil)

// Config carries the provider parameters of the connection flow.
type Config struct {
	ClientID     string
	RedirectURI  string
	Scopes       []string
	AuthEndpoint string
}

// Connection is the account-connection orchestrator. It sequences the
// authorization, token exchange and profile fetch phases and folds every
// outcome into a status through the action resolver; no error escapes to the
// presentation layer as a raw failure.
type Connection struct {
	mu        sync.Mutex
	attemptID string
	status    domain.Status
	state     string
	authCode  string
	profile   *domain.UserProfile
	lastErr   error

	cfg       Config
	store     driven.StateStore
	exchanger *TokenExchanger
	fetcher   *ProfileFetcher
	now       func() time.Time
}

// NewConnection creates a connection orchestrator over the given stores and
// provider clients.
func NewConnection(cfg Config, store driven.StateStore, tokenAPI driven.TokenAPI, webAPI driven.WebAPI) *Connection {
	return &Connection{
		attemptID: uuid.NewString(),
		status:    domain.StatusNone,
		cfg:       cfg,
		store:     store,
		exchanger: NewTokenExchanger(tokenAPI, store, cfg.ClientID, cfg.RedirectURI),
		fetcher:   NewProfileFetcher(webAPI, store),
		now:       time.Now,
	}
}

// Resume derives the session's initial status from the stored credential
// record.
func (c *Connection) Resume() domain.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	tokens := c.exchanger.Load()
	return c.applyLocked(tokenBasedAction(tokens, c.now()))
}

// Begin starts a fresh authorization attempt and returns the provider
// authorization URL.
func (c *Connection) Begin(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.applyLocked(domain.ActionAccountConnect)

	verifier, err := newCodeVerifier()
	if err != nil {
		return "", err
	}
	if err := c.store.Set(driven.KeyCodeVerifier, verifier); err != nil {
		return "", err
	}

	state, err := newState()
	if err != nil {
		return "", err
	}
	c.state = state

	authURL := buildAuthURL(
		c.cfg.AuthEndpoint,
		c.cfg.ClientID,
		c.cfg.RedirectURI,
		c.cfg.Scopes,
		state,
		codeChallenge(verifier),
	)

	c.applyLocked(domain.ActionAuthPageDisplay)
	return authURL, nil
}

// State returns the CSRF state parameter of the current attempt.
func (c *Connection) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// StageCallback persists the raw callback query string. Staging keeps the
// authorization code out of any longer-lived artifact before it is consumed.
func (c *Connection) StageCallback(rawQuery string) error {
	return c.store.Set(driven.KeyQueryParams, rawQuery)
}

// ConsumeCallback pops the staged query and folds the authorization outcome
// into the status.
func (c *Connection) ConsumeCallback() domain.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.store.Pop(driven.KeyQueryParams)
	if err != nil {
		c.lastErr = &domain.ConnectionError{Code: domain.ErrCodeInvalidAuthResponse}
		return c.applyLocked(authResponseAction(c.lastErr))
	}

	code, err := parseAuthResponse(raw)
	if err != nil {
		c.lastErr = err
		return c.applyLocked(authResponseAction(err))
	}

	c.authCode = code
	return c.applyLocked(authResponseAction(nil))
}

// Continue runs the post-authorization phases. The trigger is accepted only
// in "authorized" or "validated"; leaving those states is the first
// transition, which makes a repeated trigger a structural no-op rather than a
// flag-guarded one.
func (c *Connection) Continue(ctx context.Context) domain.Status {
	c.mu.Lock()
	prior := c.status
	if prior != domain.StatusAuthorized && prior != domain.StatusValidated {
		c.mu.Unlock()
		return prior
	}
	c.status = domain.StatusPending
	authCode := c.authCode
	c.mu.Unlock()

	if prior == domain.StatusAuthorized {
		if status, ok := c.exchangeTokens(ctx, authCode); !ok {
			return status
		}
	}

	return c.fetchProfile(ctx)
}

// exchangeTokens runs the token exchange phase. It reports false when the
// phase failed and the flow must not proceed to the profile fetch.
func (c *Connection) exchangeTokens(ctx context.Context, authCode string) (domain.Status, bool) {
	err := c.runTokenExchange(ctx, authCode)
	if err != nil {
		logger.Warn("token exchange failed: %v", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return c.applyLocked(tokenExchangeAction(err)), false
	}
	return c.applyLocked(tokenExchangeAction(nil)), true
}

func (c *Connection) runTokenExchange(ctx context.Context, authCode string) error {
	resp, err := c.exchanger.RequestTokens(ctx, authCode)
	if err != nil {
		return err
	}
	return c.exchanger.HandleResponse(resp)
}

// fetchProfile runs the profile fetch phase. The profile is cached at most
// once per session; a later fetch never overwrites it.
func (c *Connection) fetchProfile(ctx context.Context) domain.Status {
	profile, err := c.runProfileFetch(ctx)
	if err != nil {
		logger.Warn("profile fetch failed: %v", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return c.applyLocked(profileFetchAction(err))
	}
	if c.profile == nil {
		c.profile = profile
	}
	return c.applyLocked(profileFetchAction(nil))
}

func (c *Connection) runProfileFetch(ctx context.Context) (*domain.UserProfile, error) {
	resp, err := c.fetcher.RequestProfile(ctx)
	if err != nil {
		return nil, err
	}
	return c.fetcher.HandleResponse(resp)
}

// Disconnect deletes the stored credential record and closes the session.
func (c *Connection) Disconnect() domain.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.exchanger.Clear(); err != nil {
		logger.Warn("clearing credential record: %v", err)
	}
	c.profile = nil
	return c.applyLocked(domain.ActionAccountDisconnect)
}

// Status returns the current connection status.
func (c *Connection) Status() domain.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Message returns the user-facing message for the current status.
func (c *Connection) Message() string {
	return domain.Message(c.Status())
}

// Profile returns the cached account profile, or nil before a successful
// fetch.
func (c *Connection) Profile() *domain.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile
}

// LastErrorDetails returns formatted details of the most recent failure.
func (c *Connection) LastErrorDetails() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return errorDetails(c.lastErr)
}

// applyLocked folds an action into the session status. Callers hold c.mu.
func (c *Connection) applyLocked(action domain.Action) domain.Status {
	c.status = domain.StatusFromAction(action)
	logger.Debug("connection %s: action %q -> status %q", c.attemptID, action, c.status)
	return c.status
}

// errorDetails formats any of the flow's typed errors for display.
func errorDetails(err error) string {
	if err == nil {
		return ""
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return authErr.Details()
	}
	var tokenErr *domain.TokenAPIError
	if errors.As(err, &tokenErr) {
		return tokenErr.Details()
	}
	var webErr *domain.WebAPIError
	if errors.As(err, &webErr) {
		return webErr.Details()
	}
	return err.Error()
}
