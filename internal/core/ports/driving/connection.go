package driving

import (
	"context"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

// ConnectionService drives the account-connection state machine from
// "not connected" through authorization, token exchange and profile
// retrieval, to a stable connected or error state.
type ConnectionService interface {
	// Resume derives the session's initial status from any stored credential
	// record. A corrupt record is discarded silently and reads as "none".
	Resume() domain.Status

	// Begin starts a fresh authorization attempt: it generates and persists
	// a PKCE verifier, derives the challenge, and returns the provider
	// authorization URL to open. The status moves to "initiated".
	Begin(ctx context.Context) (string, error)

	// State returns the CSRF state parameter of the current attempt.
	// Empty before Begin.
	State() string

	// StageCallback persists the raw authorization callback query so the
	// visible artifact carrying the code can be dropped before consumption.
	StageCallback(rawQuery string) error

	// ConsumeCallback pops the staged query, parses the authorization
	// outcome and folds it into the status: "authorized" on a code,
	// "unauthorized" on a provider denial or a malformed query.
	ConsumeCallback() domain.Status

	// Continue runs the post-authorization phases: the token exchange (when
	// the status is "authorized") strictly followed by the profile fetch.
	// It only accepts the trigger in "authorized" or "validated" and
	// transitions out of those states first, so re-invocation is a no-op.
	Continue(ctx context.Context) domain.Status

	// Disconnect deletes the stored credential record and closes the
	// session.
	Disconnect() domain.Status

	// Status returns the current connection status.
	Status() domain.Status

	// Message returns the user-facing message for the current status.
	Message() string

	// Profile returns the fetched account profile, or nil before a
	// successful fetch. The profile lives in process memory only.
	Profile() *domain.UserProfile

	// LastErrorDetails returns formatted details of the most recent failure,
	// or "" when the flow has not failed.
	LastErrorDetails() string
}
