package driven

// Storage keys used by the account-connection flow.
const (
	// KeyCodeVerifier holds the pending PKCE code verifier. One-shot: it is
	// consumed with Pop exactly once per exchange attempt.
	KeyCodeVerifier = "codeVerifier"
	// KeyQueryParams holds the staged authorization callback query string.
	KeyQueryParams = "queryParams"
	// KeyTokens holds the JSON-serialised credential record, durable across
	// runs.
	KeyTokens = "tokens"
)

// StateStore persists connection state in a durable key/value substrate.
// Implementations are synchronous and never fail a Get on a missing key.
type StateStore interface {
	// Get returns the value for key, or false when absent.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Pop returns the value for key and removes it in the same step.
	// Returns domain.ErrNotFound when the key is absent.
	Pop(key string) (string, error)
}
