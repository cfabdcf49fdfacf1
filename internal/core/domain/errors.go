package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// ConnectionErrorCode identifies an internal invariant violation in the
// account-connection flow.
type ConnectionErrorCode string

// Connection error codes.
const (
	ErrCodeInvalidAuthResponse ConnectionErrorCode = "invalid_auth_response"
	ErrCodeVerifierNotFound    ConnectionErrorCode = "code_verifier_not_found"
	ErrCodeInvalidTokenData    ConnectionErrorCode = "invalid_token_data"
	ErrCodeAccessTokenNotFound ConnectionErrorCode = "access_token_not_found"
)

// ConnectionError reports a broken invariant inside the connection flow
// itself, as opposed to a provider denial or a transport failure.
type ConnectionError struct {
	Code ConnectionErrorCode
}

func (e *ConnectionError) Error() string {
	return string(e.Code)
}

// FetchError wraps a network-level failure from an outbound request.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AuthError is a provider denial at the authorization stage
// (RFC 6749 section 4.1.2.1).
type AuthError struct {
	Code        string
	Description string
	URI         string
}

func (e *AuthError) Error() string {
	return e.Code
}

// Details renders the error as "code: description (uri)", omitting missing
// parts.
func (e *AuthError) Details() string {
	return formatOAuthDetails(e.Code, e.Description, e.URI)
}

// TokenAPIError is a provider denial at the token exchange stage
// (RFC 6749 section 5.2).
type TokenAPIError struct {
	Code        string
	Description string
	URI         string
}

func (e *TokenAPIError) Error() string {
	return e.Code
}

// Details renders the error as "code: description (uri)", omitting missing
// parts.
func (e *TokenAPIError) Details() string {
	return formatOAuthDetails(e.Code, e.Description, e.URI)
}

// WebAPIError is an error payload returned by the provider's Web API.
// Status is zero when the payload carried none.
type WebAPIError struct {
	Status  int
	Message string
}

func (e *WebAPIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return strconv.Itoa(e.Status)
}

// Details renders the error as "status: message", omitting missing parts.
func (e *WebAPIError) Details() string {
	var details string

	if e.Status != 0 {
		details += strconv.Itoa(e.Status)
	}
	if e.Message != "" {
		if details != "" {
			details += ": "
		}
		details += e.Message
	}

	return details
}

// formatOAuthDetails assembles "message: description (uri)" with any missing
// part omitted and separators adjusted accordingly.
func formatOAuthDetails(message, description, uri string) string {
	var details string

	if message != "" {
		details += message
	}
	if description != "" {
		if message != "" {
			details += ": "
		}
		details += description
	}
	if uri != "" {
		if message != "" || description != "" {
			details += " (" + uri + ")"
		} else {
			details += uri
		}
	}

	return details
}
