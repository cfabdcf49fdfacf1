package domain

import (
	"encoding/json"
	"time"
)

// expiryBuffer makes tokens count as expired one minute in advance, so a
// request started just before the real expiry does not fail mid-flight.
const expiryBuffer = time.Minute

// Tokens is the credential record obtained from a token exchange.
// It is immutable after construction: a later exchange supersedes the record
// rather than mutating it.
type Tokens struct {
	// AccessToken is the bearer token for Web API access.
	AccessToken string `json:"accessToken"`
	// RefreshToken is the credential for obtaining new access tokens.
	RefreshToken string `json:"refreshToken"`
	// ExpirationLength is the provider-reported lifetime in seconds.
	ExpirationLength int `json:"expirationLength"`
	// ExpirationTime is the absolute expiry in epoch milliseconds, computed
	// once at construction and never recomputed.
	ExpirationTime int64 `json:"expirationTime"`
}

// NewTokens builds a credential record from a successful token exchange.
// ExpirationTime is now + expiresIn seconds, minus the safety buffer.
func NewTokens(accessToken, refreshToken string, expiresIn int, now time.Time) Tokens {
	return Tokens{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpirationLength: expiresIn,
		ExpirationTime:   now.UnixMilli() + int64(expiresIn)*1000 - expiryBuffer.Milliseconds(),
	}
}

// Valid reports whether all four fields carry usable values.
func (t *Tokens) Valid() bool {
	return t.AccessToken != "" &&
		t.RefreshToken != "" &&
		t.ExpirationLength != 0 &&
		t.ExpirationTime != 0
}

// ExpiredAt reports whether the record has expired at the given instant.
func (t *Tokens) ExpiredAt(now time.Time) bool {
	return t.ExpirationTime <= now.UnixMilli()
}

// ParseTokens decodes a serialised credential record. Any failure, whether a
// parse error or a missing or empty field, yields nil: corrupted storage is
// treated as "no credential" rather than an error.
func ParseTokens(raw string) *Tokens {
	var tokens Tokens
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil
	}
	if !tokens.Valid() {
		return nil
	}
	return &tokens
}
