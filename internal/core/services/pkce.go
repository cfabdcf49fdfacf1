package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"regexp"
)

// PKCE code verifier length (RFC 7636 allows 43-128 characters).
const codeVerifierLength = 64

// codeVerifierChar matches a single character of the RFC 7636 section 4.1
// unreserved set.
var codeVerifierChar = regexp.MustCompile(`^[A-Za-z0-9_.~-]$`)

// verifierAlphabet holds the unreserved characters in ascending ASCII order,
// derived once by scanning the 7-bit range against the pattern.
var verifierAlphabet = verifierChars()

func verifierChars() []byte {
	var chars []byte
	for code := 0; code <= 127; code++ {
		if codeVerifierChar.Match([]byte{byte(code)}) {
			chars = append(chars, byte(code))
		}
	}
	return chars
}

// newCodeVerifier creates a cryptographically random PKCE code verifier:
// 64 random bytes, each mapped modulo the alphabet size to an unreserved
// character.
func newCodeVerifier() (string, error) {
	buf := make([]byte, codeVerifierLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	verifier := make([]byte, codeVerifierLength)
	for i, b := range buf {
		verifier[i] = verifierAlphabet[int(b)%len(verifierAlphabet)]
	}
	return string(verifier), nil
}

// codeChallenge derives the S256 code challenge for a verifier: the SHA-256
// digest, base64url-encoded without padding (RFC 4648 section 5).
func codeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

// newState creates a random state parameter for CSRF protection.
func newState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
