package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifierAlphabet(t *testing.T) {
	// RFC 7636 section 4.1 unreserved set: 62 alphanumerics plus - . _ ~
	assert.Len(t, verifierAlphabet, 66)
	for _, c := range verifierAlphabet {
		assert.True(t, codeVerifierChar.Match([]byte{c}))
	}
}

func TestNewCodeVerifier_Length(t *testing.T) {
	verifier, err := newCodeVerifier()

	require.NoError(t, err)
	assert.Len(t, verifier, codeVerifierLength)
}

func TestNewCodeVerifier_Charset(t *testing.T) {
	verifier, err := newCodeVerifier()
	require.NoError(t, err)

	for _, c := range verifier {
		assert.True(t, codeVerifierChar.MatchString(string(c)),
			"verifier contains character outside the unreserved set: %q", c)
	}
}

func TestNewCodeVerifier_Unique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 10; i++ {
		verifier, err := newCodeVerifier()
		require.NoError(t, err)
		assert.False(t, seen[verifier], "verifier repeated across calls")
		seen[verifier] = true
	}
}

func TestCodeChallenge_KnownAnswer(t *testing.T) {
	// RFC 7636 appendix B
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"

	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", codeChallenge(verifier))
}

func TestCodeChallenge_Base64URLNoPadding(t *testing.T) {
	verifier, err := newCodeVerifier()
	require.NoError(t, err)

	challenge := codeChallenge(verifier)

	// 32 hash bytes encode to 43 base64url characters without padding
	assert.Len(t, challenge, 43)
	assert.False(t, strings.ContainsAny(challenge, "+/="))
}

func TestCodeChallenge_Deterministic(t *testing.T) {
	verifier, err := newCodeVerifier()
	require.NoError(t, err)

	assert.Equal(t, codeChallenge(verifier), codeChallenge(verifier))
}

func TestNewState(t *testing.T) {
	first, err := newState()
	require.NoError(t, err)
	second, err := newState()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.False(t, strings.ContainsAny(first, "+/="))
}
