package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

func TestConnectCmd_Use(t *testing.T) {
	assert.Equal(t, "connect", connectCmd.Use)
}

func TestConnectCmd_Flags(t *testing.T) {
	assert.NotNil(t, connectCmd.Flags().Lookup("no-browser"))
	assert.NotNil(t, connectCmd.Flags().Lookup("plain"))
}

func TestConnectCmd_NotConfigured(t *testing.T) {
	withStubConnection(t, nil)
	connectionService = nil

	_, err := executeCommand(t, "connect", "--plain")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestConnectCmd_Plain_ValidCredentialsSkipAuthorization(t *testing.T) {
	stub := &stubConnection{
		resumeStatus:   domain.StatusValidated,
		continueStatus: domain.StatusOK,
		profile:        &domain.UserProfile{DisplayName: "Alice", ID: "alice-1"},
	}
	withStubConnection(t, stub)

	output, err := executeCommand(t, "connect", "--plain")

	require.NoError(t, err)
	assert.Contains(t, output, "credentials are still valid")
	assert.Contains(t, output, "Successfully connected")
	assert.Contains(t, output, "Signed in as Alice (alice-1)")
	assert.Equal(t, 1, stub.continueCalls)
}

func TestConnectCmd_Plain_ProfileFetchFails(t *testing.T) {
	stub := &stubConnection{
		resumeStatus:   domain.StatusValidated,
		continueStatus: domain.StatusFailed,
		details:        "403: Forbidden",
	}
	withStubConnection(t, stub)

	output, err := executeCommand(t, "connect", "--plain")

	require.Error(t, err)
	assert.Contains(t, output, "Connection failed.")
	assert.Contains(t, output, "403: Forbidden")
}

func TestSetServices(t *testing.T) {
	original := connectionService
	originalBrowser := browserOpener
	originalPort := redirectPort
	defer func() {
		connectionService = original
		browserOpener = originalBrowser
		redirectPort = originalPort
	}()

	stub := &stubConnection{}
	SetServices(&Services{Connection: stub, RedirectPort: 9099})

	assert.Equal(t, stub, connectionService)
	assert.Equal(t, 9099, redirectPort)
	assert.Nil(t, browserOpener)
}
