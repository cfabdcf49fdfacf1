package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

func TestStatusCmd_NotConfigured(t *testing.T) {
	withStubConnection(t, nil)
	connectionService = nil

	_, err := executeCommand(t, "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestStatusCmd_NotConnected(t *testing.T) {
	withStubConnection(t, &stubConnection{resumeStatus: domain.StatusNone})

	output, err := executeCommand(t, "status")

	require.NoError(t, err)
	assert.Contains(t, output, "Not connected")
}

func TestStatusCmd_Connected(t *testing.T) {
	withStubConnection(t, &stubConnection{resumeStatus: domain.StatusValidated})

	output, err := executeCommand(t, "status")

	require.NoError(t, err)
	assert.Contains(t, output, "credentials are valid")
}

func TestStatusCmd_Expired(t *testing.T) {
	withStubConnection(t, &stubConnection{resumeStatus: domain.StatusPending})

	output, err := executeCommand(t, "status")

	require.NoError(t, err)
	assert.Contains(t, output, "expired")
}
