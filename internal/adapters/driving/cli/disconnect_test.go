package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

func TestDisconnectCmd(t *testing.T) {
	stub := &stubConnection{resumeStatus: domain.StatusValidated}
	withStubConnection(t, stub)

	output, err := executeCommand(t, "disconnect")

	require.NoError(t, err)
	assert.True(t, stub.disconnected)
	assert.Contains(t, output, "Disconnected")
}

func TestDisconnectCmd_NotConfigured(t *testing.T) {
	withStubConnection(t, nil)
	connectionService = nil

	_, err := executeCommand(t, "disconnect")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
