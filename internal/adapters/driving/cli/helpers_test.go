package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

// stubConnection implements driving.ConnectionService for command tests.
type stubConnection struct {
	resumeStatus   domain.Status
	continueStatus domain.Status
	profile        *domain.UserProfile
	details        string
	disconnected   bool
	continueCalls  int
}

func (s *stubConnection) Resume() domain.Status { return s.resumeStatus }

func (s *stubConnection) Begin(context.Context) (string, error) {
	return "https://accounts.spotify.com/authorize?client_id=x", nil
}

func (s *stubConnection) State() string              { return "state-abc" }
func (s *stubConnection) StageCallback(string) error { return nil }
func (s *stubConnection) ConsumeCallback() domain.Status {
	return domain.StatusAuthorized
}

func (s *stubConnection) Continue(context.Context) domain.Status {
	s.continueCalls++
	return s.continueStatus
}

func (s *stubConnection) Disconnect() domain.Status {
	s.disconnected = true
	return domain.StatusClosed
}

func (s *stubConnection) Status() domain.Status        { return s.continueStatus }
func (s *stubConnection) Message() string              { return domain.Message(s.continueStatus) }
func (s *stubConnection) Profile() *domain.UserProfile { return s.profile }
func (s *stubConnection) LastErrorDetails() string     { return s.details }

// withStubConnection wires a stub service for the duration of a test.
func withStubConnection(t *testing.T, stub *stubConnection) {
	t.Helper()
	original := connectionService
	connectionService = stub
	t.Cleanup(func() { connectionService = original })
}

// executeCommand runs the root command with the given args and captures
// output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
