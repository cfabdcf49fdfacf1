package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromAction(t *testing.T) {
	tests := []struct {
		action Action
		want   Status
	}{
		{ActionNone, StatusNone},
		{ActionTokensNotFound, StatusNone},
		{ActionInitTokenValid, StatusValidated},
		{ActionInitTokenExpired, StatusPending},
		{ActionInitTokensProvide, StatusPending},
		{ActionMoreTokensProvide, StatusPending},
		{ActionAccountConnect, StatusInitiated},
		{ActionAuthPageDisplay, StatusInitiated},
		{ActionAuthCodeProvide, StatusAuthorized},
		{ActionAuthCodeDeny, StatusUnauthorized},
		{ActionInitTokensDeny, StatusFailed},
		{ActionInitDataDeny, StatusFailed},
		{ActionInitDataProvide, StatusOK},
		{ActionRequestAccept, StatusOK},
		{ActionRefrTokenExpired, StatusUpdating},
		{ActionRefrTokenValid, StatusUpdating},
		{ActionMoreTokensDeny, StatusBroken},
		{ActionRequestDeny, StatusBroken},
		{ActionAccountDisconnect, StatusClosed},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromAction(tt.action))
		})
	}
}

func TestStatusFromAction_UnknownFallsBackToNone(t *testing.T) {
	assert.Equal(t, StatusNone, StatusFromAction(Action("somethingElse")))
	assert.Equal(t, StatusNone, StatusFromAction(Action("")))
}

func TestStatusFromAction_ModalActionsFallBackToNone(t *testing.T) {
	// Modal open/close signals carry no connection progress
	assert.Equal(t, StatusNone, StatusFromAction(ActionAccountModalOpen))
	assert.Equal(t, StatusNone, StatusFromAction(ActionAccountModalClose))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Not authorized.", Message(StatusUnauthorized))
	assert.Equal(t, "Connection failed.", Message(StatusFailed))
	assert.Equal(t, "Successfully connected", Message(StatusOK))

	for _, status := range []Status{
		StatusNone, StatusValidated, StatusInitiated, StatusAuthorized,
		StatusPending, StatusUpdating, StatusBroken, StatusClosed,
	} {
		assert.Empty(t, Message(status), "status %q should have no message", status)
	}
}

func TestScreenFromStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   Screen
	}{
		{StatusNone, ScreenWelcome},
		{StatusUnauthorized, ScreenWelcome},
		{StatusFailed, ScreenWelcome},
		{StatusClosed, ScreenWelcome},
		{StatusInitiated, ScreenAuth},
		{StatusValidated, ScreenConnection},
		{StatusAuthorized, ScreenConnection},
		{StatusPending, ScreenConnection},
		{StatusOK, ScreenMain},
		{StatusUpdating, ScreenMain},
		{StatusBroken, ScreenMain},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ScreenFromStatus(tt.status))
		})
	}

	assert.Equal(t, ScreenNone, ScreenFromStatus(Status("bogus")))
}
