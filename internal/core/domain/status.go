package domain

// Status is the coarse, user-facing connection state. It is the only field
// the presentation layer depends on.
type Status string

// Connection statuses.
const (
	StatusNone         Status = "none"
	StatusValidated    Status = "validated"
	StatusInitiated    Status = "initiated"
	StatusAuthorized   Status = "authorized"
	StatusPending      Status = "pending"
	StatusOK           Status = "ok"
	StatusUnauthorized Status = "unauthorized"
	StatusFailed       Status = "failed"
	StatusUpdating     Status = "updating"
	StatusBroken       Status = "broken"
	StatusClosed       Status = "closed"
)

// StatusFromAction maps a lifecycle action onto a connection status.
// The mapping is total: unrecognised actions fall back to StatusNone.
func StatusFromAction(action Action) Status {
	switch action {
	case ActionNone, ActionTokensNotFound:
		return StatusNone
	case ActionInitTokenValid:
		return StatusValidated
	case ActionInitTokenExpired, ActionInitTokensProvide, ActionMoreTokensProvide:
		return StatusPending
	case ActionAccountConnect, ActionAuthPageDisplay:
		return StatusInitiated
	case ActionAuthCodeProvide:
		return StatusAuthorized
	case ActionAuthCodeDeny:
		return StatusUnauthorized
	case ActionInitTokensDeny, ActionInitDataDeny:
		return StatusFailed
	case ActionInitDataProvide, ActionRequestAccept:
		return StatusOK
	case ActionRefrTokenExpired, ActionRefrTokenValid:
		return StatusUpdating
	case ActionMoreTokensDeny, ActionRequestDeny:
		return StatusBroken
	case ActionAccountDisconnect:
		return StatusClosed
	default:
		return StatusNone
	}
}

// Message returns the user-facing message for a status. Most statuses render
// without one.
func Message(status Status) string {
	switch status {
	case StatusUnauthorized:
		return "Not authorized."
	case StatusFailed:
		return "Connection failed."
	case StatusOK:
		return "Successfully connected"
	default:
		return ""
	}
}

// Screen identifies which screen the presentation layer should render for a
// given status.
type Screen string

// Screens.
const (
	ScreenNone       Screen = "none"
	ScreenWelcome    Screen = "welcome"
	ScreenAuth       Screen = "auth"
	ScreenConnection Screen = "connection"
	ScreenMain       Screen = "main"
)

// ScreenFromStatus routes a connection status to a screen.
func ScreenFromStatus(status Status) Screen {
	switch status {
	case StatusNone, StatusUnauthorized, StatusFailed, StatusClosed:
		return ScreenWelcome
	case StatusInitiated:
		return ScreenAuth
	case StatusValidated, StatusAuthorized, StatusPending:
		return ScreenConnection
	case StatusOK, StatusUpdating, StatusBroken:
		return ScreenMain
	default:
		return ScreenNone
	}
}
