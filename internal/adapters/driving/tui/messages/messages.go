// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/m-kupiec/music-app/internal/core/domain"
)

// StatusChanged is sent whenever the connection flow moves to a new status.
type StatusChanged struct {
	Status domain.Status
}

// AuthPageOpened is sent when the authorization page has been opened in the
// browser (or printed for manual opening).
type AuthPageOpened struct {
	URL string
}

// ProfileLoaded carries the connected account's profile.
type ProfileLoaded struct {
	Profile *domain.UserProfile
}

// FlowFinished signals the connection flow has reached a terminal status.
type FlowFinished struct {
	Status domain.Status

	// Details holds formatted failure details, empty on success.
	Details string
}

// ErrorOccurred signals that an error happened outside the flow itself,
// such as the callback server failing to start.
type ErrorOccurred struct {
	Err error
}
