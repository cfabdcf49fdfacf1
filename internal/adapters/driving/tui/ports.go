package tui

import (
	"github.com/m-kupiec/music-app/internal/core/ports/driving"
)

// Ports provides the TUI access to core services via driving ports.
type Ports struct {
	// Connection drives the account-connection flow.
	Connection driving.ConnectionService
}

// Validate checks that all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Connection == nil {
		return ErrMissingConnectionService
	}
	return nil
}
