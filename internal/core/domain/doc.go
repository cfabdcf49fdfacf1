// Package domain defines the core business entities for the account
// connection flow.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Action: An event observed during the connection flow
//   - Status: The connection state derived from actions
//   - Tokens: The stored credential record
//   - UserProfile: The connected account's profile
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
