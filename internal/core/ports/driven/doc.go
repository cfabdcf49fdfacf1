// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StateStore: Connection state and credential persistence
//   - TokenAPI: The provider's token endpoint
//   - WebAPI: The provider's Web API
//
// # Optional Interfaces
//
//   - Browser: Opens the authorization page. Without it, the URL is printed
//     for manual opening.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
