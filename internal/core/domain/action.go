package domain

// Action is a discrete lifecycle event in the account-connection flow.
// Actions are transient: they are computed from current inputs, folded into a
// Status, and never stored.
type Action string

// Browser-originated actions (token presence/expiry signals at page load).
const (
	ActionNone             Action = "none"
	ActionTokensNotFound   Action = "tokensNotFound"
	ActionInitTokenValid   Action = "initTokenValidated"
	ActionInitTokenExpired Action = "initTokenExpired"
	ActionRefrTokenValid   Action = "refrTokenValidated"
	ActionRefrTokenExpired Action = "refrTokenExpired"
)

// User-originated actions.
const (
	ActionAccountConnect    Action = "accountConnect"
	ActionAccountModalOpen  Action = "accountModalOpen"
	ActionAccountModalClose Action = "accountModalClose"
	ActionAccountDisconnect Action = "accountDisconnect"
)

// Server-originated actions (authorization, token and profile accept-or-deny
// signals).
const (
	ActionAuthPageDisplay   Action = "authPageDisplay"
	ActionAuthCodeProvide   Action = "authCodeProvide"
	ActionAuthCodeDeny      Action = "authCodeDeny"
	ActionInitTokensProvide Action = "initTokensProvide"
	ActionInitTokensDeny    Action = "initTokensDeny"
	ActionInitDataProvide   Action = "initDataProvide"
	ActionInitDataDeny      Action = "initDataDeny"
	ActionMoreTokensProvide Action = "moreTokensProvide"
	ActionMoreTokensDeny    Action = "moreTokensDeny"
	ActionRequestAccept     Action = "requestAccept"
	ActionRequestDeny       Action = "requestDeny"
)
