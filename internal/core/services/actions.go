package services

import (
	"time"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

// tokenBasedAction derives the initial browser action from the stored
// credential record.
func tokenBasedAction(tokens *domain.Tokens, now time.Time) domain.Action {
	if tokens == nil {
		return domain.ActionTokensNotFound
	}
	if !tokens.ExpiredAt(now) {
		return domain.ActionInitTokenValid
	}
	return domain.ActionInitTokenExpired
}

// authResponseAction folds the outcome of the authorization callback into a
// server action.
func authResponseAction(err error) domain.Action {
	if err != nil {
		return domain.ActionAuthCodeDeny
	}
	return domain.ActionAuthCodeProvide
}

// tokenExchangeAction folds the outcome of the token exchange phase into a
// server action.
func tokenExchangeAction(err error) domain.Action {
	if err != nil {
		return domain.ActionInitTokensDeny
	}
	return domain.ActionInitTokensProvide
}

// profileFetchAction folds the outcome of the profile fetch phase into a
// server action.
func profileFetchAction(err error) domain.Action {
	if err != nil {
		return domain.ActionInitDataDeny
	}
	return domain.ActionInitDataProvide
}
