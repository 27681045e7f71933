// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP transport to the game-service REST API.
//
// [IdentityAdapter] talks to the account service (token grants, exchange
// codes, session invalidation) and [APIAdapter] to the business endpoints.
// Both share one resty client built by [NewHTTPClient] and address endpoints
// through a [urls.Resolver].
//
// Every failure to get a 2xx response wraps [ErrTransport] (plus a status
// sentinel such as [ErrUnauthorized] where one applies); a body that does not
// match the expected model wraps models.ErrDecode.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fortnite-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityAdapter is the account-service side of the login handshake and of
// token renewal.
type IdentityAdapter interface {
	// RequestToken performs one call to the token endpoint: password,
	// exchange_code or refresh_token grant, authenticated with req.Secret.
	// The returned token carries req.Kind.
	RequestToken(ctx context.Context, req models.TokenRequest) (*models.AccessToken, error)

	// OAuthExchange requests a short-lived exchange code using launcher as
	// the bearer credential.
	OAuthExchange(ctx context.Context, launcher *models.AccessToken) (*models.OAuthExchange, error)

	// KillOtherSessions invalidates every other session of the account. The
	// authorization value is the full Authorization header of the caller's
	// client token. No body is expected back.
	KillOtherSessions(ctx context.Context, authorization string) error
}

// APIAdapter is the business side of the API. Authenticated calls receive
// the Authorization header value to send; it is read once per call by the
// caller so a concurrent renewal never produces a torn header.
type APIAdapter interface {
	// Status returns the service availability. Unauthenticated.
	Status(ctx context.Context) (*models.Status, error)

	// GameNews returns the news page for countryCode (sent as the
	// epicCountry cookie). Unauthenticated.
	GameNews(ctx context.Context, countryCode string) (*models.News, error)

	// PlayerStats returns the bulk statistics of userID over window.
	PlayerStats(ctx context.Context, authorization, userID string, window models.TimeWindow) (*models.PlayerStats, error)

	// Leaderboard returns one leaderboard page.
	Leaderboard(ctx context.Context, authorization string, q models.LeaderboardQuery) (*models.Leaderboard, error)

	// Store returns the storefront catalog localized for locale.
	Store(ctx context.Context, authorization, locale string) (*models.Store, error)

	// Lookup finds the account whose display name is username.
	Lookup(ctx context.Context, authorization, username string) (*models.Lookup, error)
}
