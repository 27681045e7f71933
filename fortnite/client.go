// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fortnite is a client for the Fortnite game-service REST API.
//
// A [Client] logs in with account credentials and then serves player
// statistics, leaderboards, the store catalog and account lookup. Tokens are
// renewed in the background for as long as the client is open. Service
// status and game news need no account and are also available as the
// package-level [CheckStatus] and [GetGameNews].
//
//	c := fortnite.New(creds, fortnite.Options{})
//	if err := c.Login(ctx); err != nil {
//		return err
//	}
//	defer c.Close()
//
//	stats, err := c.GetBattleRoyaleStatsByID(ctx, accountID, models.TimeWindowWeekly)
package fortnite

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fortnite-client/internal/adapter"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/internal/session"
	"github.com/MKhiriev/go-fortnite-client/internal/urls"
	"github.com/MKhiriev/go-fortnite-client/models"
)

// State is the lifecycle stage of a client's session.
type State = session.State

const (
	StateUnauthenticated = session.StateUnauthenticated
	StateLoggingIn       = session.StateLoggingIn
	StateAuthenticated   = session.StateAuthenticated
)

// Client is an authenticated view of the API. It is safe for concurrent use.
type Client struct {
	session *session.Manager
	api     adapter.APIAdapter
	logger  *logger.Logger
}

// New returns a client for the account described by creds. It sends nothing
// until Login.
func New(creds models.Credentials, opts Options) *Client {
	log := opts.logger()
	httpClient := adapter.NewHTTPClient(opts.adapterConfig(), log)
	resolver := urls.NewResolver(opts.Hosts)

	identity := adapter.NewHTTPIdentityAdapter(httpClient, resolver, nil, log)
	api := adapter.NewHTTPAPIAdapter(httpClient, resolver, log)

	return newClient(session.NewManager(creds, identity, opts.sessionOptions(log)), api, log)
}

func newClient(manager *session.Manager, api adapter.APIAdapter, log *logger.Logger) *Client {
	return &Client{
		session: manager,
		api:     api,
		logger:  log.WithComponent("fortnite"),
	}
}

// Login opens the session. The returned error wraps ErrHandshake unless the
// client is already logged in (ErrAlreadyAuthenticated) or logging in
// (ErrLoginInProgress).
func (c *Client) Login(ctx context.Context) error {
	return c.session.Login(ctx)
}

// Close ends the session and stops token renewal. The client may log in
// again afterwards.
func (c *Client) Close() error {
	return c.session.Close()
}

// State returns the lifecycle stage of the session.
func (c *Client) State() State {
	return c.session.State()
}

// AuthorizationHeader returns the Authorization header value business calls
// are currently sent with.
func (c *Client) AuthorizationHeader() (string, error) {
	return c.session.AuthorizationHeader()
}

// GetBattleRoyaleStatsByID returns the statistics of the account userID over
// window. An empty window means all time.
func (c *Client) GetBattleRoyaleStatsByID(ctx context.Context, userID string, window models.TimeWindow) (*models.PlayerStats, error) {
	if window == "" {
		window = models.TimeWindowAllTime
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: empty account id", ErrInvalidArgument)
	}
	if !window.Valid() {
		return nil, fmt.Errorf("%w: time window %q", ErrInvalidArgument, window)
	}

	auth, err := c.session.AuthorizationHeader()
	if err != nil {
		return nil, err
	}

	return c.api.PlayerStats(ctx, auth, userID, window)
}

// GetLeaderboards returns one leaderboard page. Window defaults to all time
// and Limit to models.DefaultLeaderboardLimit.
func (c *Client) GetLeaderboards(ctx context.Context, q models.LeaderboardQuery) (*models.Leaderboard, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: leaderboard query: %v", ErrInvalidArgument, err)
	}

	auth, err := c.session.AuthorizationHeader()
	if err != nil {
		return nil, err
	}

	return c.api.Leaderboard(ctx, auth, q.WithDefaults())
}

// GetStore returns the store catalog in the language of locale, a BCP 47 tag
// such as "en-US". An empty locale means DefaultLocale.
func (c *Client) GetStore(ctx context.Context, locale string) (*models.Store, error) {
	tag, err := normalizeLocale(locale)
	if err != nil {
		return nil, err
	}

	auth, err := c.session.AuthorizationHeader()
	if err != nil {
		return nil, err
	}

	return c.api.Store(ctx, auth, tag)
}

// Lookup finds the account whose display name is username.
func (c *Client) Lookup(ctx context.Context, username string) (*models.Lookup, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", ErrInvalidArgument)
	}

	auth, err := c.session.AuthorizationHeader()
	if err != nil {
		return nil, err
	}

	return c.api.Lookup(ctx, auth, username)
}

// CheckStatus reports the service availability. It works without a session.
func (c *Client) CheckStatus(ctx context.Context) (*models.Status, error) {
	return c.api.Status(ctx)
}

// GetGameNews returns the news for countryCode, an ISO 3166 region such as
// "US". An empty code means DefaultCountry. It works without a session.
func (c *Client) GetGameNews(ctx context.Context, countryCode string) (*models.News, error) {
	region, err := normalizeCountry(countryCode)
	if err != nil {
		return nil, err
	}

	return c.api.GameNews(ctx, region)
}
