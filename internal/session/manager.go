// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the login handshake and the lifetime of the two
// tokens it produces.
//
// A [Manager] turns account credentials into a launcher token and then a
// client token, keeps both alive with one renewal worker per lineage, and
// hands out the Authorization header of the current client token. Business
// calls never wait on renewal: the client token lives in an atomic slot that
// renewal replaces wholesale.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-fortnite-client/internal/adapter"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/internal/workers"
	"github.com/MKhiriev/go-fortnite-client/models"
)

const (
	DefaultRenewalMargin     = 15 * time.Second
	DefaultRenewalAttempts   = 3
	DefaultRenewalRetryDelay = 2 * time.Second
)

// Options tune a [Manager]. Zero values select the defaults.
type Options struct {
	// RenewalMargin is how long before expiry a token is renewed.
	RenewalMargin time.Duration

	// RenewalAttempts bounds the refresh requests tried per renewal.
	RenewalAttempts uint

	// RenewalRetryDelay is the pause between failed refresh requests.
	RenewalRetryDelay time.Duration

	Clock  Clock
	Logger *logger.Logger

	// OnRenewalFailure, when set, is called with an error wrapping
	// ErrRenewalFailed after a lineage could not be renewed and the session
	// went back to StateUnauthenticated. It runs on the renewal goroutine; it
	// may call Login but must not call Close.
	OnRenewalFailure func(error)
}

// Manager drives the session state machine
// Unauthenticated → LoggingIn → Authenticated. It is safe for concurrent use.
type Manager struct {
	creds    models.Credentials
	identity adapter.IdentityAdapter

	margin     time.Duration
	attempts   uint
	retryDelay time.Duration
	clock      Clock
	logger     *logger.Logger
	onFailure  func(error)

	launcher atomic.Pointer[models.AccessToken]
	client   atomic.Pointer[models.AccessToken]

	mu          sync.Mutex
	state       State
	epoch       uint64
	loginCancel context.CancelFunc
	renewals    *workers.Workers
}

// NewManager returns an unauthenticated Manager that logs in with creds
// through identity.
func NewManager(creds models.Credentials, identity adapter.IdentityAdapter, opts Options) *Manager {
	m := &Manager{
		creds:      creds,
		identity:   identity,
		margin:     opts.RenewalMargin,
		attempts:   opts.RenewalAttempts,
		retryDelay: opts.RenewalRetryDelay,
		clock:      opts.Clock,
		logger:     opts.Logger,
		onFailure:  opts.OnRenewalFailure,
	}

	if m.margin <= 0 {
		m.margin = DefaultRenewalMargin
	}
	if m.attempts == 0 {
		m.attempts = DefaultRenewalAttempts
	}
	if m.retryDelay <= 0 {
		m.retryDelay = DefaultRenewalRetryDelay
	}
	if m.clock == nil {
		m.clock = SystemClock()
	}
	if m.logger == nil {
		m.logger = logger.Nop()
	}
	m.logger = m.logger.WithComponent("session")

	return m
}

// Login runs the handshake:
//  1. password grant → launcher token;
//  2. exchange code for the launcher token;
//  3. exchange-code grant → client token;
//  4. invalidation of the account's other sessions.
//
// On success both renewal workers are running and the session is
// Authenticated. On failure no token and no worker is left behind and the
// returned error wraps ErrHandshake and the failing step's error.
func (m *Manager) Login(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case StateLoggingIn:
		m.mu.Unlock()
		return ErrLoginInProgress
	case StateAuthenticated:
		m.mu.Unlock()
		return ErrAlreadyAuthenticated
	}
	m.state = StateLoggingIn
	m.epoch++
	epoch := m.epoch
	loginCtx, cancel := context.WithCancel(ctx)
	m.loginCancel = cancel
	m.mu.Unlock()
	defer cancel()

	launcher, client, err := m.handshake(loginCtx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.epoch != epoch {
		// closed while logging in; Close already reset the state
		if err == nil {
			err = context.Canceled
		}
		return fmt.Errorf("%w: %w", ErrHandshake, err)
	}
	m.loginCancel = nil

	if err != nil {
		m.state = StateUnauthenticated
		m.logger.Error().Err(err).Msg("login failed")
		return fmt.Errorf("%w: %w", ErrHandshake, err)
	}

	m.launcher.Store(launcher)
	m.client.Store(client)
	m.state = StateAuthenticated

	if m.renewals != nil {
		// left over from a given-up session; its workers are already cancelled
		m.renewals.Cancel()
	}
	m.renewals = workers.New(
		m.renewalWorker(models.TokenKindLauncher, epoch),
		m.renewalWorker(models.TokenKindClient, epoch),
	)
	m.renewals.Start(context.Background())

	m.logger.Info().
		Str("account_id", client.AccountID).
		Time("launcher_renew_at", launcher.RenewAt(m.margin)).
		Time("client_renew_at", client.RenewAt(m.margin)).
		Msg("logged in")

	return nil
}

func (m *Manager) handshake(ctx context.Context) (launcher, client *models.AccessToken, err error) {
	launcher, err = m.identity.RequestToken(ctx, models.PasswordGrant(m.creds))
	if err != nil {
		return nil, nil, fmt.Errorf("password grant: %w", err)
	}
	m.logger.Debug().Time("renew_at", launcher.RenewAt(m.margin)).Msg("launcher token issued")

	exchange, err := m.identity.OAuthExchange(ctx, launcher)
	if err != nil {
		return nil, nil, fmt.Errorf("oauth exchange: %w", err)
	}

	client, err = m.identity.RequestToken(ctx, models.ExchangeCodeGrant(m.creds, exchange.Code))
	if err != nil {
		return nil, nil, fmt.Errorf("exchange code grant: %w", err)
	}
	m.logger.Debug().Time("renew_at", client.RenewAt(m.margin)).Msg("client token issued")

	if err = m.identity.KillOtherSessions(ctx, client.AuthorizationHeader()); err != nil {
		return nil, nil, fmt.Errorf("kill other sessions: %w", err)
	}

	return launcher, client, nil
}

// AuthorizationHeader returns the Authorization header value of the current
// client token, or ErrNotAuthenticated.
func (m *Manager) AuthorizationHeader() (string, error) {
	token := m.client.Load()
	if token == nil {
		return "", ErrNotAuthenticated
	}
	return token.AuthorizationHeader(), nil
}

// State returns the current lifecycle stage.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Tokens returns the current launcher and client tokens. Both are nil unless
// the session is Authenticated.
func (m *Manager) Tokens() (launcher, client *models.AccessToken) {
	return m.launcher.Load(), m.client.Load()
}

// Close aborts a running login, stops both renewal workers, waits for them to
// exit and drops the tokens. It is idempotent and always returns nil.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.epoch++
	if m.loginCancel != nil {
		m.loginCancel()
		m.loginCancel = nil
	}
	renewals := m.renewals
	m.renewals = nil
	wasAuthenticated := m.state == StateAuthenticated
	m.state = StateUnauthenticated
	m.launcher.Store(nil)
	m.client.Store(nil)
	m.mu.Unlock()

	if renewals != nil {
		renewals.Stop()
	}
	if wasAuthenticated {
		m.logger.Info().Msg("session closed")
	}

	return nil
}
