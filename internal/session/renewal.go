package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-fortnite-client/internal/adapter"
	"github.com/MKhiriev/go-fortnite-client/internal/workers"
	"github.com/MKhiriev/go-fortnite-client/models"
	"github.com/avast/retry-go/v4"
)

// errSessionEnded tells a renewal worker its session was closed or replaced.
var errSessionEnded = errors.New("session ended")

// renewalWorker keeps the token of one lineage alive: it sleeps until the
// token's renewal moment, refreshes it, stores the result and repeats.
func (m *Manager) renewalWorker(kind models.TokenKind, epoch uint64) workers.Worker {
	log := m.logger.With().Stringer("kind", kind).Logger()

	return workers.WorkerFunc(func(ctx context.Context) {
		for {
			token := m.slot(kind).Load()
			if token == nil {
				return
			}

			renewAt := token.RenewAt(m.margin)
			log.Debug().Time("renew_at", renewAt).Msg("renewal scheduled")

			timer := m.clock.NewTimer(renewAt.Sub(m.clock.Now()))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C():
			}

			secret, _ := m.creds.SecretFor(kind)
			renewed, err := m.refresh(ctx, token, secret)
			if ctx.Err() != nil {
				return
			}
			if err == nil {
				err = m.applyRenewal(epoch, secret, renewed)
			}
			if errors.Is(err, errSessionEnded) {
				return
			}
			if err != nil {
				m.giveUp(epoch, kind, err)
				return
			}

			log.Info().Time("expires_at", renewed.Expiry()).Msg("token renewed")
		}
	})
}

// refresh requests a new token for token's lineage. Transient failures are
// retried while token is still valid; a rejected grant or an unreadable
// response is final.
func (m *Manager) refresh(ctx context.Context, token *models.AccessToken, secret string) (*models.AccessToken, error) {
	req := models.RefreshGrant(token, secret)

	return retry.DoWithData(
		func() (*models.AccessToken, error) {
			return m.identity.RequestToken(ctx, req)
		},
		retry.Context(ctx),
		retry.Attempts(m.attempts),
		retry.Delay(m.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !adapter.IsRejected(err) &&
				!errors.Is(err, models.ErrDecode) &&
				m.clock.Now().Before(token.Expiry())
		}),
		retry.OnRetry(func(n uint, err error) {
			m.logger.Warn().Err(err).Uint("attempt", n+1).Stringer("kind", token.Kind).Msg("token refresh failed, retrying")
		}),
	)
}

// applyRenewal stores renewed in the slot of its kind. The token is accepted
// only if secret, the secret it was minted with, is the credentials secret of
// that kind; otherwise ErrTokenRouting is returned and no slot changes.
func (m *Manager) applyRenewal(epoch uint64, secret string, renewed *models.AccessToken) error {
	expected, ok := m.creds.SecretFor(renewed.Kind)
	if !ok || secret != expected {
		return fmt.Errorf("%w: %s token minted with a foreign secret", ErrTokenRouting, renewed.Kind)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.epoch != epoch || m.state != StateAuthenticated {
		return errSessionEnded
	}
	m.slot(renewed.Kind).Store(renewed)

	return nil
}

// giveUp ends the session after a lineage could not be renewed.
func (m *Manager) giveUp(epoch uint64, kind models.TokenKind, cause error) {
	m.mu.Lock()
	if m.epoch != epoch || m.state != StateAuthenticated {
		m.mu.Unlock()
		return
	}
	m.epoch++
	m.state = StateUnauthenticated
	m.launcher.Store(nil)
	m.client.Store(nil)
	renewals := m.renewals
	m.mu.Unlock()

	// called on a renewal goroutine, so the group cannot be waited on here
	if renewals != nil {
		renewals.Cancel()
	}

	err := fmt.Errorf("%w: %s token: %w", ErrRenewalFailed, kind, cause)
	m.logger.Error().Err(err).Msg("session given up")

	if m.onFailure != nil {
		m.onFailure(err)
	}
}

func (m *Manager) slot(kind models.TokenKind) *atomic.Pointer[models.AccessToken] {
	if kind == models.TokenKindLauncher {
		return &m.launcher
	}
	return &m.client
}
