package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/internal/urls"
	"github.com/MKhiriev/go-fortnite-client/models"
)

// killTypeOthers invalidates every other session of the account across all
// clients and services.
const killTypeOthers = "OTHERS_ACCOUNT_CLIENT_SERVICE"

type httpIdentityAdapter struct {
	client   *HTTPClient
	resolver urls.Resolver
	now      func() time.Time
	logger   *logger.Logger
}

// NewHTTPIdentityAdapter returns an [IdentityAdapter] over client. now stamps
// IssuedAt on every token; nil means time.Now.
func NewHTTPIdentityAdapter(client *HTTPClient, resolver urls.Resolver, now func() time.Time, log *logger.Logger) IdentityAdapter {
	if now == nil {
		now = time.Now
	}
	return &httpIdentityAdapter{
		client:   client,
		resolver: resolver,
		now:      now,
		logger:   log.WithComponent("identity"),
	}
}

func (a *httpIdentityAdapter) RequestToken(ctx context.Context, req models.TokenRequest) (*models.AccessToken, error) {
	// lifetime is counted from the moment the request leaves, so the local
	// deadline can only be early, never late
	issuedAt := a.now()

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "basic "+req.Secret).
		SetFormData(req.Form()).
		Post(a.resolver.OAuthToken())
	if err != nil {
		a.logger.Err(err).Str("grant_type", string(req.GrantType)).Msg("token request failed")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		a.logger.Err(err).Str("grant_type", string(req.GrantType)).Msg("token request rejected")
		return nil, err
	}

	token, err := models.DecodeAccessToken(req.Kind, resp.Body(), issuedAt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("grant_type", string(req.GrantType)).
		Stringer("kind", token.Kind).
		Int64("expires_in", token.ExpiresIn).
		Msg("token issued")

	return token, nil
}

func (a *httpIdentityAdapter) OAuthExchange(ctx context.Context, launcher *models.AccessToken) (*models.OAuthExchange, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", launcher.AuthorizationHeader()).
		Get(a.resolver.OAuthExchange())
	if err != nil {
		a.logger.Err(err).Msg("exchange request failed")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		a.logger.Err(err).Msg("exchange request rejected")
		return nil, err
	}

	return models.DecodeOAuthExchange(resp.Body())
}

func (a *httpIdentityAdapter) KillOtherSessions(ctx context.Context, authorization string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization).
		SetFormData(map[string]string{"killType": killTypeOthers}).
		Delete(a.resolver.KillOtherSessions())
	if err != nil {
		a.logger.Err(err).Msg("kill sessions request failed")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return mapHTTPError(resp)
}
