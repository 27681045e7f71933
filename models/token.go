package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind identifies the lineage a token belongs to. It is assigned when the
// token is created and carried unchanged through every renewal.
type TokenKind int

const (
	// TokenKindUnknown is the zero value and never routes anywhere.
	TokenKindUnknown TokenKind = iota
	// TokenKindLauncher is the first-stage token obtained with the password
	// grant. It is only used to request an exchange code.
	TokenKindLauncher
	// TokenKindClient is the second-stage token that authorizes every
	// business call.
	TokenKindClient
)

// String implements fmt.Stringer.
func (k TokenKind) String() string {
	switch k {
	case TokenKindLauncher:
		return "launcher"
	case TokenKindClient:
		return "client"
	default:
		return "unknown"
	}
}

// eg1Prefix marks access values that wrap a JWT (token_type "eg1").
const eg1Prefix = "eg1~"

// AccessToken is an immutable access/refresh token pair with its lifetime.
// Renewal always produces a new value; an AccessToken is never modified after
// construction.
type AccessToken struct {
	// Kind is the lineage of the token (launcher or client).
	Kind TokenKind

	// AccessToken is the bearer value.
	AccessToken string

	// RefreshToken is presented with the refresh_token grant.
	RefreshToken string

	// ExpiresIn is the lifetime of AccessToken in seconds, counted from IssuedAt.
	ExpiresIn int64

	// IssuedAt is the local time the token response was received.
	IssuedAt time.Time

	TokenType      string
	AccountID      string
	ClientID       string
	ExpiresAt      string
	RefreshExpires int64
}

type accessTokenWire struct {
	AccessToken    string `json:"access_token" validate:"required"`
	ExpiresIn      int64  `json:"expires_in" validate:"gt=0"`
	ExpiresAt      string `json:"expires_at"`
	TokenType      string `json:"token_type"`
	RefreshToken   string `json:"refresh_token" validate:"required"`
	RefreshExpires int64  `json:"refresh_expires"`
	AccountID      string `json:"account_id"`
	ClientID       string `json:"client_id"`
}

// DecodeAccessToken builds an [AccessToken] of the given kind from a token
// endpoint response body. issuedAt anchors the token's lifetime.
//
// When the body carries no account_id and the access value is an eg1 JWT, the
// account id is read from the token's "sub" claim.
func DecodeAccessToken(kind TokenKind, body []byte, issuedAt time.Time) (*AccessToken, error) {
	var wire accessTokenWire
	if err := Decode(body, &wire); err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}

	accountID := wire.AccountID
	if accountID == "" {
		accountID, _ = accountIDFromJWT(wire.AccessToken)
	}

	return &AccessToken{
		Kind:           kind,
		AccessToken:    wire.AccessToken,
		RefreshToken:   wire.RefreshToken,
		ExpiresIn:      wire.ExpiresIn,
		IssuedAt:       issuedAt,
		TokenType:      wire.TokenType,
		AccountID:      accountID,
		ClientID:       wire.ClientID,
		ExpiresAt:      wire.ExpiresAt,
		RefreshExpires: wire.RefreshExpires,
	}, nil
}

// Expiry returns the moment the access value stops being valid.
func (t *AccessToken) Expiry() time.Time {
	return t.IssuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// RenewAt returns the moment the token should be renewed: margin before
// Expiry. A token whose lifetime does not exceed margin is renewed halfway
// through it instead, so the moment stays after IssuedAt.
func (t *AccessToken) RenewAt(margin time.Duration) time.Time {
	lifetime := time.Duration(t.ExpiresIn) * time.Second
	if lifetime <= margin {
		return t.IssuedAt.Add(lifetime / 2)
	}
	return t.Expiry().Add(-margin)
}

// AuthorizationHeader returns the value of the Authorization header that
// presents this token as a bearer credential.
func (t *AccessToken) AuthorizationHeader() string {
	return "bearer " + t.AccessToken
}

// accountIDFromJWT extracts the "sub" claim of an eg1 access value without
// verifying its signature; the identity service is the only verifier.
func accountIDFromJWT(access string) (string, error) {
	raw, ok := strings.CutPrefix(access, eg1Prefix)
	if !ok {
		return "", errors.New("not an eg1 token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	return token.Claims.GetSubject()
}

// OAuthExchange is the short-lived code swapped for a client token.
type OAuthExchange struct {
	Code             string `json:"code" validate:"required"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
	CreatingClientID string `json:"creatingClientId"`
}

// DecodeOAuthExchange decodes an exchange endpoint response body.
func DecodeOAuthExchange(body []byte) (*OAuthExchange, error) {
	var exchange OAuthExchange
	if err := Decode(body, &exchange); err != nil {
		return nil, fmt.Errorf("oauth exchange: %w", err)
	}
	return &exchange, nil
}
