package fortnite

import (
	"errors"

	"github.com/MKhiriev/go-fortnite-client/internal/adapter"
	"github.com/MKhiriev/go-fortnite-client/internal/session"
	"github.com/MKhiriev/go-fortnite-client/models"
)

// ErrInvalidArgument is returned before any request is sent when a call
// argument (locale, country, window, leaderboard query) is not valid.
var ErrInvalidArgument = errors.New("invalid argument")

// Transport errors. Every failed request wraps ErrTransport; HTTP statuses
// that have a sentinel wrap it as well.
var (
	ErrTransport           = adapter.ErrTransport
	ErrBadRequest          = adapter.ErrBadRequest
	ErrUnauthorized        = adapter.ErrUnauthorized
	ErrForbidden           = adapter.ErrForbidden
	ErrNotFound            = adapter.ErrNotFound
	ErrTooManyRequests     = adapter.ErrTooManyRequests
	ErrInternalServerError = adapter.ErrInternalServerError
	ErrBadGateway          = adapter.ErrBadGateway
	ErrServiceUnavailable  = adapter.ErrServiceUnavailable
)

// ErrDecode wraps responses that are malformed or miss required fields.
var ErrDecode = models.ErrDecode

// Session errors.
var (
	ErrNotAuthenticated     = session.ErrNotAuthenticated
	ErrAlreadyAuthenticated = session.ErrAlreadyAuthenticated
	ErrLoginInProgress      = session.ErrLoginInProgress
	ErrHandshake            = session.ErrHandshake
	ErrTokenRouting         = session.ErrTokenRouting
	ErrRenewalFailed        = session.ErrRenewalFailed
)
