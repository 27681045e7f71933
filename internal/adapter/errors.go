package adapter

import "errors"

// ErrTransport wraps every failure to obtain a successful response: network
// errors, timeouts and non-2xx statuses. Status-specific sentinels below are
// wrapped alongside it.
var ErrTransport = errors.New("transport error")

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
