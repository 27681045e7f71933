package session

import "errors"

var (
	// ErrNotAuthenticated is returned by calls that need a client token
	// while the session has none.
	ErrNotAuthenticated = errors.New("session not authenticated")

	// ErrAlreadyAuthenticated is returned by Login on an authenticated session.
	ErrAlreadyAuthenticated = errors.New("session already authenticated")

	// ErrLoginInProgress is returned by Login while another Login runs.
	ErrLoginInProgress = errors.New("login already in progress")

	// ErrHandshake wraps the error of the failing login step.
	ErrHandshake = errors.New("login handshake failed")

	// ErrTokenRouting is returned when a renewed token cannot be attributed
	// to the lineage it claims: the secret that minted it is not the
	// credentials secret of its kind.
	ErrTokenRouting = errors.New("renewed token does not match any lineage")

	// ErrRenewalFailed is handed to the renewal-failure hook when a lineage
	// could not be renewed and the session was given up.
	ErrRenewalFailed = errors.New("token renewal failed")
)
