package session

// State is the lifecycle stage of a session.
type State int

const (
	// StateUnauthenticated holds no tokens. Initial state, and the state
	// after a failed handshake, a given-up renewal or Close.
	StateUnauthenticated State = iota
	// StateLoggingIn is held for the duration of the login handshake.
	StateLoggingIn
	// StateAuthenticated holds both the launcher and the client token.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateLoggingIn:
		return "logging_in"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
