package models

// Credentials holds everything needed to open a session for one account.
// The secrets are the opaque values sent after "basic " in the Authorization
// header of token requests.
type Credentials struct {
	// Email is the account login.
	Email string
	// Password is the account password, used only by the password grant.
	Password string
	// LauncherSecret authenticates the password grant and the launcher
	// token's refresh requests.
	LauncherSecret string
	// ClientSecret authenticates the exchange-code grant and the client
	// token's refresh requests.
	ClientSecret string
}

// SecretFor returns the secret that mints and renews tokens of the given kind.
// ok is false for an unknown kind.
func (c Credentials) SecretFor(kind TokenKind) (secret string, ok bool) {
	switch kind {
	case TokenKindLauncher:
		return c.LauncherSecret, true
	case TokenKindClient:
		return c.ClientSecret, true
	default:
		return "", false
	}
}
