package models

// GrantType selects the credential-exchange flow of a token request.
type GrantType string

const (
	GrantTypePassword     GrantType = "password"
	GrantTypeExchangeCode GrantType = "exchange_code"
	GrantTypeRefreshToken GrantType = "refresh_token"
)

// exchangeTokenType asks the identity service for JWT-backed access values.
const exchangeTokenType = "eg1"

// TokenRequest describes one call to the token endpoint. Kind is stamped on
// the resulting [AccessToken]; Secret authenticates the request.
type TokenRequest struct {
	Kind      TokenKind
	Secret    string
	GrantType GrantType

	Username     string
	Password     string
	ExchangeCode string
	RefreshToken string
}

// PasswordGrant builds the first handshake request, which yields the launcher
// token.
func PasswordGrant(creds Credentials) TokenRequest {
	return TokenRequest{
		Kind:      TokenKindLauncher,
		Secret:    creds.LauncherSecret,
		GrantType: GrantTypePassword,
		Username:  creds.Email,
		Password:  creds.Password,
	}
}

// ExchangeCodeGrant builds the request that swaps an exchange code for the
// client token.
func ExchangeCodeGrant(creds Credentials, code string) TokenRequest {
	return TokenRequest{
		Kind:         TokenKindClient,
		Secret:       creds.ClientSecret,
		GrantType:    GrantTypeExchangeCode,
		ExchangeCode: code,
	}
}

// RefreshGrant builds the renewal request for token, authenticated with
// secret. The renewed token keeps token's kind.
func RefreshGrant(token *AccessToken, secret string) TokenRequest {
	return TokenRequest{
		Kind:         token.Kind,
		Secret:       secret,
		GrantType:    GrantTypeRefreshToken,
		RefreshToken: token.RefreshToken,
	}
}

// Form renders the url-encoded body of the request.
func (r TokenRequest) Form() map[string]string {
	form := map[string]string{
		"grant_type":   string(r.GrantType),
		"includePerms": "true",
	}

	switch r.GrantType {
	case GrantTypePassword:
		form["username"] = r.Username
		form["password"] = r.Password
	case GrantTypeExchangeCode:
		form["exchange_code"] = r.ExchangeCode
		form["token_type"] = exchangeTokenType
	case GrantTypeRefreshToken:
		form["refresh_token"] = r.RefreshToken
	}

	return form
}
