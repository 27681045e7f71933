package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
// Positional arguments left after the flags are returned in
// [StructuredConfig.Command].
//
// Flags:
//
//	-c/-config json file path with configs
//	-email account email
//	-password account password
//	-launcher-secret launcher client secret
//	-client-secret game client secret
//	-request-timeout request timeout (e.g., "5s")
//	-proxy forward proxy URL
//	-verify-tls verify TLS certificates
//	-base-url send every service to one host
//	-renewal-margin time before expiry a token is renewed (e.g., "15s")
//	-renewal-attempts refresh attempts before giving up the session
//	-renewal-retry-delay pause between refresh attempts
//	-log-level zerolog level name
func ParseFlags() *StructuredConfig {
	var jsonConfigPath string
	var email, password, launcherSecret, clientSecret string
	var requestTimeout time.Duration
	var proxy, baseURL string
	var verifyTLS bool
	var renewalMargin, renewalRetryDelay time.Duration
	var renewalAttempts uint
	var logLevel string

	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&email, "email", "", "Account email")
	flag.StringVar(&password, "password", "", "Account password")
	flag.StringVar(&launcherSecret, "launcher-secret", "", "Launcher client secret")
	flag.StringVar(&clientSecret, "client-secret", "", "Game client secret")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	flag.StringVar(&proxy, "proxy", "", "Forward proxy URL")
	flag.BoolVar(&verifyTLS, "verify-tls", false, "Verify TLS certificates")
	flag.StringVar(&baseURL, "base-url", "", "Send every service to this host")
	flag.DurationVar(&renewalMargin, "renewal-margin", 0, "Renew tokens this long before expiry (e.g., 15s)")
	flag.UintVar(&renewalAttempts, "renewal-attempts", 0, "Refresh attempts before giving up the session")
	flag.DurationVar(&renewalRetryDelay, "renewal-retry-delay", 0, "Pause between refresh attempts")
	flag.StringVar(&logLevel, "log-level", "", "Log level")

	flag.Parse()

	return &StructuredConfig{
		Credentials: Credentials{
			Email:          email,
			Password:       password,
			LauncherSecret: launcherSecret,
			ClientSecret:   clientSecret,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
			Proxy:          proxy,
			VerifyTLS:      verifyTLS,
			BaseURL:        baseURL,
		},
		Session: Session{
			RenewalMargin:     renewalMargin,
			RenewalAttempts:   renewalAttempts,
			RenewalRetryDelay: renewalRetryDelay,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
		Command:      flag.Args(),
	}
}
