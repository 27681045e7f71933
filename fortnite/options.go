package fortnite

import (
	"time"

	"github.com/MKhiriev/go-fortnite-client/internal/config"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/internal/session"
	"github.com/MKhiriev/go-fortnite-client/internal/urls"
	"github.com/MKhiriev/go-fortnite-client/models"
	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds every request when Options.Timeout is unset.
	DefaultTimeout = 5 * time.Second

	// DefaultLocale is the store language used when none is given.
	DefaultLocale = "en-US"

	// DefaultCountry is the news country used when none is given.
	DefaultCountry = "US"
)

// Hosts is the base URL of every upstream service. Empty entries use the
// production host.
type Hosts = urls.Hosts

// Credentials identify the account a [Client] logs in with.
type Credentials = models.Credentials

// DefaultHosts returns the production hosts.
func DefaultHosts() Hosts { return urls.DefaultHosts() }

// SingleHost sends every service to base, e.g. a local proxy.
func SingleHost(base string) Hosts { return urls.SingleHost(base) }

// Options configure a [Client]. The zero value is usable.
type Options struct {
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// Proxy is an optional forward proxy URL.
	Proxy string

	// VerifyTLS turns on certificate verification, which is off by default.
	VerifyTLS bool

	Hosts Hosts

	// RenewalMargin is how long before expiry tokens are renewed (default 15s).
	RenewalMargin time.Duration

	// RenewalAttempts bounds the refresh requests per renewal (default 3).
	RenewalAttempts uint

	// RenewalRetryDelay is the pause between failed refresh requests
	// (default 2s).
	RenewalRetryDelay time.Duration

	// Logger receives the client's logs. Nil discards them.
	Logger *zerolog.Logger

	// OnRenewalFailure is called when the session had to be given up because
	// a token could not be renewed. The error wraps ErrRenewalFailed. Calls
	// to Login are allowed from the callback; Close is not.
	OnRenewalFailure func(error)
}

// OptionsFromConfig maps the loaded application configuration to Options.
func OptionsFromConfig(cfg *config.StructuredConfig) Options {
	opts := Options{
		Timeout:           cfg.Adapter.RequestTimeout,
		Proxy:             cfg.Adapter.Proxy,
		VerifyTLS:         cfg.Adapter.VerifyTLS,
		RenewalMargin:     cfg.Session.RenewalMargin,
		RenewalAttempts:   cfg.Session.RenewalAttempts,
		RenewalRetryDelay: cfg.Session.RenewalRetryDelay,
	}
	if cfg.Adapter.BaseURL != "" {
		opts.Hosts = SingleHost(cfg.Adapter.BaseURL)
	}
	return opts
}

func (o Options) logger() *logger.Logger {
	if o.Logger == nil {
		return logger.Nop()
	}
	return logger.Wrap(*o.Logger)
}

func (o Options) adapterConfig() config.Adapter {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return config.Adapter{
		RequestTimeout: timeout,
		Proxy:          o.Proxy,
		VerifyTLS:      o.VerifyTLS,
	}
}

func (o Options) sessionOptions(log *logger.Logger) session.Options {
	return session.Options{
		RenewalMargin:     o.RenewalMargin,
		RenewalAttempts:   o.RenewalAttempts,
		RenewalRetryDelay: o.RenewalRetryDelay,
		Logger:            log,
		OnRenewalFailure:  o.OnRenewalFailure,
	}
}
