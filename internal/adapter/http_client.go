package adapter

import (
	"crypto/tls"

	"github.com/MKhiriev/go-fortnite-client/internal/config"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// correlationIDHeader tags each outbound request so it can be matched with
// upstream logs.
const correlationIDHeader = "X-Epic-Correlation-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client shared by the
// identity and API adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client configured from cfg:
//   - every request is bounded by cfg.RequestTimeout;
//   - cfg.Proxy, when set, is used as the forward proxy;
//   - certificate verification is skipped unless cfg.VerifyTLS is set;
//   - each request carries a fresh correlation id and is logged at debug.
func NewHTTPClient(cfg config.Adapter, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: !cfg.VerifyTLS}).
		SetJSONMarshaler(models.JSON.Marshal).
		SetJSONUnmarshaler(models.JSON.Unmarshal)

	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader(correlationIDHeader, uuid.NewString())
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Str("correlation_id", resp.Request.Header.Get(correlationIDHeader)).
			Msg("request completed")
		return nil
	})

	return &HTTPClient{Client: client}
}
