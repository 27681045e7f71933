package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/internal/urls"
	"github.com/MKhiriev/go-fortnite-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	languageHeader = "X-EpicGames-Language"
	countryCookie  = "epicCountry"

	// ownerTypeAccount ranks leaderboards by account rather than by party.
	ownerTypeAccount = "1"
)

type httpAPIAdapter struct {
	client   *HTTPClient
	resolver urls.Resolver
	logger   *logger.Logger
}

// NewHTTPAPIAdapter returns an [APIAdapter] over client.
func NewHTTPAPIAdapter(client *HTTPClient, resolver urls.Resolver, log *logger.Logger) APIAdapter {
	return &httpAPIAdapter{
		client:   client,
		resolver: resolver,
		logger:   log.WithComponent("api"),
	}
}

func (a *httpAPIAdapter) Status(ctx context.Context) (*models.Status, error) {
	body, err := a.do(a.client.R().SetContext(ctx), http.MethodGet, a.resolver.ServiceStatus())
	if err != nil {
		return nil, err
	}
	return models.DecodeStatus(body)
}

func (a *httpAPIAdapter) GameNews(ctx context.Context, countryCode string) (*models.News, error) {
	req := a.client.R().
		SetContext(ctx).
		SetCookie(&http.Cookie{Name: countryCookie, Value: countryCode})

	body, err := a.do(req, http.MethodGet, a.resolver.GameNews())
	if err != nil {
		return nil, err
	}

	var news models.News
	if err = models.Decode(body, &news); err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}
	return &news, nil
}

func (a *httpAPIAdapter) PlayerStats(ctx context.Context, authorization, userID string, window models.TimeWindow) (*models.PlayerStats, error) {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization)

	body, err := a.do(req, http.MethodGet, a.resolver.PlayerStats(userID, window))
	if err != nil {
		return nil, err
	}
	return models.DecodePlayerStats(body)
}

func (a *httpAPIAdapter) Leaderboard(ctx context.Context, authorization string, q models.LeaderboardQuery) (*models.Leaderboard, error) {
	q = q.WithDefaults()
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization).
		SetQueryParams(map[string]string{
			"ownertype":    ownerTypeAccount,
			"itemsPerPage": strconv.Itoa(q.Limit),
		})

	body, err := a.do(req, http.MethodPost, a.resolver.Leaderboard(q))
	if err != nil {
		return nil, err
	}

	var board models.Leaderboard
	if err = models.Decode(body, &board); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return &board, nil
}

func (a *httpAPIAdapter) Store(ctx context.Context, authorization, locale string) (*models.Store, error) {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization).
		SetHeader(languageHeader, locale)

	body, err := a.do(req, http.MethodGet, a.resolver.Store())
	if err != nil {
		return nil, err
	}

	var store models.Store
	if err = models.Decode(body, &store); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return &store, nil
}

func (a *httpAPIAdapter) Lookup(ctx context.Context, authorization, username string) (*models.Lookup, error) {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization).
		SetQueryParam("q", username)

	body, err := a.do(req, http.MethodGet, a.resolver.Lookup())
	if err != nil {
		return nil, err
	}

	var lookup models.Lookup
	if err = models.Decode(body, &lookup); err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return &lookup, nil
}

// do sends req and returns the body of a 2xx response.
func (a *httpAPIAdapter) do(req *resty.Request, method, url string) ([]byte, error) {
	resp, err := req.Execute(method, url)
	if err != nil {
		a.logger.Err(err).Str("url", url).Msg("request failed")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		a.logger.Warn().Err(err).Str("url", url).Msg("request rejected")
		return nil, err
	}
	return resp.Body(), nil
}
