// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-fortnite-client/internal/config"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/MKhiriev/go-fortnite-client/internal/urls"
	"github.com/MKhiriev/go-fortnite-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestAdapters points both adapters at the test server.
func newTestAdapters(t *testing.T, serverURL string) (IdentityAdapter, APIAdapter) {
	t.Helper()
	log := logger.Nop()
	client := NewHTTPClient(config.Adapter{RequestTimeout: 2 * time.Second}, log)
	resolver := urls.NewResolver(urls.SingleHost(serverURL))

	return NewHTTPIdentityAdapter(client, resolver, func() time.Time { return fixedNow }, log),
		NewHTTPAPIAdapter(client, resolver, log)
}

func newTestServer(t *testing.T, route func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	route(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// ── Identity ────────────────────────────────────────────────────────────────

func TestRequestToken_PasswordGrant(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/account/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "basic L", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get(correlationIDHeader))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "password", r.PostForm.Get("grant_type"))
			assert.Equal(t, "u@example.com", r.PostForm.Get("username"))
			assert.Equal(t, "pw", r.PostForm.Get("password"))
			assert.Equal(t, "true", r.PostForm.Get("includePerms"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"a1","refresh_token":"r1","expires_in":3600,"account_id":"acc"}`))
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)
	creds := models.Credentials{Email: "u@example.com", Password: "pw", LauncherSecret: "L", ClientSecret: "C"}

	token, err := identity.RequestToken(context.Background(), models.PasswordGrant(creds))

	require.NoError(t, err)
	assert.Equal(t, models.TokenKindLauncher, token.Kind)
	assert.Equal(t, "a1", token.AccessToken)
	assert.Equal(t, "r1", token.RefreshToken)
	assert.Equal(t, int64(3600), token.ExpiresIn)
	assert.Equal(t, fixedNow, token.IssuedAt)
	assert.Equal(t, "acc", token.AccountID)
}

func TestRequestToken_ExchangeCodeGrant(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/account/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "basic C", r.Header.Get("Authorization"))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "exchange_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "abc", r.PostForm.Get("exchange_code"))
			assert.Equal(t, "eg1", r.PostForm.Get("token_type"))

			_, _ = w.Write([]byte(`{"access_token":"c1","refresh_token":"cr1","expires_in":7200}`))
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)

	token, err := identity.RequestToken(context.Background(),
		models.ExchangeCodeGrant(models.Credentials{ClientSecret: "C"}, "abc"))

	require.NoError(t, err)
	assert.Equal(t, models.TokenKindClient, token.Kind)
	assert.Equal(t, "c1", token.AccessToken)
}

func TestRequestToken_Unauthorized(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/account/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errorCode":"errors.com.epicgames.account.invalid_account_credentials","errorMessage":"Sorry the account credentials you are using are invalid"}`))
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)
	_, err := identity.RequestToken(context.Background(), models.PasswordGrant(models.Credentials{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, IsRejected(err))
	assert.Contains(t, err.Error(), "invalid_account_credentials")
}

func TestRequestToken_MalformedBody(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/account/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token":"a1"}`))
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)
	_, err := identity.RequestToken(context.Background(), models.PasswordGrant(models.Credentials{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDecode)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestRequestToken_Timeout(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/account/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})
	})

	log := logger.Nop()
	client := NewHTTPClient(config.Adapter{RequestTimeout: 20 * time.Millisecond}, log)
	identity := NewHTTPIdentityAdapter(client, urls.NewResolver(urls.SingleHost(srv.URL)), nil, log)

	_, err := identity.RequestToken(context.Background(), models.PasswordGrant(models.Credentials{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.False(t, IsRejected(err))
}

func TestOAuthExchange(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/account/api/oauth/exchange", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "bearer L1", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"code":"abc","expiresInSeconds":300,"creatingClientId":"launcher"}`))
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)
	exchange, err := identity.OAuthExchange(context.Background(),
		&models.AccessToken{Kind: models.TokenKindLauncher, AccessToken: "L1"})

	require.NoError(t, err)
	assert.Equal(t, "abc", exchange.Code)
	assert.Equal(t, int64(300), exchange.ExpiresInSeconds)
}

func TestOAuthExchange_MissingCode(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/account/api/oauth/exchange", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"expiresInSeconds":300}`))
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)
	_, err := identity.OAuthExchange(context.Background(), &models.AccessToken{AccessToken: "L1"})

	assert.ErrorIs(t, err, models.ErrDecode)
}

func TestKillOtherSessions(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, func(r chi.Router) {
		r.Delete("/account/api/oauth/sessions/kill", func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, "bearer C1", r.Header.Get("Authorization"))
			// ParseForm ignores DELETE bodies
			body, _ := io.ReadAll(r.Body)
			form, err := url.ParseQuery(string(body))
			assert.NoError(t, err)
			assert.Equal(t, killTypeOthers, form.Get("killType"))
			w.WriteHeader(http.StatusNoContent)
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)
	err := identity.KillOtherSessions(context.Background(), "bearer C1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestKillOtherSessions_Forbidden(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Delete("/account/api/oauth/sessions/kill", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	})

	identity, _ := newTestAdapters(t, srv.URL)
	err := identity.KillOtherSessions(context.Background(), "bearer C1")

	assert.ErrorIs(t, err, ErrForbidden)
}

// ── API ─────────────────────────────────────────────────────────────────────

func TestStatus(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/lightswitch/api/service/bulk/status", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Fortnite", r.URL.Query().Get("serviceId"))
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[{"serviceInstanceId":"fortnite","status":"UP","message":"ok"}]`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	status, err := api.Status(context.Background())

	require.NoError(t, err)
	assert.True(t, status.IsUp())
}

func TestStatus_EmptyArray(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/lightswitch/api/service/bulk/status", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	_, err := api.Status(context.Background())

	assert.ErrorIs(t, err, models.ErrDecode)
}

func TestStatus_ServiceUnavailable(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/lightswitch/api/service/bulk/status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	_, err := api.Status(context.Background())

	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.False(t, IsRejected(err))
}

func TestGameNews(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/content/api/pages/fortnite-game", func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(countryCookie)
			if assert.NoError(t, err) {
				assert.Equal(t, "DE", cookie.Value)
			}
			_, _ = w.Write([]byte(`{"battleroyalenews":{"news":{"messages":[{"title":"Season 10","body":"out now"}]}}}`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	news, err := api.GameNews(context.Background(), "DE")

	require.NoError(t, err)
	require.Len(t, news.BattleRoyale.Messages(), 1)
	assert.Equal(t, "Season 10", news.BattleRoyale.Messages()[0].Title)
}

func TestPlayerStats(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/fortnite/api/stats/accountId/{id}/bulk/window/{window}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "acc-1", chi.URLParam(r, "id"))
			assert.Equal(t, "weekly", chi.URLParam(r, "window"))
			assert.Equal(t, "bearer C1", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[{"name":"br_placetop1_pc_m0_p2","value":7,"window":"weekly","ownerType":1}]`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	stats, err := api.PlayerStats(context.Background(), "bearer C1", "acc-1", models.TimeWindowWeekly)

	require.NoError(t, err)
	wins, ok := stats.Stat("br_placetop1_pc_m0_p2")
	assert.True(t, ok)
	assert.Equal(t, int64(7), wins)
}

func TestLeaderboard(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Post("/fortnite/api/leaderboards/type/global/stat/{stat}/window/{window}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "br_kills_ps4_m0_p9", chi.URLParam(r, "stat"))
			assert.Equal(t, "alltime", chi.URLParam(r, "window"))
			assert.Equal(t, "1", r.URL.Query().Get("ownertype"))
			assert.Equal(t, "50", r.URL.Query().Get("itemsPerPage"))
			_, _ = w.Write([]byte(`{"statName":"br_kills_ps4_m0_p9","statWindow":"alltime","entries":[{"accountId":"a","value":99,"rank":1}]}`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	board, err := api.Leaderboard(context.Background(), "bearer C1", models.LeaderboardQuery{
		Type:     models.LeaderboardTypeKills,
		Platform: models.PlatformPlayStation,
		Group:    models.GroupTypeSquad,
	})

	require.NoError(t, err)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, int64(99), board.Entries[0].Value)
}

func TestStore(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/fortnite/api/storefront/v2/catalog", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "fr-FR", r.Header.Get(languageHeader))
			_, _ = w.Write([]byte(`{"refreshIntervalHrs":24,"storefronts":[{"name":"BRDailyStorefront","catalogEntries":[{"offerId":"o1","prices":[{"currencyType":"MtxCurrency","regularPrice":1200,"finalPrice":800}]}]}]}`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	store, err := api.Store(context.Background(), "bearer C1", "fr-FR")

	require.NoError(t, err)
	daily, ok := store.Storefront("BRDailyStorefront")
	require.True(t, ok)
	require.Len(t, daily.CatalogEntries, 1)
	assert.True(t, daily.CatalogEntries[0].Prices[0].OnSale())
}

func TestLookup(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/persona/api/public/account/lookup", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Ninja Player", r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(`{"id":"acc-1","displayName":"Ninja Player"}`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	lookup, err := api.Lookup(context.Background(), "bearer C1", "Ninja Player")

	require.NoError(t, err)
	assert.Equal(t, "acc-1", lookup.ID)
}

func TestLookup_NotFound(t *testing.T) {
	srv := newTestServer(t, func(r chi.Router) {
		r.Get("/persona/api/public/account/lookup", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errorMessage":"Account not found"}`))
		})
	})

	_, api := newTestAdapters(t, srv.URL)
	_, err := api.Lookup(context.Background(), "bearer C1", "nobody")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Account not found")
}
