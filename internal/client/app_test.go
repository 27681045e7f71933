// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-fortnite-client/fortnite"
	"github.com/MKhiriev/go-fortnite-client/internal/config"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var validCreds = config.Credentials{
	Email:          "player@example.com",
	Password:       "hunter2",
	LauncherSecret: "L",
	ClientSecret:   "C",
}

// newTestApp поднимает фейковый сервер и возвращает App, направленный на него.
func newTestApp(t *testing.T, creds config.Credentials) (*App, *bytes.Buffer, *atomic.Int64) {
	t.Helper()
	var logins atomic.Int64

	r := chi.NewRouter()
	r.Post("/account/api/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("grant_type") == "password" {
			logins.Add(1)
		}
		_, _ = w.Write([]byte(`{"access_token":"tok","refresh_token":"ref","expires_in":3600}`))
	})
	r.Get("/account/api/oauth/exchange", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"abc"}`))
	})
	r.Delete("/account/api/oauth/sessions/kill", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/lightswitch/api/service/bulk/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"status":"UP","message":"Fortnite is online"}]`))
	})
	r.Post("/fortnite/api/leaderboards/type/global/stat/{stat}/window/{window}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"statName":"` + chi.URLParam(r, "stat") + `","entries":[{"accountId":"a","value":1,"rank":1}],"statWindow":"` + r.URL.Query().Get("itemsPerPage") + `"}`))
	})
	r.Get("/persona/api/public/account/lookup", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"acc-9","displayName":"` + r.URL.Query().Get("q") + `"}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	api := fortnite.New(fortnite.Credentials(creds), fortnite.Options{Hosts: fortnite.SingleHost(srv.URL)})
	out := &bytes.Buffer{}
	return NewApp(api, creds, out, logger.Nop()), out, &logins
}

func TestApp_Run_Status_NoLogin(t *testing.T) {
	app, out, logins := newTestApp(t, config.Credentials{})

	require.NoError(t, app.Run(context.Background(), []string{"status"}))

	assert.Equal(t, "UP", gjson.Get(out.String(), "status").String())
	assert.Zero(t, logins.Load(), "status must not open a session")
}

func TestApp_Run_Lookup(t *testing.T) {
	app, out, logins := newTestApp(t, validCreds)

	require.NoError(t, app.Run(context.Background(), []string{"lookup", "Player", "One"}))

	assert.Equal(t, "acc-9", gjson.Get(out.String(), "id").String())
	assert.Equal(t, "Player One", gjson.Get(out.String(), "displayName").String())
	assert.Equal(t, int64(1), logins.Load())
}

func TestApp_Run_Leaderboard(t *testing.T) {
	app, out, _ := newTestApp(t, validCreds)

	require.NoError(t, app.Run(context.Background(), []string{"leaderboard", "kills", "pc", "p9", "weekly", "10"}))

	assert.Equal(t, "br_kills_pc_m0_p9", gjson.Get(out.String(), "statName").String())
	assert.Equal(t, "10", gjson.Get(out.String(), "statWindow").String())
}

func TestApp_Run_Leaderboard_BadLimit(t *testing.T) {
	app, _, _ := newTestApp(t, validCreds)

	err := app.Run(context.Background(), []string{"leaderboard", "kills", "pc", "p9", "weekly", "ten"})

	assert.ErrorIs(t, err, fortnite.ErrInvalidArgument)
}

func TestApp_Run_Errors(t *testing.T) {
	tests := []struct {
		name    string
		creds   config.Credentials
		args    []string
		wantErr error
	}{
		{"no command", validCreds, nil, ErrNoCommand},
		{"unknown command", validCreds, []string{"dance"}, ErrUnknownCommand},
		{"missing argument", validCreds, []string{"stats"}, ErrMissingArgument},
		{"missing credentials", config.Credentials{}, []string{"lookup", "x"}, config.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out, logins := newTestApp(t, tt.creds)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
			assert.Zero(t, logins.Load())
		})
	}
}

func TestUsage_ListsEveryCommand(t *testing.T) {
	u := usage()
	for name := range commands {
		assert.Contains(t, u, name)
	}
}
