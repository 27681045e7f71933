// Package urls maps logical operations of the game-service API to absolute
// endpoint URLs. It performs no I/O and holds no state beyond the host table.
package urls

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-fortnite-client/models"
)

// Hosts holds the base URL (scheme and host, no trailing slash) of every
// upstream service.
type Hosts struct {
	Account     string
	Fortnite    string
	Persona     string
	Lightswitch string
	Content     string
}

// DefaultHosts returns the production hosts.
func DefaultHosts() Hosts {
	return Hosts{
		Account:     "https://account-public-service-prod03.ol.epicgames.com",
		Fortnite:    "https://fortnite-public-service-prod11.ol.epicgames.com",
		Persona:     "https://persona-public-service-prod06.ol.epicgames.com",
		Lightswitch: "https://lightswitch-public-service-prod06.ol.epicgames.com",
		Content:     "https://fortnitecontent-website-prod07.ol.epicgames.com",
	}
}

// SingleHost returns a table that sends every service to base. Useful when a
// single proxy or fake server fronts all of them.
func SingleHost(base string) Hosts {
	base = strings.TrimRight(base, "/")
	return Hosts{Account: base, Fortnite: base, Persona: base, Lightswitch: base, Content: base}
}

// Resolver builds endpoint URLs over a host table.
type Resolver struct {
	hosts Hosts
}

// NewResolver returns a Resolver for hosts. Empty entries fall back to the
// production host of that service.
func NewResolver(hosts Hosts) Resolver {
	def := DefaultHosts()
	return Resolver{hosts: Hosts{
		Account:     orDefault(hosts.Account, def.Account),
		Fortnite:    orDefault(hosts.Fortnite, def.Fortnite),
		Persona:     orDefault(hosts.Persona, def.Persona),
		Lightswitch: orDefault(hosts.Lightswitch, def.Lightswitch),
		Content:     orDefault(hosts.Content, def.Content),
	}}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return strings.TrimRight(v, "/")
}

// OAuthToken is the token endpoint shared by all grant types.
func (r Resolver) OAuthToken() string {
	return r.hosts.Account + "/account/api/oauth/token"
}

// OAuthExchange issues exchange codes for a bearer token.
func (r Resolver) OAuthExchange() string {
	return r.hosts.Account + "/account/api/oauth/exchange"
}

// KillOtherSessions invalidates the account's other sessions.
func (r Resolver) KillOtherSessions() string {
	return r.hosts.Account + "/account/api/oauth/sessions/kill"
}

func (r Resolver) ServiceStatus() string {
	return r.hosts.Lightswitch + "/lightswitch/api/service/bulk/status?serviceId=Fortnite"
}

func (r Resolver) GameNews() string {
	return r.hosts.Content + "/content/api/pages/fortnite-game"
}

func (r Resolver) Store() string {
	return r.hosts.Fortnite + "/fortnite/api/storefront/v2/catalog"
}

func (r Resolver) Lookup() string {
	return r.hosts.Persona + "/persona/api/public/account/lookup"
}

// PlayerStats is the bulk statistics endpoint of userID over window.
func (r Resolver) PlayerStats(userID string, window models.TimeWindow) string {
	return fmt.Sprintf("%s/fortnite/api/stats/accountId/%s/bulk/window/%s",
		r.hosts.Fortnite, url.PathEscape(userID), url.PathEscape(string(window)))
}

// Leaderboard is the global leaderboard endpoint of the statistic selected
// by q, e.g. .../stat/br_placetop1_pc_m0_p2/window/weekly.
func (r Resolver) Leaderboard(q models.LeaderboardQuery) string {
	stat := fmt.Sprintf("br_%s_%s_m0_%s", q.Type, q.Platform, q.Group)
	return fmt.Sprintf("%s/fortnite/api/leaderboards/type/global/stat/%s/window/%s",
		r.hosts.Fortnite, url.PathEscape(stat), url.PathEscape(string(q.Window)))
}
