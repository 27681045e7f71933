package models

// TimeWindow selects the period statistics are aggregated over.
type TimeWindow string

const (
	TimeWindowAllTime TimeWindow = "alltime"
	TimeWindowWeekly  TimeWindow = "weekly"
)

// Platform selects the platform a leaderboard is computed for.
type Platform string

const (
	PlatformPC          Platform = "pc"
	PlatformPlayStation Platform = "ps4"
	PlatformXbox        Platform = "xb1"
)

// GroupType selects the playlist group (solo, duo, squad) of a leaderboard.
type GroupType string

const (
	GroupTypeSolo  GroupType = "p2"
	GroupTypeDuo   GroupType = "p10"
	GroupTypeSquad GroupType = "p9"
)

// LeaderboardType selects the statistic a leaderboard is ranked by.
type LeaderboardType string

const (
	LeaderboardTypeWins          LeaderboardType = "placetop1"
	LeaderboardTypeKills         LeaderboardType = "kills"
	LeaderboardTypeMatchesPlayed LeaderboardType = "matchesplayed"
)

// DefaultLeaderboardLimit is the number of entries requested when a query
// does not set one.
const DefaultLeaderboardLimit = 50

// Valid reports whether w is a known window.
func (w TimeWindow) Valid() bool {
	return w == TimeWindowAllTime || w == TimeWindowWeekly
}

// LeaderboardQuery addresses one leaderboard page.
type LeaderboardQuery struct {
	Type     LeaderboardType `validate:"required,oneof=placetop1 kills matchesplayed"`
	Platform Platform        `validate:"required,oneof=pc ps4 xb1"`
	Group    GroupType       `validate:"required,oneof=p2 p10 p9"`
	Window   TimeWindow      `validate:"omitempty,oneof=alltime weekly"`
	Limit    int             `validate:"gte=0"`
}

// Validate checks that q names a known statistic, platform and group.
func (q LeaderboardQuery) Validate() error {
	return validate.Struct(q)
}

// WithDefaults returns q with an all-time window and the default limit filled
// in where they are unset.
func (q LeaderboardQuery) WithDefaults() LeaderboardQuery {
	if q.Window == "" {
		q.Window = TimeWindowAllTime
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLeaderboardLimit
	}
	return q
}
