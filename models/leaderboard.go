package models

// Leaderboard is one ranked page of a statistic.
type Leaderboard struct {
	StatName   string             `json:"statName"`
	StatWindow string             `json:"statWindow"`
	Entries    []LeaderboardEntry `json:"entries" validate:"dive"`
}

// LeaderboardEntry is one ranked account.
type LeaderboardEntry struct {
	AccountID   string `json:"accountId" validate:"required"`
	Value       int64  `json:"value"`
	Rank        int    `json:"rank"`
	DisplayName string `json:"displayName,omitempty"`
}
