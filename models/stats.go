package models

import "fmt"

// PlayerStats is the bulk statistics of one account over one time window.
type PlayerStats struct {
	Stats []StatsItem `json:"stats" validate:"dive"`
}

// StatsItem is a single named statistic, e.g. "br_placetop1_pc_m0_p2".
type StatsItem struct {
	Name      string `json:"name" validate:"required"`
	Value     int64  `json:"value"`
	Window    string `json:"window"`
	OwnerType int    `json:"ownerType"`
}

// Stat returns the value of the statistic called name.
func (s *PlayerStats) Stat(name string) (int64, bool) {
	for _, item := range s.Stats {
		if item.Name == name {
			return item.Value, true
		}
	}
	return 0, false
}

// DecodePlayerStats decodes a bulk statistics response, which is a bare JSON
// array of [StatsItem].
func DecodePlayerStats(body []byte) (*PlayerStats, error) {
	var stats PlayerStats
	if err := JSON.Unmarshal(body, &stats.Stats); err != nil {
		return nil, fmt.Errorf("player stats: %w: %v", ErrDecode, err)
	}
	if err := validate.Struct(&stats); err != nil {
		return nil, fmt.Errorf("player stats: %w: %v", ErrDecode, err)
	}
	return &stats, nil
}
