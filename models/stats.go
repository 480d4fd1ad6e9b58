package models

import "sort"

// SeasonStats represents a user's aggregate figures for a season, always
// recomputed from pick records rather than stored.
type SeasonStats struct {
	UserID        int     `json:"user_id"`
	Season        int     `json:"season"`
	TotalPoints   int     `json:"total_points"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Pushes        int     `json:"pushes"`
	WinPercentage float64 `json:"win_percentage"`
}

// Record returns the stats as a win-loss-push record
func (s *SeasonStats) Record() UserRecord {
	return UserRecord{Wins: s.Wins, Losses: s.Losses, Pushes: s.Pushes}
}

// LeaderboardEntry is one row of the season leaderboard
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        int     `json:"user_id"`
	UserName      string  `json:"user_name"`
	TotalPoints   int     `json:"total_points"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Pushes        int     `json:"pushes"`
	WinPercentage float64 `json:"win_percentage"`
}

// SortLeaderboard orders entries by win percentage descending, breaking ties
// on raw points, and assigns ranks. Callers relying on leaderboard parity
// with historical rankings must not reorder.
func SortLeaderboard(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].WinPercentage != entries[j].WinPercentage {
			return entries[i].WinPercentage > entries[j].WinPercentage
		}
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}
