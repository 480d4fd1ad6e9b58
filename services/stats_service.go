package services

import (
	"context"
	"fmt"

	"squad-pickem-go/logging"
	"squad-pickem-go/models"
)

// UserRepository defines the user reads the stats and auth layers need
type UserRepository interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// StatsService rolls persisted pick outcomes up into per-user summaries.
// Everything here is recomputed from pick records on demand, so a read is
// always consistent with the latest scoring pass. Reads may run concurrently
// with settlement; a read overlapping a settlement write can reflect a
// partial batch, which is an accepted staleness window.
type StatsService struct {
	pickRepo PickRepository
	userRepo UserRepository
	logger   *logging.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(pickRepo PickRepository, userRepo UserRepository) *StatsService {
	return &StatsService{
		pickRepo: pickRepo,
		userRepo: userRepo,
		logger:   logging.WithPrefix("Stats"),
	}
}

// GetUserSeasonStats computes a user's season totals from their scored picks
func (s *StatsService) GetUserSeasonStats(ctx context.Context, userID, season int) (models.SeasonStats, error) {
	picks, err := s.pickRepo.FindByUserAndSeason(ctx, userID, season)
	if err != nil {
		return models.SeasonStats{}, fmt.Errorf("failed to get picks for user %d: %w", userID, err)
	}

	stats := aggregatePicks(picks)
	stats.UserID = userID
	stats.Season = season
	return stats, nil
}

// GetUserWeekPoints returns the points a user earned in a specific week
func (s *StatsService) GetUserWeekPoints(ctx context.Context, userID, season, week int) (int, error) {
	picks, err := s.pickRepo.FindByUserAndSeason(ctx, userID, season)
	if err != nil {
		return 0, fmt.Errorf("failed to get picks for user %d: %w", userID, err)
	}

	points := 0
	for _, pick := range picks {
		if pick.Week == week {
			points += pick.Points
		}
	}
	return points, nil
}

// GetLeaderboard ranks every user by win percentage, breaking ties on raw
// points
func (s *StatsService) GetLeaderboard(ctx context.Context, season int) ([]models.LeaderboardEntry, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		stats, err := s.GetUserSeasonStats(ctx, user.ID, season)
		if err != nil {
			s.logger.Errorf("Skipping user %d on leaderboard: %v", user.ID, err)
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:        user.ID,
			UserName:      user.Name,
			TotalPoints:   stats.TotalPoints,
			Wins:          stats.Wins,
			Losses:        stats.Losses,
			Pushes:        stats.Pushes,
			WinPercentage: stats.WinPercentage,
		})
	}

	models.SortLeaderboard(entries)
	return entries, nil
}

// aggregatePicks folds scored picks into season totals. Pending picks do
// not count toward the record.
func aggregatePicks(picks []*models.Pick) models.SeasonStats {
	var stats models.SeasonStats
	for _, pick := range picks {
		switch pick.Status {
		case models.PickStatusWon:
			stats.Wins++
		case models.PickStatusLost:
			stats.Losses++
		case models.PickStatusPushed:
			stats.Pushes++
		default:
			continue
		}
		stats.TotalPoints += pick.Points
	}

	record := stats.Record()
	stats.WinPercentage = record.WinPercentage()
	return stats
}
