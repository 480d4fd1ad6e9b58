package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"squad-pickem-go/models"
)

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListUsers(_ context.Context) ([]*models.User, error) {
	return r.users, nil
}

func scoredPick(userID, season, week, points int, status models.PickStatus) *models.Pick {
	return &models.Pick{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		GameID: week*100 + userID,
		Season: season,
		Week:   week,
		Status: status,
		Points: points,
	}
}

func addPicks(repo *fakePickRepo, picks ...*models.Pick) {
	for _, p := range picks {
		repo.picks[p.ID] = p
	}
}

func TestGetUserSeasonStats(t *testing.T) {
	pickRepo := &fakePickRepo{picks: make(map[primitive.ObjectID]*models.Pick)}
	stats := NewStatsService(pickRepo, &fakeUserRepo{})

	// 3 wins, 1 loss, 2 pushes: (3 + 1) / 6 = 66.67%
	addPicks(pickRepo,
		scoredPick(1, 2026, 1, 10, models.PickStatusWon),
		scoredPick(1, 2026, 2, 10, models.PickStatusWon),
		scoredPick(1, 2026, 3, 10, models.PickStatusWon),
		scoredPick(1, 2026, 4, 0, models.PickStatusLost),
		scoredPick(1, 2026, 5, 0, models.PickStatusPushed),
		scoredPick(1, 2026, 6, 0, models.PickStatusPushed),
		// Pending picks do not count
		scoredPick(1, 2026, 7, 0, models.PickStatusPending),
		// Other seasons and users do not count
		scoredPick(1, 2025, 1, 10, models.PickStatusWon),
		scoredPick(2, 2026, 1, 10, models.PickStatusWon),
	)

	got, err := stats.GetUserSeasonStats(context.Background(), 1, 2026)
	require.NoError(t, err)

	assert.Equal(t, 30, got.TotalPoints)
	assert.Equal(t, 3, got.Wins)
	assert.Equal(t, 1, got.Losses)
	assert.Equal(t, 2, got.Pushes)
	assert.InDelta(t, 66.67, got.WinPercentage, 1e-9)
}

func TestGetUserSeasonStatsEmpty(t *testing.T) {
	pickRepo := &fakePickRepo{picks: make(map[primitive.ObjectID]*models.Pick)}
	stats := NewStatsService(pickRepo, &fakeUserRepo{})

	got, err := stats.GetUserSeasonStats(context.Background(), 1, 2026)
	require.NoError(t, err)

	assert.Zero(t, got.WinPercentage, "no scored picks means zero, not a division error")
	assert.Zero(t, got.TotalPoints)
}

func TestWinPercentageBounds(t *testing.T) {
	pickRepo := &fakePickRepo{picks: make(map[primitive.ObjectID]*models.Pick)}
	stats := NewStatsService(pickRepo, &fakeUserRepo{})

	statuses := []models.PickStatus{models.PickStatusWon, models.PickStatusLost, models.PickStatusPushed}
	week := 1
	for _, first := range statuses {
		for _, second := range statuses {
			addPicks(pickRepo,
				scoredPick(9, 2026, week, 0, first),
				scoredPick(9, 2026, week+50, 0, second),
			)
			week++

			got, err := stats.GetUserSeasonStats(context.Background(), 9, 2026)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.WinPercentage, 0.0)
			assert.LessOrEqual(t, got.WinPercentage, 100.0)
		}
	}
}

func TestGetUserWeekPoints(t *testing.T) {
	pickRepo := &fakePickRepo{picks: make(map[primitive.ObjectID]*models.Pick)}
	stats := NewStatsService(pickRepo, &fakeUserRepo{})

	addPicks(pickRepo,
		scoredPick(1, 2026, 3, 10, models.PickStatusWon),
		scoredPick(1, 2026, 3, 10, models.PickStatusWon),
		scoredPick(1, 2026, 3, 0, models.PickStatusLost),
		scoredPick(1, 2026, 4, 10, models.PickStatusWon),
	)

	points, err := stats.GetUserWeekPoints(context.Background(), 1, 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, points)
}

func TestGetLeaderboardOrdering(t *testing.T) {
	pickRepo := &fakePickRepo{picks: make(map[primitive.ObjectID]*models.Pick)}
	userRepo := &fakeUserRepo{users: []*models.User{
		{ID: 1, Name: "Ann"},
		{ID: 2, Name: "Ben"},
		{ID: 3, Name: "Cal"},
	}}
	stats := NewStatsService(pickRepo, userRepo)

	// Ann: 1-1, 10 points (50%). Ben: 1-1, 10 points plus a winning week
	// later (50% but 20 points). Cal: 2-0 (100%).
	addPicks(pickRepo,
		scoredPick(1, 2026, 1, 10, models.PickStatusWon),
		scoredPick(1, 2026, 2, 0, models.PickStatusLost),

		scoredPick(2, 2026, 1, 10, models.PickStatusWon),
		scoredPick(2, 2026, 2, 0, models.PickStatusLost),
		scoredPick(2, 2026, 3, 10, models.PickStatusWon),
		scoredPick(2, 2026, 4, 0, models.PickStatusLost),

		scoredPick(3, 2026, 1, 10, models.PickStatusWon),
		scoredPick(3, 2026, 2, 10, models.PickStatusWon),
	)

	entries, err := stats.GetLeaderboard(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Cal", entries[0].UserName, "highest win percentage first")
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Ben", entries[1].UserName, "points break the percentage tie")
	assert.Equal(t, "Ann", entries[2].UserName)
	assert.Equal(t, 3, entries[2].Rank)
}
