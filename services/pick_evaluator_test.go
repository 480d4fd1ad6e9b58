package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squad-pickem-go/models"
)

func TestEvaluatePickScenarios(t *testing.T) {
	evaluator := NewPickEvaluator(10, false)

	tests := []struct {
		name       string
		homeScore  int
		awayScore  int
		spread     float64
		choice     models.PickSide
		wantWon    bool
		wantPush   bool
		wantPoints int
	}{
		{
			name:      "home favored loses outright, home pick loses",
			homeScore: 27, awayScore: 29, spread: -6.5, choice: models.PickSideHome,
			wantWon: false, wantPoints: 0,
		},
		{
			name:      "home wins by 14 against -7.5, home pick wins",
			homeScore: 28, awayScore: 14, spread: -7.5, choice: models.PickSideHome,
			wantWon: true, wantPoints: 10,
		},
		{
			name:      "home wins by 4 against -7.5, away pick covers",
			homeScore: 21, awayScore: 17, spread: -7.5, choice: models.PickSideAway,
			wantWon: true, wantPoints: 10,
		},
		{
			name:      "away wins outright against -3.5, away pick wins",
			homeScore: 14, awayScore: 21, spread: -3.5, choice: models.PickSideAway,
			wantWon: true, wantPoints: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := evaluator.EvaluatePick(tt.homeScore, tt.awayScore, spread(tt.spread), tt.choice)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWon, outcome.UserWon)
			assert.Equal(t, tt.wantPush, outcome.IsPush)
			assert.Equal(t, tt.wantPoints, outcome.Points)
			assert.False(t, outcome.ViaFallback)
			assert.NotEmpty(t, outcome.Explanation)
		})
	}
}

func TestEvaluatePickPushAwardsNothing(t *testing.T) {
	evaluator := NewPickEvaluator(10, false)

	for _, choice := range []models.PickSide{models.PickSideHome, models.PickSideAway} {
		outcome, err := evaluator.EvaluatePick(24, 21, spread(-3), choice)
		require.NoError(t, err)

		assert.True(t, outcome.IsPush, "choice %s", choice)
		assert.False(t, outcome.UserWon, "push is never a win")
		assert.Zero(t, outcome.Points, "pushes are not rewarded")
		assert.Equal(t, models.PickStatusPushed, outcome.Status())
	}
}

func TestEvaluatePickSignSymmetry(t *testing.T) {
	evaluator := NewPickEvaluator(10, false)
	spreads := []float64{-13.5, -7, -2.5, 0, 1.5, 6, 10.5}

	for home := 3; home <= 42; home += 3 {
		for away := 0; away <= 42; away += 6 {
			for _, s := range spreads {
				homeOutcome, err := evaluator.EvaluatePick(home, away, spread(s), models.PickSideHome)
				require.NoError(t, err)
				awayOutcome, err := evaluator.EvaluatePick(home, away, spread(s), models.PickSideAway)
				require.NoError(t, err)

				if homeOutcome.IsPush {
					assert.True(t, awayOutcome.IsPush)
					continue
				}
				// Exactly one side wins a non-push
				assert.NotEqual(t, homeOutcome.UserWon, awayOutcome.UserWon,
					"%d-%d spread %v", home, away, s)
			}
		}
	}
}

func TestEvaluatePickIdempotent(t *testing.T) {
	evaluator := NewPickEvaluator(10, false)

	first, err := evaluator.EvaluatePick(28, 14, spread(-7.5), models.PickSideHome)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := evaluator.EvaluatePick(28, 14, spread(-7.5), models.PickSideHome)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluatePickInvalidChoice(t *testing.T) {
	evaluator := NewPickEvaluator(10, false)

	_, err := evaluator.EvaluatePick(21, 17, spread(-3.5), models.PickSide("over"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestEvaluatePickConfigurableWinPoints(t *testing.T) {
	evaluator := NewPickEvaluator(25, false)

	outcome, err := evaluator.EvaluatePick(28, 14, spread(-7.5), models.PickSideHome)
	require.NoError(t, err)
	assert.Equal(t, 25, outcome.Points)
}

func TestEvaluatePickFallbackDisabled(t *testing.T) {
	evaluator := NewPickEvaluator(10, false)

	_, err := evaluator.EvaluatePick(21, 17, nil, models.PickSideHome)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluatePickFallbackEnabled(t *testing.T) {
	evaluator := NewPickEvaluator(10, true)

	outcome, err := evaluator.EvaluatePick(21, 17, nil, models.PickSideHome)
	require.NoError(t, err)

	assert.True(t, outcome.ViaFallback, "fallback outcomes must be tagged for audit")
	assert.True(t, outcome.UserWon, "home won straight-up")
	assert.Equal(t, 10, outcome.Points)

	// Straight-up tie pushes on the fallback path
	tie, err := evaluator.EvaluatePick(20, 20, nil, models.PickSideAway)
	require.NoError(t, err)
	assert.True(t, tie.ViaFallback)
	assert.True(t, tie.IsPush)
	assert.Zero(t, tie.Points)
}
