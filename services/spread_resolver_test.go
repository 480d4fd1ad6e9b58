package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spread(v float64) *float64 {
	return &v
}

func TestResolveSpread(t *testing.T) {
	tests := []struct {
		name           string
		homeScore      int
		awayScore      int
		spread         float64
		wantHomeCovers bool
		wantAwayCovers bool
		wantPush       bool
		wantAdjusted   float64
	}{
		{
			name:      "favored home fails to cover close loss",
			homeScore: 27, awayScore: 29, spread: -6.5,
			wantAwayCovers: true, wantAdjusted: -8.5,
		},
		{
			name:      "favored home covers big win",
			homeScore: 28, awayScore: 14, spread: -7.5,
			wantHomeCovers: true, wantAdjusted: 6.5,
		},
		{
			name:      "favored home wins but does not cover",
			homeScore: 21, awayScore: 17, spread: -7.5,
			wantAwayCovers: true, wantAdjusted: -3.5,
		},
		{
			name:      "underdog home loses within the number",
			homeScore: 20, awayScore: 23, spread: 4.5,
			wantHomeCovers: true, wantAdjusted: 1.5,
		},
		{
			name:      "whole number spread lands exactly",
			homeScore: 21, awayScore: 24, spread: 3,
			wantPush: true, wantAdjusted: 0,
		},
		{
			name:      "pick em tie game",
			homeScore: 17, awayScore: 17, spread: 0,
			wantPush: true, wantAdjusted: 0,
		},
		{
			name:      "pick em home wins",
			homeScore: 20, awayScore: 17, spread: 0,
			wantHomeCovers: true, wantAdjusted: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolveSpread(tt.homeScore, tt.awayScore, spread(tt.spread))
			require.NoError(t, err)

			assert.Equal(t, tt.wantHomeCovers, res.HomeCovers, "home covers")
			assert.Equal(t, tt.wantAwayCovers, res.AwayCovers, "away covers")
			assert.Equal(t, tt.wantPush, res.IsPush, "push")
			assert.Equal(t, tt.homeScore-tt.awayScore, res.ActualMargin)
			assert.InDelta(t, tt.wantAdjusted, res.AdjustedMargin, 1e-9)
		})
	}
}

func TestResolveSpreadMissingSpread(t *testing.T) {
	_, err := ResolveSpread(21, 17, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Exactly one of home/away covers unless the adjusted margin is zero.
func TestResolveSpreadExclusiveCover(t *testing.T) {
	spreads := []float64{-10.5, -7, -3.5, -0.5, 0, 0.5, 3, 6.5, 14}

	for home := 0; home <= 45; home += 3 {
		for away := 0; away <= 45; away += 7 {
			for _, s := range spreads {
				res, err := ResolveSpread(home, away, spread(s))
				require.NoError(t, err)

				covered := 0
				if res.HomeCovers {
					covered++
				}
				if res.AwayCovers {
					covered++
				}

				if res.IsPush {
					assert.Zero(t, covered, "push must leave neither side covering (%d-%d, %v)", home, away, s)
					assert.Zero(t, res.AdjustedMargin)
				} else {
					assert.Equal(t, 1, covered, "exactly one side covers (%d-%d, %v)", home, away, s)
				}
			}
		}
	}
}
