package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePayout(t *testing.T) {
	tests := []struct {
		name       string
		basePoints float64
		odds       int
		want       float64
	}{
		{"plus odds", 10, 150, 25},
		{"minus odds", 10, -150, 16.666666},
		{"even plus", 10, 100, 20},
		{"even minus", 10, -100, 20},
		{"heavy favorite", 10, -400, 12.5},
		{"long shot", 10, 500, 60},
		{"zero base points", 0, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculatePayout(tt.basePoints, tt.odds), 1e-4)
		})
	}
}

func TestCalculatePayoutZeroOdds(t *testing.T) {
	// Zero odds mean "no price"; the multiplier degrades to even. The
	// orchestrator never calls this for odds-less picks, it skips the
	// payout instead.
	assert.InDelta(t, 10.0, CalculatePayout(10, 0), 1e-9)
}
