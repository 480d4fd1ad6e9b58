package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a missing score or spread input. Picks hitting
// this are skipped in a batch, never retried.
var ErrInvalidInput = errors.New("invalid input: missing score or spread")

// ErrInvalidChoice indicates a pick's stored side selection is neither home
// nor away, which means upstream data corruption.
var ErrInvalidChoice = errors.New("invalid choice: side must be home or away")

// SpreadResolution describes which side covered a spread for a final score
type SpreadResolution struct {
	HomeCovers     bool
	AwayCovers     bool
	IsPush         bool
	ActualMargin   int
	AdjustedMargin float64
}

// ResolveSpread determines which side covered the spread. The spread is
// home-relative: negative means the home side is favored and must win by
// more than |spread| to cover; positive means the home side may lose by up
// to the spread and still cover. An adjusted margin of exactly zero is a
// push and neither side covers. Spreads conventionally carry a half point
// to avoid that, but not every caller enforces the convention upstream.
func ResolveSpread(homeScore, awayScore int, spreadAtPick *float64) (SpreadResolution, error) {
	if spreadAtPick == nil {
		return SpreadResolution{}, fmt.Errorf("resolve spread: %w", ErrInvalidInput)
	}

	actualMargin := homeScore - awayScore
	adjustedMargin := float64(homeScore) + *spreadAtPick - float64(awayScore)

	res := SpreadResolution{
		ActualMargin:   actualMargin,
		AdjustedMargin: adjustedMargin,
	}

	switch {
	case adjustedMargin > 0:
		res.HomeCovers = true
	case adjustedMargin < 0:
		res.AwayCovers = true
	default:
		res.IsPush = true
	}

	return res, nil
}
