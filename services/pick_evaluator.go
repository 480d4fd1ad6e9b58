package services

import (
	"fmt"

	"squad-pickem-go/logging"
	"squad-pickem-go/models"
)

// DefaultWinPoints is the standard award for a winning pick. The live value
// comes from configuration; this is only the fallback default.
const DefaultWinPoints = 10

// PickEvaluator combines spread resolution with a user's side selection to
// produce a pick outcome. It is stateless apart from its configuration.
type PickEvaluator struct {
	winPoints         int
	moneylineFallback bool
	logger            *logging.Logger
}

// NewPickEvaluator creates an evaluator awarding winPoints per winning pick.
// When moneylineFallback is enabled, a failed spread evaluation degrades to
// a straight-up winner check instead of leaving the pick unscored; every
// outcome produced that way is tagged and logged for audit.
func NewPickEvaluator(winPoints int, moneylineFallback bool) *PickEvaluator {
	if winPoints <= 0 {
		winPoints = DefaultWinPoints
	}
	return &PickEvaluator{
		winPoints:         winPoints,
		moneylineFallback: moneylineFallback,
		logger:            logging.WithPrefix("PickEvaluator"),
	}
}

// WinPoints returns the configured award for a winning pick
func (e *PickEvaluator) WinPoints() int {
	return e.winPoints
}

// EvaluatePick determines whether the chosen side covered the spread and
// how many points to award. A push always yields zero points regardless of
// the chosen side; pushes are distinguished from losses in aggregate stats.
func (e *PickEvaluator) EvaluatePick(homeScore, awayScore int, spreadAtPick *float64, choice models.PickSide) (models.PickOutcome, error) {
	if !choice.IsValid() {
		return models.PickOutcome{}, fmt.Errorf("evaluate pick: %w: %q", ErrInvalidChoice, choice)
	}

	res, err := ResolveSpread(homeScore, awayScore, spreadAtPick)
	if err != nil {
		if !e.moneylineFallback {
			return models.PickOutcome{}, err
		}
		// Degraded path: score straight-up so the pick is not left
		// unscored. This silently changes the scoring rule, so the
		// outcome is tagged and logged distinctly.
		e.logger.Warnf("Spread evaluation failed (%v), falling back to moneyline for choice %s", err, choice)
		return e.evaluateMoneyline(homeScore, awayScore, choice), nil
	}

	outcome := models.PickOutcome{
		IsPush:         res.IsPush,
		ActualMargin:   res.ActualMargin,
		AdjustedMargin: res.AdjustedMargin,
	}

	if res.IsPush {
		outcome.Explanation = e.explain(homeScore, awayScore, *spreadAtPick, choice, outcome)
		return outcome, nil
	}

	outcome.UserWon = (choice == models.PickSideHome && res.HomeCovers) ||
		(choice == models.PickSideAway && res.AwayCovers)
	if outcome.UserWon {
		outcome.Points = e.winPoints
	}

	outcome.Explanation = e.explain(homeScore, awayScore, *spreadAtPick, choice, outcome)
	return outcome, nil
}

// evaluateMoneyline scores a pick on the straight-up winner. An outright
// tie is treated as a push, matching moneyline convention.
func (e *PickEvaluator) evaluateMoneyline(homeScore, awayScore int, choice models.PickSide) models.PickOutcome {
	outcome := models.PickOutcome{
		ActualMargin: homeScore - awayScore,
		ViaFallback:  true,
	}

	switch {
	case homeScore == awayScore:
		outcome.IsPush = true
		outcome.Explanation = fmt.Sprintf("Tie %d-%d scored straight-up (fallback): push", homeScore, awayScore)
	default:
		outcome.UserWon = (choice == models.PickSideHome && homeScore > awayScore) ||
			(choice == models.PickSideAway && awayScore > homeScore)
		if outcome.UserWon {
			outcome.Points = e.winPoints
		}
		outcome.Explanation = fmt.Sprintf("Final %d-%d scored straight-up (fallback): %s pick %s",
			homeScore, awayScore, choice, verdict(outcome.UserWon))
	}

	return outcome
}

// explain renders the audit string for an outcome. It never affects scoring.
func (e *PickEvaluator) explain(homeScore, awayScore int, spread float64, choice models.PickSide, o models.PickOutcome) string {
	if o.IsPush {
		return fmt.Sprintf("Final %d-%d with spread %+.1f lands exactly on the number: push, 0 points",
			homeScore, awayScore, spread)
	}

	covering := models.PickSideAway
	if o.AdjustedMargin > 0 {
		covering = models.PickSideHome
	}

	return fmt.Sprintf("Final %d-%d, spread %+.1f, adjusted margin %+.1f: %s covers; %s pick %s, %d points",
		homeScore, awayScore, spread, o.AdjustedMargin, covering, choice, verdict(o.UserWon), o.Points)
}

func verdict(won bool) string {
	if won {
		return "wins"
	}
	return "loses"
}
