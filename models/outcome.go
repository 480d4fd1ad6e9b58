package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PickOutcome is the evaluator's verdict for a single pick. It is recomputed
// fresh on every scoring pass and never mutated.
type PickOutcome struct {
	UserWon        bool
	IsPush         bool
	Points         int
	ActualMargin   int
	AdjustedMargin float64
	Explanation    string
	ViaFallback    bool // True when the moneyline fallback produced the result
}

// Status maps the outcome onto a pick status
func (o *PickOutcome) Status() PickStatus {
	switch {
	case o.IsPush:
		return PickStatusPushed
	case o.UserWon:
		return PickStatusWon
	default:
		return PickStatusLost
	}
}

// Annotation encodes status and points into the stored result string
func (o *PickOutcome) Annotation() string {
	return fmt.Sprintf("%s:%d", o.Status(), o.Points)
}

// PickOutcomeRecord captures what the settlement orchestrator did with one
// pick within a batch, including per-pick failures that did not abort the
// rest of the batch.
type PickOutcomeRecord struct {
	PickID      primitive.ObjectID `json:"pick_id"`
	UserID      int                `json:"user_id"`
	GameID      int                `json:"game_id"`
	Status      PickStatus         `json:"status"`
	Points      int                `json:"points"`
	Payout      *float64           `json:"payout,omitempty"`
	ViaFallback bool               `json:"via_fallback,omitempty"`
	Error       string             `json:"error,omitempty"`
	ScoredAt    time.Time          `json:"scored_at"`
}
