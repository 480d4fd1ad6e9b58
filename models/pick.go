package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PickSide represents which side of a game the user selected
type PickSide string

const (
	PickSideHome PickSide = "home"
	PickSideAway PickSide = "away"
)

// IsValid returns true if the side is one of the two allowed values
func (s PickSide) IsValid() bool {
	return s == PickSideHome || s == PickSideAway
}

// PickStatus represents the settlement state of a pick
type PickStatus string

const (
	PickStatusPending PickStatus = "pending"
	PickStatusWon     PickStatus = "won"
	PickStatusLost    PickStatus = "lost"
	PickStatusPushed  PickStatus = "pushed"
)

// Pick represents one user's side selection for one game.
// SpreadAtPick is frozen at submission time and never changes afterwards,
// regardless of line movement.
type Pick struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SquadID      int                `bson:"squad_id" json:"squad_id"`
	UserID       int                `bson:"user_id" json:"user_id"`
	GameID       int                `bson:"game_id" json:"game_id"`
	Season       int                `bson:"season" json:"season"`
	Week         int                `bson:"week" json:"week"`
	Side         PickSide           `bson:"side" json:"side"`
	SpreadAtPick *float64           `bson:"spread_at_pick" json:"spread_at_pick"`
	OddsAtPick   int                `bson:"odds_at_pick" json:"odds_at_pick"` // American odds, 0 = no odds
	Status       PickStatus         `bson:"status" json:"status"`
	Points       int                `bson:"points" json:"points"`
	Result       string             `bson:"result,omitempty" json:"result,omitempty"` // Annotation like "won:10"
	Payout       *float64           `bson:"payout,omitempty" json:"payout,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsScored returns true if the pick has a final status
func (p *Pick) IsScored() bool {
	return p.Status != PickStatusPending
}

// HasOdds returns true if odds were captured at submission time
func (p *Pick) HasOdds() bool {
	return p.OddsAtPick != 0
}

// NewPick creates a pending pick with the spread and odds frozen from the
// game's current line
func NewPick(squadID, userID int, game *Game, side PickSide) *Pick {
	now := time.Now()
	pick := &Pick{
		SquadID:   squadID,
		UserID:    userID,
		GameID:    game.ID,
		Season:    game.Season,
		Week:      game.Week,
		Side:      side,
		Status:    PickStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if game.HasOdds() {
		spread := game.Odds.Spread
		pick.SpreadAtPick = &spread
		pick.OddsAtPick = game.Odds.Price
	}
	return pick
}

// UserRecord represents a user's win-loss-push record
type UserRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
}

// String returns the record in "W-L-P" format
func (r *UserRecord) String() string {
	return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Pushes)
}

// Total returns the number of scored picks in the record
func (r *UserRecord) Total() int {
	return r.Wins + r.Losses + r.Pushes
}

// WinPercentage calculates the win percentage with pushes counting as half
// a win, rounded to two decimal places. Returns 0 for an empty record.
func (r *UserRecord) WinPercentage() float64 {
	total := r.Total()
	if total == 0 {
		return 0.0
	}
	pct := (float64(r.Wins) + float64(r.Pushes)*0.5) / float64(total) * 100
	return float64(int(pct*100+0.5)) / 100
}
