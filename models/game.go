package models

import (
	"fmt"
	"math"
	"time"
)

// GameState represents the current state of a game
type GameState string

const (
	GameStateScheduled GameState = "scheduled"
	GameStateInPlay    GameState = "in_play"
	GameStateCompleted GameState = "completed"
	GameStatePostponed GameState = "postponed"
)

// Odds represents the current betting line for a game
type Odds struct {
	Spread float64 `json:"spread" bson:"spread"` // Point spread (negative = home side favored)
	Price  int     `json:"price" bson:"price"`   // American odds attached to the spread (0 = no price)
}

// Game represents a single contest between a home side and an away side
type Game struct {
	ID        int       `json:"id" bson:"id"`
	Season    int       `json:"season" bson:"season"`
	Week      int       `json:"week" bson:"week"`
	Date      time.Time `json:"date" bson:"date"`
	Away      string    `json:"away" bson:"away"`
	Home      string    `json:"home" bson:"home"`
	State     GameState `json:"state" bson:"state"`
	AwayScore int       `json:"awayScore" bson:"awayScore"`
	HomeScore int       `json:"homeScore" bson:"homeScore"`
	Odds      *Odds     `json:"odds,omitempty" bson:"odds,omitempty"` // Current line (nil if not available)
}

// IsCompleted returns true if the game is finished.
// Scores are only meaningful when this returns true.
func (g *Game) IsCompleted() bool {
	return g.State == GameStateCompleted
}

// IsInProgress returns true if the game is currently being played
func (g *Game) IsInProgress() bool {
	return g.State == GameStateInPlay
}

// HasStarted returns true if picks can no longer be placed on the game
func (g *Game) HasStarted() bool {
	return g.State != GameStateScheduled
}

// Winner returns the winning side name or empty string if tie/not completed
func (g *Game) Winner() string {
	if !g.IsCompleted() {
		return ""
	}
	if g.HomeScore > g.AwayScore {
		return g.Home
	} else if g.AwayScore > g.HomeScore {
		return g.Away
	}
	return "" // tie
}

// HasOdds returns true if a betting line is available
func (g *Game) HasOdds() bool {
	return g.Odds != nil
}

// roundToHalf rounds a float to the nearest 0.5 increment
func roundToHalf(val float64) float64 {
	return math.Round(val*2) / 2
}

// SetOdds sets the current line for the game with sanitization
func (g *Game) SetOdds(spread float64, price int) {
	g.Odds = &Odds{
		Spread: roundToHalf(spread),
		Price:  price,
	}
}

// RecordFinalScore sets the final score and marks the game completed.
// Both scores are always set together.
func (g *Game) RecordFinalScore(homeScore, awayScore int) {
	g.HomeScore = homeScore
	g.AwayScore = awayScore
	g.State = GameStateCompleted
}

// FormatSpread returns the home-relative spread formatted for display
func (g *Game) FormatSpread() string {
	if !g.HasOdds() {
		return ""
	}

	if g.Odds.Spread > 0 {
		return fmt.Sprintf("+%.1f", g.Odds.Spread)
	} else if g.Odds.Spread < 0 {
		return fmt.Sprintf("%.1f", g.Odds.Spread)
	}
	return "PK" // Pick 'em
}

// Description returns a short "AWAY @ HOME" label for logs and annotations
func (g *Game) Description() string {
	return fmt.Sprintf("%s @ %s", g.Away, g.Home)
}
