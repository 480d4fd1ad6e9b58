package services

import (
	"context"
	"fmt"

	"squad-pickem-go/logging"
	"squad-pickem-go/models"
)

// PickService handles pick submission. The spread is frozen onto the pick
// at submission time; the settlement pipeline never looks at the game's
// current line again.
type PickService struct {
	gameRepo GameRepository
	pickRepo PickRepository
	logger   *logging.Logger
}

// NewPickService creates a new pick service
func NewPickService(gameRepo GameRepository, pickRepo PickRepository) *PickService {
	return &PickService{
		gameRepo: gameRepo,
		pickRepo: pickRepo,
		logger:   logging.WithPrefix("PickService"),
	}
}

// SubmitPick validates and stores a pick for an unlocked game, snapshotting
// the current line into SpreadAtPick. Whether a game is still open beyond
// "has not started" is an external policy.
func (s *PickService) SubmitPick(ctx context.Context, squadID, userID, gameID int, side models.PickSide) (*models.Pick, error) {
	if !side.IsValid() {
		return nil, fmt.Errorf("submit pick: %w: %q", ErrInvalidChoice, side)
	}

	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	if err := s.validatePickAgainstGame(game); err != nil {
		return nil, err
	}

	pick := models.NewPick(squadID, userID, game, side)
	if err := s.pickRepo.Insert(ctx, pick); err != nil {
		return nil, fmt.Errorf("failed to store pick: %w", err)
	}

	s.logger.Infof("User %d picked %s for game %d (%s, spread %s)",
		userID, side, gameID, game.Description(), game.FormatSpread())
	return pick, nil
}

// validatePickAgainstGame checks that a pick is allowed for the given game
func (s *PickService) validatePickAgainstGame(game *models.Game) error {
	if game.HasStarted() {
		return fmt.Errorf("cannot place pick on game %d: game has started or completed", game.ID)
	}
	if !game.HasOdds() {
		return fmt.Errorf("cannot place pick on game %d: no spread available", game.ID)
	}
	return nil
}
