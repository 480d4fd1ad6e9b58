package services

import (
	"context"
	"fmt"

	"squad-pickem-go/logging"
	"squad-pickem-go/models"
)

// GameWriter extends the read-side GameRepository with the mutations the
// game service needs
type GameWriter interface {
	GameRepository
	Upsert(ctx context.Context, game *models.Game) error
}

// GameService owns game lifecycle changes. Recording a final score is the
// game-completion trigger for settlement.
type GameService struct {
	gameRepo   GameWriter
	settlement *SettlementService
	logger     *logging.Logger
}

// NewGameService creates a new game service
func NewGameService(gameRepo GameWriter, settlement *SettlementService) *GameService {
	return &GameService{
		gameRepo:   gameRepo,
		settlement: settlement,
		logger:     logging.WithPrefix("GameService"),
	}
}

// GetGamesByWeek returns all games of a week
func (s *GameService) GetGamesByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	return s.gameRepo.FindByWeek(ctx, season, week)
}

// RecordFinalScore marks the game completed with its final score and kicks
// settlement for it. Settlement failures are logged but do not undo the
// score: the sweep or a manual trigger converges the picks later.
func (s *GameService) RecordFinalScore(ctx context.Context, gameID, homeScore, awayScore int) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	game.RecordFinalScore(homeScore, awayScore)
	if err := s.gameRepo.Upsert(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save final score for game %d: %w", gameID, err)
	}

	s.logger.Infof("Recorded final score for game %d (%s): %d-%d",
		gameID, game.Description(), awayScore, homeScore)

	if _, err := s.settlement.ScoreGame(ctx, gameID); err != nil {
		s.logger.Errorf("Settlement after final score of game %d failed: %v", gameID, err)
	}

	return game, nil
}
