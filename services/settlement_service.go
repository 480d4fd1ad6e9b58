package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"squad-pickem-go/logging"
	"squad-pickem-go/models"
)

// GameRepository defines the game reads the settlement pipeline needs
type GameRepository interface {
	FindByID(ctx context.Context, gameID int) (*models.Game, error)
	FindByWeek(ctx context.Context, season, week int) ([]*models.Game, error)
	FindBySeason(ctx context.Context, season int) ([]*models.Game, error)
}

// PickRepository defines the pick reads and the single write the settlement
// pipeline is allowed to perform
type PickRepository interface {
	Insert(ctx context.Context, pick *models.Pick) error
	FindByGame(ctx context.Context, gameID int) ([]*models.Pick, error)
	FindByWeek(ctx context.Context, season, week int) ([]*models.Pick, error)
	FindByUserAndSeason(ctx context.Context, userID, season int) ([]*models.Pick, error)
	UpdateOutcome(ctx context.Context, pickID primitive.ObjectID, status models.PickStatus, points int, result string, payout *float64) error
}

// SettlementService is the only component permitted to mutate pick
// status/points/payout. Scoring is a pure function of the final score and
// the frozen spread, so re-running a settlement always converges to the
// same stored result; concurrent triggers need no lock.
type SettlementService struct {
	gameRepo  GameRepository
	pickRepo  PickRepository
	evaluator *PickEvaluator
	logger    *logging.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(gameRepo GameRepository, pickRepo PickRepository, evaluator *PickEvaluator) *SettlementService {
	return &SettlementService{
		gameRepo:  gameRepo,
		pickRepo:  pickRepo,
		evaluator: evaluator,
		logger:    logging.WithPrefix("Settlement"),
	}
}

// ScoreGame settles every pick referencing the game. Scoring an incomplete
// game is a soft no-op: each affected pick yields a zero-point pending
// record and nothing is persisted.
func (s *SettlementService) ScoreGame(ctx context.Context, gameID int) ([]models.PickOutcomeRecord, error) {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", gameID, err)
	}
	if game == nil {
		return nil, fmt.Errorf("game %d not found", gameID)
	}

	picks, err := s.pickRepo.FindByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get picks for game %d: %w", gameID, err)
	}

	batchID := uuid.New().String()
	return s.settlePicks(ctx, batchID, game, picks), nil
}

// ScoreWeek settles every pick of the week. Picks on games that are not yet
// completed come back as pending records.
func (s *SettlementService) ScoreWeek(ctx context.Context, season, week int) ([]models.PickOutcomeRecord, error) {
	games, err := s.gameRepo.FindByWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to get games for season %d week %d: %w", season, week, err)
	}

	picks, err := s.pickRepo.FindByWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to get picks for season %d week %d: %w", season, week, err)
	}

	gameMap := make(map[int]*models.Game, len(games))
	for _, game := range games {
		gameMap[game.ID] = game
	}

	picksByGame := make(map[int][]*models.Pick)
	for _, pick := range picks {
		picksByGame[pick.GameID] = append(picksByGame[pick.GameID], pick)
	}

	batchID := uuid.New().String()
	s.logger.Infof("Batch %s: scoring week %d of season %d (%d games, %d picks)",
		batchID, week, season, len(games), len(picks))

	var records []models.PickOutcomeRecord
	for gameID, gamePicks := range picksByGame {
		game, exists := gameMap[gameID]
		if !exists {
			s.logger.Warnf("Batch %s: %d picks reference unknown game %d", batchID, len(gamePicks), gameID)
			continue
		}
		records = append(records, s.settlePicks(ctx, batchID, game, gamePicks)...)
	}

	return records, nil
}

// SettleCompletedGames settles every completed game of the season that
// still holds pending picks. This is the scheduled sweep's entry point.
func (s *SettlementService) SettleCompletedGames(ctx context.Context, season int) error {
	games, err := s.gameRepo.FindBySeason(ctx, season)
	if err != nil {
		return fmt.Errorf("failed to get games for season %d: %w", season, err)
	}

	processed := 0
	errorCount := 0

	for _, game := range games {
		if !game.IsCompleted() {
			continue
		}

		picks, err := s.pickRepo.FindByGame(ctx, game.ID)
		if err != nil {
			s.logger.Errorf("Failed to get picks for game %d: %v", game.ID, err)
			errorCount++
			continue
		}

		pending := false
		for _, pick := range picks {
			if !pick.IsScored() {
				pending = true
				break
			}
		}
		if !pending {
			continue
		}

		if _, err := s.ScoreGame(ctx, game.ID); err != nil {
			s.logger.Errorf("Failed to score game %d: %v", game.ID, err)
			errorCount++
			continue
		}
		processed++
	}

	s.logger.Infof("Sweep settled %d games for season %d (%d errors)", processed, season, errorCount)
	return nil
}

// settlePicks runs the resolver/evaluator/payout pipeline over one game's
// picks. A failure on one pick is recorded and logged, never batch-fatal.
func (s *SettlementService) settlePicks(ctx context.Context, batchID string, game *models.Game, picks []*models.Pick) []models.PickOutcomeRecord {
	records := make([]models.PickOutcomeRecord, 0, len(picks))
	now := time.Now()

	if !game.IsCompleted() {
		// Pending is an expected state, not a failure.
		s.logger.Debugf("Batch %s: game %d (%s) not completed, %d picks stay pending",
			batchID, game.ID, game.Description(), len(picks))
		for _, pick := range picks {
			records = append(records, models.PickOutcomeRecord{
				PickID:   pick.ID,
				UserID:   pick.UserID,
				GameID:   game.ID,
				Status:   models.PickStatusPending,
				ScoredAt: now,
			})
		}
		return records
	}

	s.logger.Infof("Batch %s: settling %d picks for game %d: %s (final %d-%d)",
		batchID, len(picks), game.ID, game.Description(), game.AwayScore, game.HomeScore)

	for _, pick := range picks {
		record := models.PickOutcomeRecord{
			PickID:   pick.ID,
			UserID:   pick.UserID,
			GameID:   game.ID,
			ScoredAt: now,
		}

		outcome, err := s.evaluator.EvaluatePick(game.HomeScore, game.AwayScore, pick.SpreadAtPick, pick.Side)
		if err != nil {
			s.logger.Errorf("Batch %s: pick %s (user %d) not scored: %v", batchID, pick.ID.Hex(), pick.UserID, err)
			record.Status = models.PickStatusPending
			record.Error = err.Error()
			records = append(records, record)
			continue
		}

		record.Status = outcome.Status()
		record.Points = outcome.Points
		record.ViaFallback = outcome.ViaFallback

		if outcome.UserWon && pick.HasOdds() {
			payout := CalculatePayout(float64(outcome.Points), pick.OddsAtPick)
			record.Payout = &payout
		}

		if err := s.pickRepo.UpdateOutcome(ctx, pick.ID, record.Status, record.Points, outcome.Annotation(), record.Payout); err != nil {
			s.logger.Errorf("Batch %s: failed to persist outcome for pick %s: %v", batchID, pick.ID.Hex(), err)
			record.Error = err.Error()
			records = append(records, record)
			continue
		}

		s.logger.Debugf("Batch %s: pick %s user %d -> %s (%s)",
			batchID, pick.ID.Hex(), pick.UserID, record.Status, outcome.Explanation)
		records = append(records, record)
	}

	return records
}
