// Operator script for ad hoc re-scoring. Safe to run at any time against
// live data: settlement is idempotent, so a recalculation converges picks
// to the same result the normal triggers would produce.
//
// Usage:
//
//	go run ./cmd/recalc -season 2026            # sweep all completed games
//	go run ./cmd/recalc -season 2026 -week 3    # re-score one week
package main

import (
	"context"
	"flag"

	"squad-pickem-go/config"
	"squad-pickem-go/database"
	"squad-pickem-go/logging"
	"squad-pickem-go/services"
)

func main() {
	season := flag.Int("season", 0, "season to recalculate (defaults to CURRENT_SEASON)")
	week := flag.Int("week", 0, "re-score a single week instead of sweeping the season")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}
	if *season == 0 {
		*season = cfg.App.CurrentSeason
	}

	db, err := database.NewMongoConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logging.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	gameRepo := database.NewMongoGameRepository(db)
	pickRepo := database.NewMongoPickRepository(db)

	evaluator := services.NewPickEvaluator(cfg.App.WinPoints, cfg.App.MoneylineFallback)
	settlement := services.NewSettlementService(gameRepo, pickRepo, evaluator)

	ctx := context.Background()

	if *week > 0 {
		records, err := settlement.ScoreWeek(ctx, *season, *week)
		if err != nil {
			logging.Fatalf("Failed to score season %d week %d: %v", *season, *week, err)
		}
		logging.Infof("Re-scored %d picks for season %d week %d", len(records), *season, *week)
		return
	}

	if err := settlement.SettleCompletedGames(ctx, *season); err != nil {
		logging.Fatalf("Sweep for season %d failed: %v", *season, err)
	}
	logging.Infof("Recalculation for season %d complete", *season)
}
