package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"squad-pickem-go/config"
	"squad-pickem-go/database"
	"squad-pickem-go/handlers"
	"squad-pickem-go/logging"
	"squad-pickem-go/middleware"
	"squad-pickem-go/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Output:      os.Stdout,
		Prefix:      cfg.Logging.Prefix,
		EnableColor: cfg.Logging.EnableColor,
	})
	cfg.LogConfiguration()

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

	// Repositories
	gameRepo := database.NewMongoGameRepository(db)
	pickRepo := database.NewMongoPickRepository(db)
	userRepo := database.NewMongoUserRepository(db)

	// Core scoring pipeline
	evaluator := services.NewPickEvaluator(cfg.App.WinPoints, cfg.App.MoneylineFallback)
	settlement := services.NewSettlementService(gameRepo, pickRepo, evaluator)

	// Surrounding services
	gameService := services.NewGameService(gameRepo, settlement)
	pickService := services.NewPickService(gameRepo, pickRepo)
	statsService := services.NewStatsService(pickRepo, userRepo)
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret)

	// Scheduled settlement sweep
	if cfg.Sweep.Enabled {
		sweep := services.NewSweepService(settlement, cfg.App.CurrentSeason, cfg.Sweep.Schedule)
		if err := sweep.Start(); err != nil {
			logging.Fatalf("Failed to start settlement sweep: %v", err)
		}
		defer sweep.Stop()
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService)
	pickHandler := handlers.NewPickHandler(pickService)
	settlementHandler := handlers.NewSettlementHandler(settlement)
	leaderboardHandler := handlers.NewLeaderboardHandler(statsService, cfg.App.CurrentSeason)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := mux.NewRouter()
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/games/{season}/{week}", gameHandler.GetGamesByWeek).Methods("GET")
	r.HandleFunc("/api/leaderboard", leaderboardHandler.GetLeaderboard).Methods("GET")
	r.HandleFunc("/api/users/{userID}/stats", leaderboardHandler.GetUserStats).Methods("GET")
	r.HandleFunc("/api/users/{userID}/weeks/{week}/points", leaderboardHandler.GetUserWeekPoints).Methods("GET")

	r.Handle("/api/picks", authMiddleware.RequireAuth(http.HandlerFunc(pickHandler.SubmitPick))).Methods("POST")

	r.Handle("/api/admin/games/{gameID}/final",
		authMiddleware.RequireAdmin(http.HandlerFunc(gameHandler.RecordFinalScore))).Methods("POST")
	r.Handle("/api/admin/score/game/{gameID}",
		authMiddleware.RequireAdmin(http.HandlerFunc(settlementHandler.ScoreGame))).Methods("POST")
	r.Handle("/api/admin/score/week/{season}/{week}",
		authMiddleware.RequireAdmin(http.HandlerFunc(settlementHandler.ScoreWeek))).Methods("POST")

	logging.Infof("Server starting on %s", cfg.GetServerAddress())
	logging.Fatal(http.ListenAndServe(cfg.GetServerAddress(), r))
}
