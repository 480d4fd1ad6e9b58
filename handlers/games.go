package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"squad-pickem-go/logging"
	"squad-pickem-go/services"
)

// GameHandler handles game reads and the admin final-score action
type GameHandler struct {
	gameService *services.GameService
	logger      *logging.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logging.WithPrefix("GameHandler"),
	}
}

// GetGamesByWeek handles GET /api/games/{season}/{week}
func (h *GameHandler) GetGamesByWeek(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	season, err := strconv.Atoi(vars["season"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week")
		return
	}

	games, err := h.gameService.GetGamesByWeek(r.Context(), season, week)
	if err != nil {
		h.logger.Errorf("Failed to get games for season %d week %d: %v", season, week, err)
		writeError(w, http.StatusInternalServerError, "failed to get games")
		return
	}

	writeJSON(w, http.StatusOK, games)
}

type finalScoreRequest struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// RecordFinalScore handles POST /api/admin/games/{gameID}/final
func (h *GameHandler) RecordFinalScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(mux.Vars(r)["gameID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	var req finalScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.gameService.RecordFinalScore(r.Context(), gameID, req.HomeScore, req.AwayScore)
	if err != nil {
		h.logger.Errorf("Failed to record final score for game %d: %v", gameID, err)
		writeError(w, http.StatusInternalServerError, "failed to record score")
		return
	}

	writeJSON(w, http.StatusOK, game)
}
