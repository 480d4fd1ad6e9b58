package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"squad-pickem-go/logging"
	"squad-pickem-go/services"
)

// LeaderboardHandler serves the read-side aggregation endpoints
type LeaderboardHandler struct {
	stats         *services.StatsService
	currentSeason int
	logger        *logging.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(stats *services.StatsService, currentSeason int) *LeaderboardHandler {
	return &LeaderboardHandler{
		stats:         stats,
		currentSeason: currentSeason,
		logger:        logging.WithPrefix("LeaderboardHandler"),
	}
}

// GetLeaderboard handles GET /api/leaderboard?season=
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	season := h.seasonParam(r)

	entries, err := h.stats.GetLeaderboard(r.Context(), season)
	if err != nil {
		h.logger.Errorf("Failed to build leaderboard for season %d: %v", season, err)
		writeError(w, http.StatusInternalServerError, "failed to build leaderboard")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"season":  season,
		"entries": entries,
	})
}

// GetUserStats handles GET /api/users/{userID}/stats?season=
func (h *LeaderboardHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["userID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	stats, err := h.stats.GetUserSeasonStats(r.Context(), userID, h.seasonParam(r))
	if err != nil {
		h.logger.Errorf("Failed to get stats for user %d: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GetUserWeekPoints handles GET /api/users/{userID}/weeks/{week}/points?season=
func (h *LeaderboardHandler) GetUserWeekPoints(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week")
		return
	}

	season := h.seasonParam(r)
	points, err := h.stats.GetUserWeekPoints(r.Context(), userID, season, week)
	if err != nil {
		h.logger.Errorf("Failed to get week points for user %d: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "failed to get points")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"season":  season,
		"week":    week,
		"points":  points,
	})
}

func (h *LeaderboardHandler) seasonParam(r *http.Request) int {
	if value := r.URL.Query().Get("season"); value != "" {
		if season, err := strconv.Atoi(value); err == nil {
			return season
		}
	}
	return h.currentSeason
}
