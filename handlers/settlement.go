package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"squad-pickem-go/logging"
	"squad-pickem-go/services"
)

// SettlementHandler exposes the admin settlement triggers. These are one of
// several equivalent callers of the settlement service; the scheduled sweep
// and operator scripts invoke the same contracts.
type SettlementHandler struct {
	settlement *services.SettlementService
	logger     *logging.Logger
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlement *services.SettlementService) *SettlementHandler {
	return &SettlementHandler{
		settlement: settlement,
		logger:     logging.WithPrefix("SettlementHandler"),
	}
}

// ScoreGame handles POST /api/admin/score/game/{gameID}
func (h *SettlementHandler) ScoreGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(mux.Vars(r)["gameID"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	records, err := h.settlement.ScoreGame(r.Context(), gameID)
	if err != nil {
		h.logger.Errorf("Failed to score game %d: %v", gameID, err)
		writeError(w, http.StatusInternalServerError, "failed to score")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"game_id":  gameID,
		"scored":   len(records),
		"outcomes": records,
	})
}

// ScoreWeek handles POST /api/admin/score/week/{season}/{week}
func (h *SettlementHandler) ScoreWeek(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.settlement.ScoreWeek(r.Context(), season, week)
	if err != nil {
		h.logger.Errorf("Failed to score season %d week %d: %v", season, week, err)
		writeError(w, http.StatusInternalServerError, "failed to score")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"season":   season,
		"week":     week,
		"scored":   len(records),
		"outcomes": records,
	})
}
