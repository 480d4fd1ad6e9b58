package handlers

import (
	"encoding/json"
	"net/http"

	"squad-pickem-go/logging"
	"squad-pickem-go/middleware"
	"squad-pickem-go/models"
	"squad-pickem-go/services"
)

// PickHandler handles pick submission
type PickHandler struct {
	pickService *services.PickService
	logger      *logging.Logger
}

// NewPickHandler creates a new pick handler
func NewPickHandler(pickService *services.PickService) *PickHandler {
	return &PickHandler{
		pickService: pickService,
		logger:      logging.WithPrefix("PickHandler"),
	}
}

type submitPickRequest struct {
	SquadID int             `json:"squad_id"`
	GameID  int             `json:"game_id"`
	Side    models.PickSide `json:"side"`
}

// SubmitPick handles POST /api/picks
func (h *PickHandler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req submitPickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pick, err := h.pickService.SubmitPick(r.Context(), req.SquadID, user.ID, req.GameID, req.Side)
	if err != nil {
		h.logger.Warnf("Pick submission by user %d rejected: %v", user.ID, err)
		writeError(w, http.StatusBadRequest, "pick rejected")
		return
	}

	writeJSON(w, http.StatusCreated, pick)
}
