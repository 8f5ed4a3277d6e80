package httpapi

import (
	"net/http"
	"strings"

	"github.com/peladahub/pelada/internal/usecase"
)

type registerGoalRequest struct {
	TeamID   string `json:"teamId" validate:"required"`
	ScorerID string `json:"scorerId" validate:"required"`
	AssistID string `json:"assistId"`
	Minute   int    `json:"minute" validate:"min=0"`
}

type editGoalRequest struct {
	ScorerID string `json:"scorerId" validate:"required"`
	AssistID string `json:"assistId"`
}

type penaltyKickRequest struct {
	TeamID string `json:"teamId" validate:"required"`
	Scored bool   `json:"scored"`
}

type championPhotoRequest struct {
	PhotoURL string `json:"photoUrl" validate:"required,url"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	m, err := h.matchService.GetByID(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) PublishMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	m, err := h.matchService.Publish(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "publish match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) CancelMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	m, err := h.matchService.Cancel(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "cancel match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartGame")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	gameID := strings.TrimSpace(r.PathValue("gameID"))
	g, err := h.matchService.StartGame(ctx, matchID, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "start game failed", "match_id", matchID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(g))
}

func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EndGame")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	gameID := strings.TrimSpace(r.PathValue("gameID"))
	g, err := h.matchService.EndGame(ctx, matchID, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "end game failed", "match_id", matchID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(g))
}

func (h *Handler) RegisterGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterGoal")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req registerGoalRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	goal, err := h.matchService.RegisterGoal(ctx, matchID, usecase.RegisterGoalInput{
		GameID:   gameID,
		TeamID:   req.TeamID,
		ScorerID: req.ScorerID,
		AssistID: req.AssistID,
		Minute:   req.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register goal failed", "match_id", matchID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, goalToDTO(goal))
}

func (h *Handler) EditGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EditGoal")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	goalID := strings.TrimSpace(r.PathValue("goalID"))
	var req editGoalRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	goal, err := h.matchService.EditGoal(ctx, matchID, usecase.EditGoalInput{
		GoalID:   goalID,
		ScorerID: req.ScorerID,
		AssistID: req.AssistID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "edit goal failed", "match_id", matchID, "goal_id", goalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalToDTO(goal))
}

func (h *Handler) RegisterPenaltyKick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPenaltyKick")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req penaltyKickRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	g, err := h.matchService.PenaltyKick(ctx, matchID, gameID, req.TeamID, req.Scored)
	if err != nil {
		h.logger.WarnContext(ctx, "penalty kick failed", "match_id", matchID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(g))
}

func (h *Handler) UndoPenaltyKick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UndoPenaltyKick")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	gameID := strings.TrimSpace(r.PathValue("gameID"))
	g, err := h.matchService.UndoPenaltyKick(ctx, matchID, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "undo penalty kick failed", "match_id", matchID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(g))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	standings, err := h.matchService.Standings(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		items = append(items, standingToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTieBreakGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTieBreakGame")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	g, err := h.matchService.CreateTieBreakGame(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "create tie-break failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(g))
}

func (h *Handler) GetChampion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampion")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	name, err := h.matchService.ChampionName(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get champion failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"champion": name})
}

func (h *Handler) SetChampionPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetChampionPhoto")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req championPhotoRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.SetChampionPhoto(ctx, matchID, req.PhotoURL); err != nil {
		h.logger.WarnContext(ctx, "set champion photo failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"championPhotoUrl": req.PhotoURL})
}

func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinishMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	m, err := h.matchService.Finish(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "finish match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}
