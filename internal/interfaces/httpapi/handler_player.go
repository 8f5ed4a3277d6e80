package httpapi

import (
	"net/http"
	"strings"

	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/usecase"
)

type createPlayerRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Overall     int    `json:"overall" validate:"required,min=1,max=99"`
	Position    string `json:"position" validate:"omitempty,oneof=GK DEF MID FWD"`
	PlayStyle   string `json:"playStyle"`
	IsAdmin     bool   `json:"isAdmin"`
	PhotoURL    string `json:"photoUrl"`
	ShirtNumber int    `json:"shirtNumber" validate:"omitempty,min=1,max=99"`
}

type updatePlayerRequest struct {
	Name        string         `json:"name" validate:"required,max=100"`
	Email       string         `json:"email" validate:"omitempty,email"`
	Position    string         `json:"position" validate:"omitempty,oneof=GK DEF MID FWD"`
	PlayStyle   string         `json:"playStyle"`
	Attributes  *attributesDTO `json:"attributes"`
	PhotoURL    string         `json:"photoUrl"`
	ShirtNumber int            `json:"shirtNumber" validate:"omitempty,min=1,max=99"`
}

type onboardingRequest struct {
	Position  string `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	PlayStyle string `json:"playStyle"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	p, err := h.playerService.GetByID(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		Name:        req.Name,
		Email:       req.Email,
		Overall:     req.Overall,
		Position:    player.Position(req.Position),
		PlayStyle:   player.PlayStyle(req.PlayStyle),
		IsAdmin:     req.IsAdmin,
		PhotoURL:    req.PhotoURL,
		ShirtNumber: req.ShirtNumber,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(p))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req updatePlayerRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdatePlayerInput{
		Name:        req.Name,
		Email:       req.Email,
		Position:    player.Position(req.Position),
		PlayStyle:   player.PlayStyle(req.PlayStyle),
		PhotoURL:    req.PhotoURL,
		ShirtNumber: req.ShirtNumber,
	}
	if req.Attributes != nil {
		input.Attributes = player.Attributes{
			Pace:      req.Attributes.Pace,
			Shooting:  req.Attributes.Shooting,
			Passing:   req.Attributes.Passing,
			Defending: req.Attributes.Defending,
		}
	}

	p, err := h.playerService.Update(ctx, playerID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteOnboarding")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req onboardingRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.CompleteOnboarding(ctx, playerID, player.Position(req.Position), player.PlayStyle(req.PlayStyle))
	if err != nil {
		h.logger.WarnContext(ctx, "complete onboarding failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) GetProjectedOverall(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProjectedOverall")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	projected, err := h.playerService.ProjectedOverall(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "projected overall failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"projectedOverall": projected})
}
