package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/usecase"
)

type draftPreviewRequest struct {
	Type      string   `json:"type" validate:"required,oneof=TRIANGULAR QUADRANGULAR"`
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
}

type createDraftRequest struct {
	Date      string   `json:"date" validate:"required"`
	Location  string   `json:"location" validate:"required,max=200"`
	Type      string   `json:"type" validate:"required,oneof=TRIANGULAR QUADRANGULAR"`
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
}

type movePlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	ToTeamID string `json:"toTeamId" validate:"required"`
}

func (h *Handler) PreviewDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewDraft")
	defer span.End()

	var req draftPreviewRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.draftService.Preview(ctx, match.Type(req.Type), req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "draft preview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDraft")
	defer span.End()

	var req createDraftRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must be RFC3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	m, err := h.draftService.CreateDraft(ctx, usecase.CreateDraftInput{
		Date:      date,
		Location:  req.Location,
		Type:      match.Type(req.Type),
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create draft failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(m))
}

func (h *Handler) MoveDraftPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MoveDraftPlayer")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req movePlayerRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.draftService.MovePlayer(ctx, matchID, req.PlayerID, req.ToTeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "move draft player failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}
