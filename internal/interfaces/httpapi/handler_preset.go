package httpapi

import (
	"net/http"
	"strings"

	"github.com/peladahub/pelada/internal/domain/preset"
)

type presetRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
}

type presetDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"playerIds"`
}

func presetToDTO(v preset.Preset) presetDTO {
	return presetDTO{
		ID:        v.ID,
		Name:      v.Name,
		PlayerIDs: append([]string(nil), v.PlayerIDs...),
	}
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPresets")
	defer span.End()

	presets, err := h.presetService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list presets failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]presetDTO, 0, len(presets))
	for _, p := range presets {
		items = append(items, presetToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePreset")
	defer span.End()

	var req presetRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.presetService.Create(ctx, req.Name, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "create preset failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, presetToDTO(p))
}

func (h *Handler) UpdatePreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePreset")
	defer span.End()

	presetID := strings.TrimSpace(r.PathValue("presetID"))
	var req presetRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.presetService.Update(ctx, presetID, req.Name, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "update preset failed", "preset_id", presetID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presetToDTO(p))
}

func (h *Handler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePreset")
	defer span.End()

	presetID := strings.TrimSpace(r.PathValue("presetID"))
	if err := h.presetService.Delete(ctx, presetID); err != nil {
		h.logger.WarnContext(ctx, "delete preset failed", "preset_id", presetID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
