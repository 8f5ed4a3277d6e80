package httpapi

import (
	"net/http"
)

type settlementRequest struct {
	Month string `json:"month" validate:"omitempty,len=7"`
}

func (h *Handler) PreviewSettlement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewSettlement")
	defer span.End()

	var req settlementRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.settlementService.Preview(ctx, req.Month)
	if err != nil {
		h.logger.WarnContext(ctx, "settlement preview failed", "month", req.Month, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) CommitSettlement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CommitSettlement")
	defer span.End()

	var req settlementRequest
	if err := decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.settlementService.Commit(ctx, req.Month)
	if err != nil {
		h.logger.WarnContext(ctx, "settlement commit failed", "month", req.Month, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
