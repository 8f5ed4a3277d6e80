package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/peladahub/pelada/internal/platform/logging"
	"github.com/peladahub/pelada/internal/usecase"
)

type Handler struct {
	playerService     *usecase.PlayerService
	draftService      *usecase.DraftService
	matchService      *usecase.MatchService
	settlementService *usecase.SettlementService
	statsService      *usecase.StatsService
	presetService     *usecase.PresetService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	draftService *usecase.DraftService,
	matchService *usecase.MatchService,
	settlementService *usecase.SettlementService,
	statsService *usecase.StatsService,
	presetService *usecase.PresetService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:     playerService,
		draftService:      draftService,
		matchService:      matchService,
		settlementService: settlementService,
		statsService:      statsService,
		presetService:     presetService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
