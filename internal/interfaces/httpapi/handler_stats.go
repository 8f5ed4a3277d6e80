package httpapi

import (
	"net/http"
	"strings"

	"github.com/peladahub/pelada/internal/domain/achievement"
	"github.com/peladahub/pelada/internal/domain/halloffame"
)

type careerStatsDTO struct {
	PlayerID      string         `json:"playerId"`
	Matches       int            `json:"matches"`
	Wins          int            `json:"wins"`
	Goals         int            `json:"goals"`
	Assists       int            `json:"assists"`
	CleanSheets   int            `json:"cleanSheets"`
	HatTricks     int            `json:"hatTricks"`
	AssistTricks  int            `json:"assistTricks"`
	CleanStreaks  int            `json:"cleanStreaks"`
	Titles        int            `json:"titles"`
	MonthlyTitles map[string]int `json:"monthlyTitles,omitempty"`
}

type achievementDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ManualOnly  bool   `json:"manualOnly"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
}

type hallOfFameEntryDTO struct {
	ID       string `json:"id"`
	Month    string `json:"month"`
	Category string `json:"category"`
	PlayerID string `json:"playerId"`
	Value    int    `json:"value"`
}

func careerStatsToDTO(v achievement.CareerStats) careerStatsDTO {
	var monthly map[string]int
	if len(v.MonthlyTitles) > 0 {
		monthly = make(map[string]int, len(v.MonthlyTitles))
		for category, count := range v.MonthlyTitles {
			monthly[string(category)] = count
		}
	}

	return careerStatsDTO{
		PlayerID:      v.PlayerID,
		Matches:       v.Matches,
		Wins:          v.Wins,
		Goals:         v.Goals,
		Assists:       v.Assists,
		CleanSheets:   v.CleanSheets,
		HatTricks:     v.HatTricks,
		AssistTricks:  v.AssistTricks,
		CleanStreaks:  v.CleanStreaks,
		Titles:        v.Titles,
		MonthlyTitles: monthly,
	}
}

func hallOfFameEntryToDTO(v halloffame.Entry) hallOfFameEntryDTO {
	return hallOfFameEntryDTO{
		ID:       v.ID,
		Month:    v.Month,
		Category: string(v.Category),
		PlayerID: v.PlayerID,
		Value:    v.Value,
	}
}

func (h *Handler) GetCareerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCareerStats")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	stats, err := h.statsService.CareerStats(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get career stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, careerStatsToDTO(stats))
}

func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAchievements")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	achievements, err := h.statsService.Achievements(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list achievements failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]achievementDTO, 0, len(achievements))
	for _, a := range achievements {
		items = append(items, achievementDTO{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			ManualOnly:  a.ManualOnly,
			Unlocked:    a.Unlocked,
			Progress:    a.Progress,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GrantAchievement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GrantAchievement")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	achievementID := strings.TrimSpace(r.PathValue("achievementID"))
	if err := h.statsService.GrantAchievement(ctx, playerID, achievementID); err != nil {
		h.logger.WarnContext(ctx, "grant achievement failed", "player_id", playerID, "achievement_id", achievementID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"playerId":      playerID,
		"achievementId": achievementID,
	})
}

func (h *Handler) RevokeAchievement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RevokeAchievement")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	achievementID := strings.TrimSpace(r.PathValue("achievementID"))
	if err := h.statsService.RevokeAchievement(ctx, playerID, achievementID); err != nil {
		h.logger.WarnContext(ctx, "revoke achievement failed", "player_id", playerID, "achievement_id", achievementID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListHallOfFame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHallOfFame")
	defer span.End()

	entries, err := h.statsService.HallOfFame(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list hall of fame failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]hallOfFameEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, hallOfFameEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard, err := h.statsService.Dashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboard)
}
