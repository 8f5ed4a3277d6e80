package memory

import (
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/domain/preset"
)

// SeedPlayers returns a demo roster large enough for a quadrangular
// draft. Attributes are derived the same way onboarding derives them.
func SeedPlayers() []player.Player {
	specs := []struct {
		id      string
		name    string
		email   string
		pos     player.Position
		style   player.PlayStyle
		overall int
		shirt   int
		admin   bool
	}{
		{"pl-gk-01", "Paredão Silva", "paredao@pelada.dev", player.PositionGoalkeeper, player.StyleAnchor, 78, 1, true},
		{"pl-gk-02", "Luva de Ouro", "luva@pelada.dev", player.PositionGoalkeeper, player.StyleSweeper, 72, 12, false},
		{"pl-gk-03", "Mãozinha", "maozinha@pelada.dev", player.PositionGoalkeeper, player.StyleAnchor, 65, 23, false},
		{"pl-gk-04", "Gato Félix", "gato@pelada.dev", player.PositionGoalkeeper, player.StyleSweeper, 60, 30, false},
		{"pl-def-01", "Zagueirão", "zagueirao@pelada.dev", player.PositionDefender, player.StyleAnchor, 76, 4, false},
		{"pl-def-02", "Xerife", "xerife@pelada.dev", player.PositionDefender, player.StyleAnchor, 74, 3, false},
		{"pl-def-03", "Lateral Voador", "voador@pelada.dev", player.PositionDefender, player.StyleEngine, 70, 2, false},
		{"pl-def-04", "Muralha Jr", "muralha@pelada.dev", player.PositionDefender, player.StyleAnchor, 68, 13, false},
		{"pl-def-05", "Carrinho", "carrinho@pelada.dev", player.PositionDefender, player.StyleEngine, 62, 16, false},
		{"pl-def-06", "Trave Humana", "trave@pelada.dev", player.PositionDefender, player.StyleAnchor, 58, 26, false},
		{"pl-mid-01", "Maestro Tião", "maestro@pelada.dev", player.PositionMidfielder, player.StylePlaymaker, 80, 10, false},
		{"pl-mid-02", "Caneta Dourada", "caneta@pelada.dev", player.PositionMidfielder, player.StylePlaymaker, 75, 8, false},
		{"pl-mid-03", "Pulmão", "pulmao@pelada.dev", player.PositionMidfielder, player.StyleEngine, 71, 5, false},
		{"pl-mid-04", "Meia Boca", "meiaboca@pelada.dev", player.PositionMidfielder, player.StyleEngine, 66, 20, false},
		{"pl-mid-05", "Volante Raiz", "volante@pelada.dev", player.PositionMidfielder, player.StyleAnchor, 64, 14, false},
		{"pl-mid-06", "Garçom do Bairro", "garcom@pelada.dev", player.PositionMidfielder, player.StylePlaymaker, 61, 18, false},
		{"pl-fwd-01", "Artilheiro Nato", "artilheiro@pelada.dev", player.PositionForward, player.StyleFinisher, 79, 9, false},
		{"pl-fwd-02", "Ponta Ligeira", "ponta@pelada.dev", player.PositionForward, player.StyleDribbler, 73, 7, false},
		{"pl-fwd-03", "Matador da Várzea", "matador@pelada.dev", player.PositionForward, player.StyleFinisher, 69, 11, false},
		{"pl-fwd-04", "Perna de Pau", "pernadepau@pelada.dev", player.PositionForward, player.StyleDribbler, 55, 17, false},
	}

	players := make([]player.Player, 0, len(specs))
	for _, s := range specs {
		attrs := player.GenerateAttributes(s.overall, s.pos)
		players = append(players, player.Player{
			ID:          s.id,
			Name:        s.name,
			Email:       s.email,
			Position:    s.pos,
			PlayStyle:   s.style,
			Attributes:  attrs,
			Overall:     player.RoundedOverall(s.pos, attrs),
			IsAdmin:     s.admin,
			ShirtNumber: s.shirt,
		})
	}
	return players
}

// SeedPresets returns draft presets built over the seeded roster.
func SeedPresets() []preset.Preset {
	return []preset.Preset{
		{
			ID:   "ps-quarta",
			Name: "Pelada de Quarta",
			PlayerIDs: []string{
				"pl-gk-01", "pl-gk-02", "pl-gk-03",
				"pl-def-01", "pl-def-02", "pl-def-03",
				"pl-mid-01", "pl-mid-02", "pl-mid-03",
				"pl-fwd-01", "pl-fwd-02", "pl-fwd-03",
			},
		},
		{
			ID:   "ps-sabado",
			Name: "Peladão de Sábado",
			PlayerIDs: []string{
				"pl-gk-01", "pl-gk-02", "pl-gk-03", "pl-gk-04",
				"pl-def-01", "pl-def-02", "pl-def-03", "pl-def-04",
				"pl-mid-01", "pl-mid-02", "pl-mid-03", "pl-mid-04",
				"pl-fwd-01", "pl-fwd-02", "pl-fwd-03", "pl-fwd-04",
			},
		},
	}
}
