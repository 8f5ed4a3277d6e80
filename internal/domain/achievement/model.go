// Package achievement derives career statistics and unlockable badges from
// finished events.
package achievement

import (
	"context"

	"github.com/peladahub/pelada/internal/domain/halloffame"
)

// CareerStats is the cumulative record of one player over every finished
// event, plus their hall of fame titles.
type CareerStats struct {
	PlayerID    string
	Matches     int
	Wins        int
	Goals       int
	Assists     int
	CleanSheets int
	// HatTricks counts games with three or more goals by the player.
	HatTricks int
	// AssistTricks counts games with three or more assists.
	AssistTricks int
	// CleanStreaks counts completed runs of three consecutive clean-sheet
	// games. The running streak resets on any conceded goal and also resets
	// each time it completes, so six straight clean games count twice.
	CleanStreaks int
	// Titles counts events where the player's team topped the standings.
	Titles        int
	MonthlyTitles map[halloffame.Category]int
}

// Achievement is one badge definition. ManualOnly badges never unlock from
// stats and show no automatic progress.
type Achievement struct {
	ID          string
	Name        string
	Description string
	ManualOnly  bool
	unlock      func(CareerStats) bool
	progress    func(CareerStats) int
}

// PlayerAchievement is an evaluated badge for one player.
type PlayerAchievement struct {
	ID          string
	Name        string
	Description string
	ManualOnly  bool
	Unlocked    bool
	Progress    int
}

func ratio(value, threshold int) int {
	if value >= threshold {
		return 100
	}
	if value <= 0 {
		return 0
	}
	return value * 100 / threshold
}

func threshold(pick func(CareerStats) int, want int) Achievement {
	return Achievement{
		unlock:   func(s CareerStats) bool { return pick(s) >= want },
		progress: func(s CareerStats) int { return ratio(pick(s), want) },
	}
}

func define(id, name, description string, base Achievement) Achievement {
	base.ID = id
	base.Name = name
	base.Description = description
	return base
}

// Catalog is the full badge list in display order.
var Catalog = []Achievement{
	define("estreia", "Estreia", "Play your first pelada.",
		threshold(func(s CareerStats) int { return s.Matches }, 1)),
	define("presenca-vip", "Presença VIP", "Play 50 peladas.",
		threshold(func(s CareerStats) int { return s.Matches }, 50)),
	define("artilheiro", "Artilheiro", "Score 50 goals.",
		threshold(func(s CareerStats) int { return s.Goals }, 50)),
	define("garcom", "Garçom", "Provide 25 assists.",
		threshold(func(s CareerStats) int { return s.Assists }, 25)),
	define("hat-trick", "Hat-trick", "Score three goals in a single game.",
		threshold(func(s CareerStats) int { return s.HatTricks }, 1)),
	define("maestro", "Maestro", "Three assists in a single game.",
		threshold(func(s CareerStats) int { return s.AssistTricks }, 1)),
	define("muralha", "Muralha", "Keep three clean sheets in a row.",
		threshold(func(s CareerStats) int { return s.CleanStreaks }, 1)),
	define("campeao", "Campeão", "Win an event with your team.",
		threshold(func(s CareerStats) int { return s.Titles }, 1)),
	define("dinastia", "Dinastia", "Win five events.",
		threshold(func(s CareerStats) int { return s.Titles }, 5)),
	define("craque-do-mes", "Craque do Mês", "Win any monthly award.",
		threshold(func(s CareerStats) int {
			total := 0
			for _, n := range s.MonthlyTitles {
				total += n
			}
			return total
		}, 1)),
	{
		ID:          "lenda",
		Name:        "Lenda da Pelada",
		Description: "Awarded by the group for services to the pelada.",
		ManualOnly:  true,
	},
}

// Evaluate renders the catalog against a player's stats and manual grants.
func Evaluate(stats CareerStats, granted map[string]bool) []PlayerAchievement {
	out := make([]PlayerAchievement, 0, len(Catalog))
	for _, a := range Catalog {
		pa := PlayerAchievement{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			ManualOnly:  a.ManualOnly,
		}
		switch {
		case a.ManualOnly:
			pa.Unlocked = granted[a.ID]
		default:
			pa.Unlocked = a.unlock(stats) || granted[a.ID]
			pa.Progress = a.progress(stats)
			if pa.Unlocked {
				pa.Progress = 100
			}
		}
		out = append(out, pa)
	}
	return out
}

// ValidID reports whether id names a catalog badge.
func ValidID(id string) bool {
	for _, a := range Catalog {
		if a.ID == id {
			return true
		}
	}
	return false
}

// GrantRepository persists manually awarded badges per player.
type GrantRepository interface {
	ListByPlayer(ctx context.Context, playerID string) ([]string, error)
	Grant(ctx context.Context, playerID, achievementID string) error
	Revoke(ctx context.Context, playerID, achievementID string) error
}
