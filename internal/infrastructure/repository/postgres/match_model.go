package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
)

type matchTableModel struct {
	ID               string    `db:"id"`
	MatchDate        time.Time `db:"match_date"`
	Location         string    `db:"location"`
	MatchType        string    `db:"match_type"`
	Status           string    `db:"status"`
	ChampionPhotoURL string    `db:"champion_photo_url"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type matchInsertModel struct {
	ID               string    `db:"id"`
	MatchDate        time.Time `db:"match_date"`
	Location         string    `db:"location"`
	MatchType        string    `db:"match_type"`
	Status           string    `db:"status"`
	ChampionPhotoURL string    `db:"champion_photo_url"`
}

type teamTableModel struct {
	ID          string  `db:"id"`
	MatchID     string  `db:"match_id"`
	Seq         int     `db:"seq"`
	Name        string  `db:"name"`
	AvgOverall  float64 `db:"avg_overall"`
	StyleCounts []byte  `db:"style_counts"`
}

type teamPlayerInsertModel struct {
	TeamID   string `db:"team_id"`
	MatchID  string `db:"match_id"`
	PlayerID string `db:"player_id"`
	Seq      int    `db:"seq"`
}

// rosterRow joins a team membership with the player record behind it.
type rosterRow struct {
	TeamID string `db:"team_id"`
	playerTableModel
}

type gameTableModel struct {
	ID         string `db:"id"`
	MatchID    string `db:"match_id"`
	HomeTeamID string `db:"home_team_id"`
	AwayTeamID string `db:"away_team_id"`
	HomeScore  int    `db:"home_score"`
	AwayScore  int    `db:"away_score"`
	Status     string `db:"status"`
	Phase      string `db:"phase"`
	Sequence   int    `db:"sequence"`
	Shootout   []byte `db:"shootout"`
	TieBreak   bool   `db:"tie_break"`
}

type goalTableModel struct {
	ID       string `db:"id"`
	MatchID  string `db:"match_id"`
	GameID   string `db:"game_id"`
	TeamID   string `db:"team_id"`
	ScorerID string `db:"scorer_id"`
	AssistID string `db:"assist_id"`
	Minute   int    `db:"minute"`
}

type shootoutJSON struct {
	HomeScore int        `json:"home_score"`
	AwayScore int        `json:"away_score"`
	Kicks     []kickJSON `json:"kicks"`
}

type kickJSON struct {
	TeamID string `json:"team_id"`
	Scored bool   `json:"scored"`
	Round  int    `json:"round"`
}

func matchToInsertModel(m match.Match) matchInsertModel {
	return matchInsertModel{
		ID:               m.ID,
		MatchDate:        m.Date,
		Location:         m.Location,
		MatchType:        string(m.Type),
		Status:           string(m.Status),
		ChampionPhotoURL: m.ChampionPhotoURL,
	}
}

func teamToTableModel(t match.Team, seq int) (teamTableModel, error) {
	styleJSON, err := sonic.Marshal(t.StyleCounts)
	if err != nil {
		return teamTableModel{}, fmt.Errorf("marshal team style counts: %w", err)
	}
	return teamTableModel{
		ID:          t.ID,
		MatchID:     t.MatchID,
		Seq:         seq,
		Name:        t.Name,
		AvgOverall:  t.AvgOverall,
		StyleCounts: styleJSON,
	}, nil
}

func teamFromRow(row teamTableModel, roster []player.Player) (match.Team, error) {
	var styles map[player.PlayStyle]int
	if len(row.StyleCounts) > 0 {
		if err := sonic.Unmarshal(row.StyleCounts, &styles); err != nil {
			return match.Team{}, fmt.Errorf("unmarshal team style counts: %w", err)
		}
	}
	return match.Team{
		ID:          row.ID,
		MatchID:     row.MatchID,
		Name:        row.Name,
		Players:     roster,
		AvgOverall:  row.AvgOverall,
		StyleCounts: styles,
	}, nil
}

func gameToTableModel(g match.Game) (gameTableModel, error) {
	var shootoutBytes []byte
	if g.Shootout != nil {
		kicks := make([]kickJSON, 0, len(g.Shootout.Kicks))
		for _, k := range g.Shootout.Kicks {
			kicks = append(kicks, kickJSON{TeamID: k.TeamID, Scored: k.Scored, Round: k.Round})
		}
		encoded, err := sonic.Marshal(shootoutJSON{
			HomeScore: g.Shootout.HomeScore,
			AwayScore: g.Shootout.AwayScore,
			Kicks:     kicks,
		})
		if err != nil {
			return gameTableModel{}, fmt.Errorf("marshal shootout: %w", err)
		}
		shootoutBytes = encoded
	}

	return gameTableModel{
		ID:         g.ID,
		MatchID:    g.MatchID,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		Status:     string(g.Status),
		Phase:      string(g.Phase),
		Sequence:   g.Sequence,
		Shootout:   shootoutBytes,
		TieBreak:   g.TieBreak,
	}, nil
}

func gameFromRow(row gameTableModel) (match.Game, error) {
	g := match.Game{
		ID:         row.ID,
		MatchID:    row.MatchID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		Status:     match.GameStatus(row.Status),
		Phase:      match.Phase(row.Phase),
		Sequence:   row.Sequence,
		TieBreak:   row.TieBreak,
	}

	if len(row.Shootout) > 0 {
		var decoded shootoutJSON
		if err := sonic.Unmarshal(row.Shootout, &decoded); err != nil {
			return match.Game{}, fmt.Errorf("unmarshal shootout: %w", err)
		}
		kicks := make([]match.Kick, 0, len(decoded.Kicks))
		for _, k := range decoded.Kicks {
			kicks = append(kicks, match.Kick{TeamID: k.TeamID, Scored: k.Scored, Round: k.Round})
		}
		g.Shootout = &match.Shootout{
			HomeScore: decoded.HomeScore,
			AwayScore: decoded.AwayScore,
			Kicks:     kicks,
		}
	}

	return g, nil
}

func goalToTableModel(g match.Goal) goalTableModel {
	return goalTableModel{
		ID:       g.ID,
		MatchID:  g.MatchID,
		GameID:   g.GameID,
		TeamID:   g.TeamID,
		ScorerID: g.ScorerID,
		AssistID: g.AssistID,
		Minute:   g.Minute,
	}
}

func goalFromRow(row goalTableModel) match.Goal {
	return match.Goal{
		ID:       row.ID,
		MatchID:  row.MatchID,
		GameID:   row.GameID,
		TeamID:   row.TeamID,
		ScorerID: row.ScorerID,
		AssistID: row.AssistID,
		Minute:   row.Minute,
	}
}
