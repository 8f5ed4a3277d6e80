package httpapi

import (
	"context"
	"fmt"
	"io"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/usecase"
)

func decodeBody(ctx context.Context, body io.Reader, dst any) error {
	_, span := startSpan(ctx, "httpapi.decodeBody")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type attributesDTO struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Defending int `json:"defending"`
}

type accumulatorsDTO struct {
	Pace      float64 `json:"pace"`
	Shooting  float64 `json:"shooting"`
	Passing   float64 `json:"passing"`
	Defending float64 `json:"defending"`
}

type ratingSnapshotDTO struct {
	Date    string `json:"date"`
	Overall int    `json:"overall"`
}

type playerDTO struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Email         string              `json:"email,omitempty"`
	Position      string              `json:"position,omitempty"`
	PlayStyle     string              `json:"playStyle,omitempty"`
	Attributes    *attributesDTO      `json:"attributes,omitempty"`
	Accumulators  accumulatorsDTO     `json:"accumulators"`
	Overall       int                 `json:"overall"`
	RatingHistory []ratingSnapshotDTO `json:"ratingHistory,omitempty"`
	IsAdmin       bool                `json:"isAdmin"`
	PhotoURL      string              `json:"photoUrl,omitempty"`
	ShirtNumber   int                 `json:"shirtNumber,omitempty"`
}

func playerToDTO(v player.Player) playerDTO {
	dto := playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Position:  string(v.Position),
		PlayStyle: string(v.PlayStyle),
		Accumulators: accumulatorsDTO{
			Pace:      v.Accumulators.Pace,
			Shooting:  v.Accumulators.Shooting,
			Passing:   v.Accumulators.Passing,
			Defending: v.Accumulators.Defending,
		},
		Overall:     v.Overall,
		IsAdmin:     v.IsAdmin,
		PhotoURL:    v.PhotoURL,
		ShirtNumber: v.ShirtNumber,
	}

	if !v.Attributes.IsZero() {
		dto.Attributes = &attributesDTO{
			Pace:      v.Attributes.Pace,
			Shooting:  v.Attributes.Shooting,
			Passing:   v.Attributes.Passing,
			Defending: v.Attributes.Defending,
		}
	}

	for _, snap := range v.RatingHistory {
		dto.RatingHistory = append(dto.RatingHistory, ratingSnapshotDTO{
			Date:    snap.Date.UTC().Format(time.RFC3339),
			Overall: snap.Overall,
		})
	}

	return dto
}

type teamDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	AvgOverall  float64        `json:"avgOverall"`
	StyleCounts map[string]int `json:"styleCounts,omitempty"`
	Players     []playerDTO    `json:"players"`
}

func teamToDTO(v match.Team) teamDTO {
	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerToDTO(p))
	}

	var styles map[string]int
	if len(v.StyleCounts) > 0 {
		styles = make(map[string]int, len(v.StyleCounts))
		for style, count := range v.StyleCounts {
			styles[string(style)] = count
		}
	}

	return teamDTO{
		ID:          v.ID,
		Name:        v.Name,
		AvgOverall:  v.AvgOverall,
		StyleCounts: styles,
		Players:     players,
	}
}

type kickDTO struct {
	TeamID string `json:"teamId"`
	Scored bool   `json:"scored"`
	Round  int    `json:"round"`
}

type shootoutDTO struct {
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Kicks     []kickDTO `json:"kicks"`
}

type gameDTO struct {
	ID         string       `json:"id"`
	HomeTeamID string       `json:"homeTeamId"`
	AwayTeamID string       `json:"awayTeamId"`
	HomeScore  int          `json:"homeScore"`
	AwayScore  int          `json:"awayScore"`
	Status     string       `json:"status"`
	Phase      string       `json:"phase"`
	Sequence   int          `json:"sequence"`
	TieBreak   bool         `json:"tieBreak"`
	Shootout   *shootoutDTO `json:"shootout,omitempty"`
}

func gameToDTO(v match.Game) gameDTO {
	dto := gameDTO{
		ID:         v.ID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Status:     string(v.Status),
		Phase:      string(v.Phase),
		Sequence:   v.Sequence,
		TieBreak:   v.TieBreak,
	}

	if v.Shootout != nil {
		kicks := make([]kickDTO, 0, len(v.Shootout.Kicks))
		for _, k := range v.Shootout.Kicks {
			kicks = append(kicks, kickDTO{TeamID: k.TeamID, Scored: k.Scored, Round: k.Round})
		}
		dto.Shootout = &shootoutDTO{
			HomeScore: v.Shootout.HomeScore,
			AwayScore: v.Shootout.AwayScore,
			Kicks:     kicks,
		}
	}

	return dto
}

type goalDTO struct {
	ID       string `json:"id"`
	GameID   string `json:"gameId"`
	TeamID   string `json:"teamId"`
	ScorerID string `json:"scorerId"`
	AssistID string `json:"assistId,omitempty"`
	Minute   int    `json:"minute"`
}

func goalToDTO(v match.Goal) goalDTO {
	return goalDTO{
		ID:       v.ID,
		GameID:   v.GameID,
		TeamID:   v.TeamID,
		ScorerID: v.ScorerID,
		AssistID: v.AssistID,
		Minute:   v.Minute,
	}
}

type matchDTO struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	Location         string    `json:"location"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	Teams            []teamDTO `json:"teams"`
	Games            []gameDTO `json:"games"`
	Goals            []goalDTO `json:"goals"`
	ChampionPhotoURL string    `json:"championPhotoUrl,omitempty"`
}

func matchToDTO(v match.Match) matchDTO {
	teams := make([]teamDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		teams = append(teams, teamToDTO(t))
	}
	games := make([]gameDTO, 0, len(v.Games))
	for _, g := range v.Games {
		games = append(games, gameToDTO(g))
	}
	goals := make([]goalDTO, 0, len(v.Goals))
	for _, g := range v.Goals {
		goals = append(goals, goalToDTO(g))
	}

	return matchDTO{
		ID:               v.ID,
		Date:             v.Date.UTC().Format(time.RFC3339),
		Location:         v.Location,
		Type:             string(v.Type),
		Status:           string(v.Status),
		Teams:            teams,
		Games:            games,
		Goals:            goals,
		ChampionPhotoURL: v.ChampionPhotoURL,
	}
}

type standingDTO struct {
	TeamID       string `json:"teamId"`
	Points       int    `json:"points"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
}

func standingToDTO(v match.Standing) standingDTO {
	return standingDTO{
		TeamID:       v.TeamID,
		Points:       v.Points,
		Played:       v.Played,
		Wins:         v.Wins,
		Draws:        v.Draws,
		Losses:       v.Losses,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
		GoalDiff:     v.GoalDiff,
	}
}
