package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/peladahub/pelada/internal/domain/player"
)

type playerTableModel struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	Email         string     `db:"email"`
	Position      string     `db:"position"`
	PlayStyle     string     `db:"play_style"`
	Pace          int        `db:"pace"`
	Shooting      int        `db:"shooting"`
	Passing       int        `db:"passing"`
	Defending     int        `db:"defending"`
	Overall       int        `db:"overall"`
	Accumulators  []byte     `db:"accumulators"`
	RatingHistory []byte     `db:"rating_history"`
	IsAdmin       bool       `db:"is_admin"`
	PhotoURL      string     `db:"photo_url"`
	ShirtNumber   int        `db:"shirt_number"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Email         string `db:"email"`
	Position      string `db:"position"`
	PlayStyle     string `db:"play_style"`
	Pace          int    `db:"pace"`
	Shooting      int    `db:"shooting"`
	Passing       int    `db:"passing"`
	Defending     int    `db:"defending"`
	Overall       int    `db:"overall"`
	Accumulators  []byte `db:"accumulators"`
	RatingHistory []byte `db:"rating_history"`
	IsAdmin       bool   `db:"is_admin"`
	PhotoURL      string `db:"photo_url"`
	ShirtNumber   int    `db:"shirt_number"`
}

type accumulatorsJSON struct {
	Pace      float64 `json:"pace"`
	Shooting  float64 `json:"shooting"`
	Passing   float64 `json:"passing"`
	Defending float64 `json:"defending"`
}

type ratingSnapshotJSON struct {
	Date    time.Time `json:"date"`
	Overall int       `json:"overall"`
}

func playerToInsertModel(p player.Player) (playerInsertModel, error) {
	accJSON, err := sonic.Marshal(accumulatorsJSON{
		Pace:      p.Accumulators.Pace,
		Shooting:  p.Accumulators.Shooting,
		Passing:   p.Accumulators.Passing,
		Defending: p.Accumulators.Defending,
	})
	if err != nil {
		return playerInsertModel{}, fmt.Errorf("marshal accumulators: %w", err)
	}

	history := make([]ratingSnapshotJSON, 0, len(p.RatingHistory))
	for _, snap := range p.RatingHistory {
		history = append(history, ratingSnapshotJSON{Date: snap.Date, Overall: snap.Overall})
	}
	historyJSON, err := sonic.Marshal(history)
	if err != nil {
		return playerInsertModel{}, fmt.Errorf("marshal rating history: %w", err)
	}

	return playerInsertModel{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Position:      string(p.Position),
		PlayStyle:     string(p.PlayStyle),
		Pace:          p.Attributes.Pace,
		Shooting:      p.Attributes.Shooting,
		Passing:       p.Attributes.Passing,
		Defending:     p.Attributes.Defending,
		Overall:       p.Overall,
		Accumulators:  accJSON,
		RatingHistory: historyJSON,
		IsAdmin:       p.IsAdmin,
		PhotoURL:      p.PhotoURL,
		ShirtNumber:   p.ShirtNumber,
	}, nil
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	var acc accumulatorsJSON
	if len(row.Accumulators) > 0 {
		if err := sonic.Unmarshal(row.Accumulators, &acc); err != nil {
			return player.Player{}, fmt.Errorf("unmarshal accumulators: %w", err)
		}
	}

	var history []ratingSnapshotJSON
	if len(row.RatingHistory) > 0 {
		if err := sonic.Unmarshal(row.RatingHistory, &history); err != nil {
			return player.Player{}, fmt.Errorf("unmarshal rating history: %w", err)
		}
	}
	snapshots := make([]player.RatingSnapshot, 0, len(history))
	for _, snap := range history {
		snapshots = append(snapshots, player.RatingSnapshot{Date: snap.Date, Overall: snap.Overall})
	}

	return player.Player{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Position:  player.Position(row.Position),
		PlayStyle: player.PlayStyle(row.PlayStyle),
		Attributes: player.Attributes{
			Pace:      row.Pace,
			Shooting:  row.Shooting,
			Passing:   row.Passing,
			Defending: row.Defending,
		},
		Accumulators: player.Accumulators{
			Pace:      acc.Pace,
			Shooting:  acc.Shooting,
			Passing:   acc.Passing,
			Defending: acc.Defending,
		},
		Overall:       row.Overall,
		RatingHistory: snapshots,
		IsAdmin:       row.IsAdmin,
		PhotoURL:      row.PhotoURL,
		ShirtNumber:   row.ShirtNumber,
	}, nil
}
