package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	qb "github.com/peladahub/pelada/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m, err := r.assemble(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	m, err := r.assemble(ctx, row)
	if err != nil {
		return match.Match{}, false, err
	}
	return m, true, nil
}

// assemble hydrates the nested teams, rosters, games and goals of one event.
func (r *MatchRepository) assemble(ctx context.Context, row matchTableModel) (match.Match, error) {
	teams, err := r.loadTeams(ctx, row.ID)
	if err != nil {
		return match.Match{}, err
	}
	games, err := r.loadGames(ctx, row.ID)
	if err != nil {
		return match.Match{}, err
	}
	goals, err := r.loadGoals(ctx, row.ID)
	if err != nil {
		return match.Match{}, err
	}

	return match.Match{
		ID:               row.ID,
		Date:             row.MatchDate,
		Location:         row.Location,
		Type:             match.Type(row.MatchType),
		Status:           match.Status(row.Status),
		Teams:            teams,
		Games:            games,
		Goals:            goals,
		ChampionPhotoURL: row.ChampionPhotoURL,
	}, nil
}

func (r *MatchRepository) loadTeams(ctx context.Context, matchID string) ([]match.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var teamRows []teamTableModel
	if err := r.db.SelectContext(ctx, &teamRows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	rosters, err := r.loadRosters(ctx, matchID)
	if err != nil {
		return nil, err
	}

	teams := make([]match.Team, 0, len(teamRows))
	for _, row := range teamRows {
		t, err := teamFromRow(row, rosters[row.ID])
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func (r *MatchRepository) loadRosters(ctx context.Context, matchID string) (map[string][]player.Player, error) {
	query, args, err := qb.Select("tp.team_id", "p.*").
		From("team_players tp JOIN players p ON p.id = tp.player_id").
		Where(qb.Eq("tp.match_id", matchID)).
		OrderBy("tp.team_id", "tp.seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list rosters query: %w", err)
	}

	var rows []rosterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}

	rosters := make(map[string][]player.Player, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row.playerTableModel)
		if err != nil {
			return nil, err
		}
		rosters[row.TeamID] = append(rosters[row.TeamID], p)
	}
	return rosters, nil
}

func (r *MatchRepository) loadGames(ctx context.Context, matchID string) ([]match.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("sequence").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	games := make([]match.Game, 0, len(rows))
	for _, row := range rows {
		g, err := gameFromRow(row)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

func (r *MatchRepository) loadGoals(ctx context.Context, matchID string) ([]match.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goals query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]match.Goal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, goalFromRow(row))
	}
	return goals, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create match: %w", err)
	}
	defer tx.Rollback()

	query, args, err := qb.InsertModel("matches", matchToInsertModel(m), "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("match %s already exists: %w", m.ID, err)
		}
		return fmt.Errorf("insert match: %w", err)
	}

	if err := insertTeams(ctx, tx, m.ID, m.Teams); err != nil {
		return err
	}
	if err := insertGames(ctx, tx, m.Games); err != nil {
		return err
	}
	for _, goal := range m.Goals {
		if err := insertGoal(ctx, tx, goal); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create match: %w", err)
	}
	return nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, id string, status match.Status) error {
	return r.updateMatchColumn(ctx, id, "status", string(status))
}

func (r *MatchRepository) UpdateChampionPhoto(ctx context.Context, id, photoURL string) error {
	return r.updateMatchColumn(ctx, id, "champion_photo_url", photoURL)
}

func (r *MatchRepository) updateMatchColumn(ctx context.Context, id, column string, value any) error {
	query, args, err := qb.Update("matches").
		Set(column, value).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match %s query: %w", column, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match %s: %w", column, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update match rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update match: %s not found", id)
	}
	return nil
}

func (r *MatchRepository) UpdateTeams(ctx context.Context, id string, teams []match.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update teams: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"team_players", "teams"} {
		query, args, err := qb.DeleteFrom(table).
			Where(qb.Eq("match_id", id)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	if err := insertTeams(ctx, tx, id, teams); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update teams: %w", err)
	}
	return nil
}

func (r *MatchRepository) ReplaceGames(ctx context.Context, id string, games []match.Game) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace games: %w", err)
	}
	defer tx.Rollback()

	query, args, err := qb.DeleteFrom("games").
		Where(qb.Eq("match_id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete games query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete games: %w", err)
	}

	if err := insertGames(ctx, tx, games); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace games: %w", err)
	}
	return nil
}

func (r *MatchRepository) UpdateGame(ctx context.Context, matchID string, game match.Game) error {
	model, err := gameToTableModel(game)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("games").
		Set("home_team_id", model.HomeTeamID).
		Set("away_team_id", model.AwayTeamID).
		Set("home_score", model.HomeScore).
		Set("away_score", model.AwayScore).
		Set("status", model.Status).
		Set("shootout", model.Shootout).
		Where(
			qb.Eq("id", game.ID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update game rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update game: %s not found in match %s", game.ID, matchID)
	}
	return nil
}

func (r *MatchRepository) InsertGoal(ctx context.Context, matchID string, goal match.Goal) error {
	goal.MatchID = matchID
	if err := insertGoal(ctx, r.db, goal); err != nil {
		return err
	}
	return nil
}

func (r *MatchRepository) UpdateGoal(ctx context.Context, matchID string, goal match.Goal) error {
	query, args, err := qb.Update("goals").
		Set("scorer_id", goal.ScorerID).
		Set("assist_id", goal.AssistID).
		Where(
			qb.Eq("id", goal.ID),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update goal query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update goal rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update goal: %s not found in match %s", goal.ID, matchID)
	}
	return nil
}

func (r *MatchRepository) ClearGoals(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("goals").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear goals query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear goals: %w", err)
	}
	return nil
}

func insertTeams(ctx context.Context, tx sqlx.ExecerContext, matchID string, teams []match.Team) error {
	for i, t := range teams {
		t.MatchID = matchID
		model, err := teamToTableModel(t, i)
		if err != nil {
			return err
		}

		query, args, err := qb.InsertModel("teams", model, "")
		if err != nil {
			return fmt.Errorf("build insert team query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert team %s: %w", t.ID, err)
		}

		for j, p := range t.Players {
			member := teamPlayerInsertModel{
				TeamID:   t.ID,
				MatchID:  matchID,
				PlayerID: p.ID,
				Seq:      j,
			}
			query, args, err := qb.InsertModel("team_players", member, "")
			if err != nil {
				return fmt.Errorf("build insert team player query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert team player %s: %w", p.ID, err)
			}
		}
	}
	return nil
}

func insertGames(ctx context.Context, tx sqlx.ExecerContext, games []match.Game) error {
	for _, g := range games {
		model, err := gameToTableModel(g)
		if err != nil {
			return err
		}
		query, args, err := qb.InsertModel("games", model, "")
		if err != nil {
			return fmt.Errorf("build insert game query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert game %s: %w", g.ID, err)
		}
	}
	return nil
}

func insertGoal(ctx context.Context, tx sqlx.ExecerContext, goal match.Goal) error {
	query, args, err := qb.InsertModel("goals", goalToTableModel(goal), "")
	if err != nil {
		return fmt.Errorf("build insert goal query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert goal %s: %w", goal.ID, err)
	}
	return nil
}
