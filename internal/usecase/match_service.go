package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/peladahub/pelada/internal/domain/match"
	"github.com/peladahub/pelada/internal/domain/player"
	"github.com/peladahub/pelada/internal/domain/rating"
	"github.com/peladahub/pelada/internal/domain/schedule"
	idgen "github.com/peladahub/pelada/internal/platform/id"
)

type RegisterGoalInput struct {
	GameID   string
	TeamID   string
	ScorerID string
	AssistID string
	Minute   int
}

type EditGoalInput struct {
	GoalID   string
	ScorerID string
	AssistID string
}

// MatchService is the tournament engine. It owns every lifecycle transition
// of events and games, goal registration, penalty shootouts, knockout
// seeding and the rating settlement that runs when an event finishes.
type MatchService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	idGen      idgen.Generator
}

func NewMatchService(matchRepo match.Repository, playerRepo player.Repository, idGen idgen.Generator) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) GetByID(ctx context.Context, id string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetByID")
	defer span.End()

	return s.load(ctx, id)
}

// Publish moves a draft event to OPEN and generates its full fixture list.
func (s *MatchService) Publish(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Publish")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if m.Status != match.StatusDraft {
		return match.Match{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrMatchNotDraft)
	}

	teamIDs := make([]string, 0, len(m.Teams))
	for _, t := range m.Teams {
		teamIDs = append(teamIDs, t.ID)
	}
	games, err := schedule.BuildGames(m.Type, teamIDs)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for i := range games {
		gameID, err := s.idGen.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate game id: %w", err)
		}
		games[i].ID = gameID
		games[i].MatchID = m.ID
	}

	if err := s.matchRepo.ReplaceGames(ctx, m.ID, games); err != nil {
		return match.Match{}, fmt.Errorf("store fixtures: %w", err)
	}
	if err := s.matchRepo.UpdateStatus(ctx, m.ID, match.StatusOpen); err != nil {
		return match.Match{}, fmt.Errorf("open match: %w", err)
	}

	m.Games = games
	m.Status = match.StatusOpen
	return m, nil
}

// Cancel moves an OPEN event back to draft. Games and goals are dropped;
// this is deliberate data loss so the operator can redraft and republish.
func (s *MatchService) Cancel(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Cancel")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if m.Status != match.StatusOpen {
		return match.Match{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrMatchNotOpen)
	}

	if err := s.matchRepo.ClearGoals(ctx, m.ID); err != nil {
		return match.Match{}, fmt.Errorf("clear goals: %w", err)
	}
	if err := s.matchRepo.ReplaceGames(ctx, m.ID, nil); err != nil {
		return match.Match{}, fmt.Errorf("clear games: %w", err)
	}
	if err := s.matchRepo.UpdateStatus(ctx, m.ID, match.StatusDraft); err != nil {
		return match.Match{}, fmt.Errorf("reopen draft: %w", err)
	}

	m.Games = nil
	m.Goals = nil
	m.Status = match.StatusDraft
	return m, nil
}

// StartGame transitions one game to LIVE. At most one game per event may be
// live; the check runs against current state on every call.
func (s *MatchService) StartGame(ctx context.Context, matchID, gameID string) (match.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.StartGame")
	defer span.End()

	m, g, err := s.loadGame(ctx, matchID, gameID)
	if err != nil {
		return match.Game{}, err
	}
	if m.Status != match.StatusOpen {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrMatchNotOpen)
	}
	if g.Status != match.GameWaiting {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrGameNotWaiting)
	}
	if !g.Resolved() {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrTeamsNotResolved)
	}
	if live, ok := m.LiveGame(); ok {
		return match.Game{}, fmt.Errorf("%w: %v (game %s)", ErrConflict, match.ErrGameAlreadyLive, live.ID)
	}

	g.Status = match.GameLive
	if err := s.matchRepo.UpdateGame(ctx, m.ID, g); err != nil {
		return match.Game{}, fmt.Errorf("start game: %w", err)
	}
	return g, nil
}

// EndGame finishes a live game. A knockout game that is level after normal
// time cannot end until its penalty shootout has a decided winner. Ending
// the last game of a phase seeds the next phase's TBD slots as a side
// effect.
func (s *MatchService) EndGame(ctx context.Context, matchID, gameID string) (match.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.EndGame")
	defer span.End()

	m, g, err := s.loadGame(ctx, matchID, gameID)
	if err != nil {
		return match.Game{}, err
	}
	if g.Status != match.GameLive {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrGameNotLive)
	}
	if g.Phase.IsKnockout() && g.LevelAfterNormalTime() {
		maxKicks := match.MaxKicksFor(g.Phase)
		if g.Shootout == nil || !g.Shootout.Decided(maxKicks) {
			return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrShootoutUndecided)
		}
	}

	g.Status = match.GameFinished
	if err := s.matchRepo.UpdateGame(ctx, m.ID, g); err != nil {
		return match.Game{}, fmt.Errorf("end game: %w", err)
	}
	for i := range m.Games {
		if m.Games[i].ID == g.ID {
			m.Games[i] = g
		}
	}

	if err := s.seedNextPhase(ctx, m, g.Phase); err != nil {
		return match.Game{}, err
	}
	return g, nil
}

// seedNextPhase resolves TBD slots once the phase that feeds them is fully
// finished. Seeding writes each slot exactly once; resolved games are left
// alone on later calls.
func (s *MatchService) seedNextPhase(ctx context.Context, m match.Match, justFinished match.Phase) error {
	if m.Type != match.TypeQuadrangular {
		return nil
	}

	switch justFinished {
	case match.PhaseOne:
		if !m.PhaseFinished(match.PhaseOne) || !hasUnresolved(m, match.PhaseTwo) {
			return nil
		}
		m.Games = schedule.SeedPhaseTwo(m.Games, match.ComputeStandings(m))
	case match.PhaseTwo:
		if !m.PhaseFinished(match.PhaseTwo) {
			return nil
		}
		if !hasUnresolved(m, match.PhaseThirdPlace) && !hasUnresolved(m, match.PhaseFinal) {
			return nil
		}
		standings, ready := s.knockoutOrder(m)
		if !ready {
			// Second and third are level on points: the medal games stay
			// TBD until the operator-created tie-break game is played.
			return nil
		}
		m.Games = schedule.SeedKnockout(m.Games, standings)
	default:
		return nil
	}

	if err := s.matchRepo.ReplaceGames(ctx, m.ID, m.Games); err != nil {
		return fmt.Errorf("seed next phase: %w", err)
	}
	return nil
}

// knockoutOrder returns the combined PHASE_1 + PHASE_2 table used to seed
// the medal games. When 2nd and 3rd place finish level on points the order
// is not ready until a finished tie-break game picks the runner-up.
func (s *MatchService) knockoutOrder(m match.Match) ([]match.Standing, bool) {
	standings := match.ComputeStandings(m)
	if len(standings) < 4 {
		return nil, false
	}
	if standings[1].Points != standings[2].Points {
		return standings, true
	}

	winner, ok := tieBreakWinner(m)
	if !ok {
		return nil, false
	}
	if standings[2].TeamID == winner {
		standings[1], standings[2] = standings[2], standings[1]
	}
	return standings, true
}

func tieBreakWinner(m match.Match) (string, bool) {
	for _, g := range m.Games {
		if !g.TieBreak || g.Status != match.GameFinished || g.Shootout == nil {
			continue
		}
		return g.Shootout.Winner(g.HomeTeamID, g.AwayTeamID, match.MaxKicksFor(g.Phase))
	}
	return "", false
}

func hasUnresolved(m match.Match, phase match.Phase) bool {
	for _, g := range m.GamesInPhase(phase) {
		if !g.Resolved() {
			return true
		}
	}
	return false
}

// CreateTieBreakGame appends a penalty-only game between the 2nd and 3rd
// placed teams of a quadrangular event. Allowed only while those two are
// level on points after PHASE_2 and the medal games are still unseeded.
func (s *MatchService) CreateTieBreakGame(ctx context.Context, matchID string) (match.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.CreateTieBreakGame")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return match.Game{}, err
	}
	if m.Status != match.StatusOpen {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrMatchNotOpen)
	}
	if m.Type != match.TypeQuadrangular || !m.PhaseFinished(match.PhaseTwo) {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrTieBreakNotAllowed)
	}
	if !hasUnresolved(m, match.PhaseFinal) {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrTieBreakNotAllowed)
	}
	for _, g := range m.Games {
		if g.TieBreak {
			return match.Game{}, fmt.Errorf("%w: tie-break game already exists", ErrConflict)
		}
	}

	standings := match.ComputeStandings(m)
	if len(standings) < 4 || standings[1].Points != standings[2].Points {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrTieBreakNotAllowed)
	}

	gameID, err := s.idGen.NewID()
	if err != nil {
		return match.Game{}, fmt.Errorf("generate game id: %w", err)
	}
	maxSeq := 0
	for _, g := range m.Games {
		if g.Sequence > maxSeq {
			maxSeq = g.Sequence
		}
	}
	g := match.Game{
		ID:         gameID,
		MatchID:    m.ID,
		HomeTeamID: standings[1].TeamID,
		AwayTeamID: standings[2].TeamID,
		Status:     match.GameWaiting,
		Phase:      match.PhaseTwo,
		Sequence:   maxSeq + 1,
		TieBreak:   true,
	}
	m.Games = append(m.Games, g)

	if err := s.matchRepo.ReplaceGames(ctx, m.ID, m.Games); err != nil {
		return match.Game{}, fmt.Errorf("store tie-break game: %w", err)
	}
	return g, nil
}

// RegisterGoal appends a goal to a live game and bumps the scoring team's
// score. Submitting the same goal twice creates two records; the boundary
// must debounce.
func (s *MatchService) RegisterGoal(ctx context.Context, matchID string, input RegisterGoalInput) (match.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.RegisterGoal")
	defer span.End()

	m, g, err := s.loadGame(ctx, matchID, input.GameID)
	if err != nil {
		return match.Goal{}, err
	}
	if g.Status != match.GameLive {
		return match.Goal{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrGameNotLive)
	}
	if input.TeamID != g.HomeTeamID && input.TeamID != g.AwayTeamID {
		return match.Goal{}, fmt.Errorf("%w: team %s is not playing game %s", ErrInvalidInput, input.TeamID, g.ID)
	}

	team, ok := m.TeamByID(input.TeamID)
	if !ok {
		return match.Goal{}, fmt.Errorf("%w: team %s", ErrNotFound, input.TeamID)
	}
	if !team.HasPlayer(input.ScorerID) {
		return match.Goal{}, fmt.Errorf("%w: scorer %s is not on team %s", ErrInvalidInput, input.ScorerID, team.ID)
	}
	if input.AssistID != "" {
		if input.AssistID == input.ScorerID {
			return match.Goal{}, fmt.Errorf("%w: scorer cannot assist their own goal", ErrInvalidInput)
		}
		if !team.HasPlayer(input.AssistID) {
			return match.Goal{}, fmt.Errorf("%w: assist %s is not on team %s", ErrInvalidInput, input.AssistID, team.ID)
		}
	}
	if input.Minute < 0 {
		return match.Goal{}, fmt.Errorf("%w: minute cannot be negative", ErrInvalidInput)
	}

	goalID, err := s.idGen.NewID()
	if err != nil {
		return match.Goal{}, fmt.Errorf("generate goal id: %w", err)
	}
	goal := match.Goal{
		ID:       goalID,
		MatchID:  m.ID,
		GameID:   g.ID,
		TeamID:   input.TeamID,
		ScorerID: input.ScorerID,
		AssistID: input.AssistID,
		Minute:   input.Minute,
	}
	if err := s.matchRepo.InsertGoal(ctx, m.ID, goal); err != nil {
		return match.Goal{}, fmt.Errorf("insert goal: %w", err)
	}

	if input.TeamID == g.HomeTeamID {
		g.HomeScore++
	} else {
		g.AwayScore++
	}
	if err := s.matchRepo.UpdateGame(ctx, m.ID, g); err != nil {
		return match.Goal{}, fmt.Errorf("update score: %w", err)
	}
	return goal, nil
}

// EditGoal corrects who scored or assisted an existing goal. Scores never
// change here; only attribution does.
func (s *MatchService) EditGoal(ctx context.Context, matchID string, input EditGoalInput) (match.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.EditGoal")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return match.Goal{}, err
	}
	if m.Status == match.StatusFinished {
		return match.Goal{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrMatchFinished)
	}

	var goal match.Goal
	found := false
	for _, existing := range m.Goals {
		if existing.ID == input.GoalID {
			goal = existing
			found = true
			break
		}
	}
	if !found {
		return match.Goal{}, fmt.Errorf("%w: goal %s", ErrNotFound, input.GoalID)
	}

	team, ok := m.TeamByID(goal.TeamID)
	if !ok {
		return match.Goal{}, fmt.Errorf("%w: team %s", ErrNotFound, goal.TeamID)
	}
	if input.ScorerID != "" {
		if !team.HasPlayer(input.ScorerID) {
			return match.Goal{}, fmt.Errorf("%w: scorer %s is not on team %s", ErrInvalidInput, input.ScorerID, team.ID)
		}
		goal.ScorerID = input.ScorerID
	}
	if input.AssistID != "" {
		if input.AssistID == goal.ScorerID {
			return match.Goal{}, fmt.Errorf("%w: scorer cannot assist their own goal", ErrInvalidInput)
		}
		if !team.HasPlayer(input.AssistID) {
			return match.Goal{}, fmt.Errorf("%w: assist %s is not on team %s", ErrInvalidInput, input.AssistID, team.ID)
		}
		goal.AssistID = input.AssistID
	}

	if err := s.matchRepo.UpdateGoal(ctx, m.ID, goal); err != nil {
		return match.Goal{}, fmt.Errorf("update goal: %w", err)
	}
	return goal, nil
}

// PenaltyKick records one shootout attempt for a knockout game that is
// level after normal time. The shootout initializes lazily on the first
// kick; strict home/away alternation is enforced per kick.
func (s *MatchService) PenaltyKick(ctx context.Context, matchID, gameID, teamID string, scored bool) (match.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.PenaltyKick")
	defer span.End()

	m, g, err := s.loadGame(ctx, matchID, gameID)
	if err != nil {
		return match.Game{}, err
	}
	if g.Status != match.GameLive {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrGameNotLive)
	}
	if !g.Phase.IsKnockout() || !g.LevelAfterNormalTime() {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrShootoutNotLevel)
	}
	if teamID != g.HomeTeamID && teamID != g.AwayTeamID {
		return match.Game{}, fmt.Errorf("%w: team %s is not playing game %s", ErrInvalidInput, teamID, g.ID)
	}

	if g.Shootout == nil {
		g.Shootout = match.NewShootout()
	}
	maxKicks := match.MaxKicksFor(g.Phase)
	if g.Shootout.Decided(maxKicks) {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrShootoutDecided)
	}
	if err := g.Shootout.RegisterKick(teamID, g.HomeTeamID, scored); err != nil {
		return match.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.UpdateGame(ctx, m.ID, g); err != nil {
		return match.Game{}, fmt.Errorf("store penalty kick: %w", err)
	}
	return g, nil
}

// UndoPenaltyKick removes the most recent shootout attempt. This is the
// only way to reopen a decided shootout.
func (s *MatchService) UndoPenaltyKick(ctx context.Context, matchID, gameID string) (match.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.UndoPenaltyKick")
	defer span.End()

	m, g, err := s.loadGame(ctx, matchID, gameID)
	if err != nil {
		return match.Game{}, err
	}
	if g.Status != match.GameLive || g.Shootout == nil {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrGameNotLive)
	}
	if err := g.Shootout.UndoLastKick(g.HomeTeamID); err != nil {
		return match.Game{}, fmt.Errorf("%w: %v", ErrConflict, err)
	}

	if err := s.matchRepo.UpdateGame(ctx, m.ID, g); err != nil {
		return match.Game{}, fmt.Errorf("store penalty undo: %w", err)
	}
	return g, nil
}

// Standings returns the current points table of an event.
func (s *MatchService) Standings(ctx context.Context, matchID string) ([]match.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Standings")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return match.ComputeStandings(m), nil
}

// ChampionName returns the display champion. A quadrangular event with a
// finished final names the final's winner; everything else falls back to
// the standings leader. The rating settlement deliberately uses only the
// standings leader, so the two can disagree.
func (s *MatchService) ChampionName(ctx context.Context, matchID string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ChampionName")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return "", err
	}

	if m.Type == match.TypeQuadrangular {
		for _, g := range m.GamesInPhase(match.PhaseFinal) {
			if g.Status != match.GameFinished {
				continue
			}
			winnerID := g.HomeTeamID
			switch {
			case g.AwayScore > g.HomeScore:
				winnerID = g.AwayTeamID
			case g.HomeScore == g.AwayScore && g.Shootout != nil:
				if id, ok := g.Shootout.Winner(g.HomeTeamID, g.AwayTeamID, match.MaxKicksFor(g.Phase)); ok {
					winnerID = id
				}
			}
			if team, ok := m.TeamByID(winnerID); ok {
				return team.Name, nil
			}
		}
	}

	standings := match.ComputeStandings(m)
	if len(standings) == 0 {
		return "", fmt.Errorf("%w: match %s has no standings yet", ErrConflict, matchID)
	}
	team, ok := m.TeamByID(standings[0].TeamID)
	if !ok {
		return "", fmt.Errorf("%w: team %s", ErrNotFound, standings[0].TeamID)
	}
	return team.Name, nil
}

// SetChampionPhoto stores the celebratory photo for a finished event.
func (s *MatchService) SetChampionPhoto(ctx context.Context, matchID, photoURL string) error {
	ctx, span := startUsecaseSpan(ctx, "MatchService.SetChampionPhoto")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return err
	}
	photoURL = strings.TrimSpace(photoURL)
	if photoURL == "" {
		return fmt.Errorf("%w: photo url is required", ErrInvalidInput)
	}
	if err := s.matchRepo.UpdateChampionPhoto(ctx, m.ID, photoURL); err != nil {
		return fmt.Errorf("store champion photo: %w", err)
	}
	return nil
}

// Finish closes an OPEN event once every game is done and settles each
// player's performance into their rating accumulators. Attributes do not
// move here; the monthly settlement converts the accumulators later.
func (s *MatchService) Finish(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Finish")
	defer span.End()

	m, err := s.load(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if m.Status != match.StatusOpen {
		return match.Match{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrMatchNotOpen)
	}
	for _, g := range m.Games {
		if g.Status != match.GameFinished {
			return match.Match{}, fmt.Errorf("%w: %v", ErrConflict, match.ErrGamesNotFinished)
		}
	}

	updated, err := s.settleRatings(ctx, m)
	if err != nil {
		return match.Match{}, err
	}
	if len(updated) > 0 {
		if err := s.playerRepo.BulkUpdate(ctx, updated); err != nil {
			return match.Match{}, fmt.Errorf("store rating accumulators: %w", err)
		}
	}

	if err := s.matchRepo.UpdateStatus(ctx, m.ID, match.StatusFinished); err != nil {
		return match.Match{}, fmt.Errorf("finish match: %w", err)
	}
	m.Status = match.StatusFinished
	return m, nil
}

// settleRatings computes every participant's per-event totals and adds the
// resulting fractional deltas to their accumulators. The champion for
// rating purposes is the standings leader, never the final's on-field
// winner.
func (s *MatchService) settleRatings(ctx context.Context, m match.Match) ([]player.Player, error) {
	standings := match.ComputeStandings(m)
	championTeam, lastPlaceTeam := "", ""
	if len(standings) > 0 {
		championTeam = standings[0].TeamID
		lastPlaceTeam = standings[len(standings)-1].TeamID
	}

	totalsByPlayer := make(map[string]*rating.MatchTotals)
	playerTeam := make(map[string]string)
	for _, t := range m.Teams {
		for _, p := range t.Players {
			totals := &rating.MatchTotals{
				Champion:  t.ID == championTeam,
				LastPlace: t.ID == lastPlaceTeam,
			}
			totalsByPlayer[p.ID] = totals
			playerTeam[p.ID] = t.ID
		}
	}

	for _, g := range m.Games {
		if g.Status != match.GameFinished || g.TieBreak {
			continue
		}
		for playerID, totals := range totalsByPlayer {
			teamID := playerTeam[playerID]
			var teamScore, oppScore int
			switch teamID {
			case g.HomeTeamID:
				teamScore, oppScore = g.HomeScore, g.AwayScore
			case g.AwayTeamID:
				teamScore, oppScore = g.AwayScore, g.HomeScore
			default:
				continue
			}

			totals.Games++
			if teamScore > oppScore {
				totals.Wins++
			} else if teamScore < oppScore {
				totals.Losses++
			}
			if oppScore == 0 {
				totals.CleanSheets++
			}
			totals.GoalsConceded += oppScore
		}
	}
	for _, goal := range m.Goals {
		if totals, ok := totalsByPlayer[goal.ScorerID]; ok {
			totals.Goals++
		}
		if goal.AssistID != "" {
			if totals, ok := totalsByPlayer[goal.AssistID]; ok {
				totals.Assists++
			}
		}
	}

	ids := make([]string, 0, len(totalsByPlayer))
	for id := range totalsByPlayer {
		ids = append(ids, id)
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}

	updated := make([]player.Player, 0, len(players))
	for _, p := range players {
		totals, ok := totalsByPlayer[p.ID]
		if !ok || totals.Games == 0 {
			continue
		}
		d := rating.MatchDeltas(p.Position, *totals)
		p.Accumulators = p.Accumulators.Add(player.Accumulators{
			Pace:      d.Pace,
			Shooting:  d.Shooting,
			Passing:   d.Passing,
			Defending: d.Defending,
		})
		updated = append(updated, p)
	}
	return updated, nil
}

func (s *MatchService) load(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchService) loadGame(ctx context.Context, matchID, gameID string) (match.Match, match.Game, error) {
	m, err := s.load(ctx, matchID)
	if err != nil {
		return match.Match{}, match.Game{}, err
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return match.Match{}, match.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	g, ok := m.GameByID(gameID)
	if !ok {
		return match.Match{}, match.Game{}, fmt.Errorf("%w: game %s", ErrNotFound, gameID)
	}
	return m, g, nil
}
