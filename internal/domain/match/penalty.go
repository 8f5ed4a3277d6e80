package match

// Kick is one attempt of a penalty shootout.
type Kick struct {
	TeamID string
	Scored bool
	Round  int
}

// Shootout tracks a penalty shootout on a knockout game that ended level.
// Kicks alternate strictly, home first.
type Shootout struct {
	HomeScore int
	AwayScore int
	Kicks     []Kick
}

// NewShootout initializes an empty shootout. The engine creates it lazily
// when normal time ends level on a knockout game.
func NewShootout() *Shootout {
	return &Shootout{Kicks: []Kick{}}
}

// MaxKicksFor returns the regulation kick count per side: five for a final,
// three for any other knockout game.
func MaxKicksFor(phase Phase) int {
	if phase == PhaseFinal {
		return 5
	}
	return 3
}

// HomeKicksNext reports which side the strict alternation expects to kick.
func (s *Shootout) HomeKicksNext() bool {
	return len(s.Kicks)%2 == 0
}

// RegisterKick appends a kick for the given side and updates the score.
// Callers must pass the side the alternation expects.
func (s *Shootout) RegisterKick(teamID string, homeTeamID string, scored bool) error {
	expectHome := s.HomeKicksNext()
	isHome := teamID == homeTeamID
	if isHome != expectHome {
		return ErrShootoutWrongSide
	}

	s.Kicks = append(s.Kicks, Kick{
		TeamID: teamID,
		Scored: scored,
		Round:  (len(s.Kicks) / 2) + 1,
	})
	if scored {
		if isHome {
			s.HomeScore++
		} else {
			s.AwayScore++
		}
	}
	return nil
}

// UndoLastKick removes the most recent kick, reverting its score effect.
func (s *Shootout) UndoLastKick(homeTeamID string) error {
	if len(s.Kicks) == 0 {
		return ErrShootoutNoKicks
	}

	last := s.Kicks[len(s.Kicks)-1]
	s.Kicks = s.Kicks[:len(s.Kicks)-1]
	if last.Scored {
		if last.TeamID == homeTeamID {
			s.HomeScore--
		} else {
			s.AwayScore--
		}
	}
	return nil
}

// DecidedAtKick returns the zero-based index of the kick that decided the
// shootout, or -1 when it is still open. The decision latches: replaying the
// history kick by kick, the first state where one side can no longer be
// caught decides the shootout, and later kicks never reopen it. Undo is the
// only way back.
func (s *Shootout) DecidedAtKick(maxKicks int) int {
	homeKicks, awayKicks := 0, 0
	homeScore, awayScore := 0, 0

	for i, kick := range s.Kicks {
		home := i%2 == 0
		if home {
			homeKicks++
			if kick.Scored {
				homeScore++
			}
		} else {
			awayKicks++
			if kick.Scored {
				awayScore++
			}
		}

		if homeKicks >= maxKicks && awayKicks >= maxKicks {
			// Sudden death: the first uneven pair decides.
			if homeKicks == awayKicks && homeScore != awayScore {
				return i
			}
			continue
		}

		homeRemaining := maxKicks - homeKicks
		awayRemaining := maxKicks - awayKicks
		if homeRemaining < 0 {
			homeRemaining = 0
		}
		if awayRemaining < 0 {
			awayRemaining = 0
		}
		if homeScore > awayScore+awayRemaining || awayScore > homeScore+homeRemaining {
			return i
		}
	}

	return -1
}

// Decided reports whether a winner exists.
func (s *Shootout) Decided(maxKicks int) bool {
	return s.DecidedAtKick(maxKicks) >= 0
}

// Winner returns the winning team id once the shootout is decided. The
// result is evaluated at the deciding kick, so kicks mistakenly appended
// afterwards cannot change it.
func (s *Shootout) Winner(homeTeamID, awayTeamID string, maxKicks int) (string, bool) {
	at := s.DecidedAtKick(maxKicks)
	if at < 0 {
		return "", false
	}

	homeScore, awayScore := 0, 0
	for i := 0; i <= at; i++ {
		if !s.Kicks[i].Scored {
			continue
		}
		if i%2 == 0 {
			homeScore++
		} else {
			awayScore++
		}
	}
	if homeScore > awayScore {
		return homeTeamID, true
	}
	return awayTeamID, true
}
