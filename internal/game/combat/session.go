package combat

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeonsim/internal/game/enemy"
	"github.com/cory-johannsen/dungeonsim/internal/game/hero"
)

// DefaultMaxTurns is the turn ceiling used when no explicit ceiling is
// configured. Reaching it is a normal terminal outcome, not an error.
const DefaultMaxTurns = 50

// Session holds the live state of one battle between exactly one hero and
// one enemy. Sessions are single-use: construct, Run once, then read the
// result and events.
type Session struct {
	ID       uuid.UUID
	Hero     *hero.Hero
	Enemy    *enemy.Enemy
	MaxTurns int

	turn   int
	state  State
	events []Event
	src    Source
	logger *zap.Logger
	now    func() time.Time
}

// NewSession creates a battle session for h versus e drawing randomness
// from src. maxTurns <= 0 selects DefaultMaxTurns; a nil logger disables
// diagnostics.
//
// Precondition: h, e, and src must be non-nil.
// Postcondition: Returns a session in StateNotStarted with a fresh ID.
func NewSession(h *hero.Hero, e *enemy.Enemy, src Source, maxTurns int, logger *zap.Logger) *Session {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ID:       uuid.New(),
		Hero:     h,
		Enemy:    e,
		MaxTurns: maxTurns,
		state:    StateNotStarted,
		src:      src,
		logger:   logger,
		now:      time.Now,
	}
}

// State returns the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// Turn returns the number of completed turns.
func (s *Session) Turn() int { return s.turn }

// Events returns a copy of the ordered narration log.
//
// Postcondition: The returned slice is safe to retain; mutations do not
// affect the session.
func (s *Session) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// logEvent appends a narrated event stamped with the current turn.
func (s *Session) logEvent(message string) {
	s.events = append(s.events, Event{Turn: s.turn, Time: s.now(), Message: message})
}

// Run executes the battle to completion and returns the result.
//
// Turn ordering is fixed: the hero always acts first; a kill ends the turn
// immediately with no retaliation. The turn ceiling produces StateTimeout
// only when neither combatant died.
//
// Precondition: the session must be in StateNotStarted; Run must be called
// at most once.
// Postcondition: State().Terminal() is true; Result.Victory is true iff the
// terminal state is StateHeroVictory; at most MaxTurns turns ran.
func (s *Session) Run() Result {
	if s.state != StateNotStarted {
		panic("combat: Session.Run called more than once")
	}
	s.state = StateInProgress

	s.logEvent("=== BATTLE START ===")
	s.logEvent(fmt.Sprintf("%s the %s (Lv.%d) vs %s (Lv.%d)",
		s.Hero.Name, s.Hero.Class.Name, s.Hero.Level, s.Enemy.Name, s.Enemy.Level))
	s.logEvent(fmt.Sprintf("Hero HP: %d | Attack: %d | Defense: %d",
		s.Hero.MaxHealth, s.Hero.Attack, s.Hero.Defense))
	s.logEvent(fmt.Sprintf("Enemy HP: %d | Attack: %d | Defense: %d",
		s.Enemy.MaxHealth, s.Enemy.Attack, s.Enemy.Defense))
	if s.Hero.Hardcore {
		s.logEvent("HARDCORE MODE ACTIVE - Enemy is stronger!")
	}
	s.logEvent("")

	for s.Hero.Alive() && s.Enemy.Alive() && s.turn < s.MaxTurns {
		s.turn++
		s.runTurn()
	}

	if s.state == StateInProgress {
		// Neither side died within the ceiling.
		s.logEvent("Battle timeout - Enemy escaped!")
		s.state = StateTimeout
	} else {
		victory := s.state == StateHeroVictory
		label := "DEFEAT!"
		if victory {
			label = "VICTORY!"
		}
		s.logEvent(fmt.Sprintf("=== BATTLE END - %s ===", label))
	}

	s.logger.Info("battle finished",
		zap.String("session_id", s.ID.String()),
		zap.Stringer("state", s.state),
		zap.Int("turns", s.turn),
		zap.Int("hero_health", s.Hero.ClampedHealth()),
		zap.Int("enemy_health", s.Enemy.ClampedHealth()),
	)

	return Result{
		Victory: s.state == StateHeroVictory,
		State:   s.state,
		Turns:   s.turn,
	}
}

// runTurn resolves one hero-then-enemy action cycle and updates state when a
// combatant dies.
func (s *Session) runTurn() {
	heroHit := ResolveHeroAttack(s.Hero, s.Enemy, s.src)
	critNote := ""
	if heroHit.Critical {
		critNote = " CRITICAL HIT!"
	}
	s.logEvent(fmt.Sprintf("%s attacks for %d damage (dealt %d after defense)%s",
		s.Hero.Name, heroHit.Raw, heroHit.Dealt, critNote))
	s.logEvent(fmt.Sprintf("Enemy HP: %d/%d", s.Enemy.ClampedHealth(), s.Enemy.MaxHealth))

	if !s.Enemy.Alive() {
		s.logEvent(fmt.Sprintf("%s has been defeated!", s.Enemy.Name))
		s.state = StateHeroVictory
		s.debugTurn(heroHit, AttackResult{})
		return
	}

	enemyHit := ResolveEnemyAttack(s.Enemy, s.Hero, s.src)
	if enemyHit.Missed {
		s.logEvent(fmt.Sprintf("%s attacks but MISSES!", s.Enemy.Name))
	} else {
		s.logEvent(fmt.Sprintf("%s attacks for %d damage (dealt %d after defense)",
			s.Enemy.Name, enemyHit.Raw, enemyHit.Dealt))
	}
	s.logEvent(fmt.Sprintf("Hero HP: %d/%d", s.Hero.ClampedHealth(), s.Hero.MaxHealth))
	s.logEvent("")

	if !s.Hero.Alive() {
		s.logEvent(fmt.Sprintf("%s has been defeated...", s.Hero.Name))
		s.state = StateEnemyVictory
	}
	s.debugTurn(heroHit, enemyHit)
}

func (s *Session) debugTurn(heroHit, enemyHit AttackResult) {
	s.logger.Debug("turn resolved",
		zap.String("session_id", s.ID.String()),
		zap.Int("turn", s.turn),
		zap.Int("hero_dealt", heroHit.Dealt),
		zap.Bool("hero_critical", heroHit.Critical),
		zap.Int("enemy_dealt", enemyHit.Dealt),
		zap.Bool("enemy_missed", enemyHit.Missed),
		zap.Int("hero_health", s.Hero.CurrentHealth),
		zap.Int("enemy_health", s.Enemy.CurrentHealth),
	)
}
