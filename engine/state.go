package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/physics"
)

// Phase is the match state machine position
type Phase uint32

const (
	PhasePlaying Phase = iota
	PhaseScoreAcknowledging
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseScoreAcknowledging:
		return "ScoreAcknowledging"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState holds scores and match flags with single-writer ownership
// Top and bottom scores are written only by their scoring task, the over flag only by the
// game-over task; any goroutine may read, values may lag by one tick
type GameState struct {
	top    atomic.Uint32
	bottom atomic.Uint32
	phase  atomic.Uint32
	over   atomic.Bool

	// running is open while the simulation runs, closed during the game-over sequence
	running *Gate

	mu      sync.RWMutex
	matchID uuid.UUID
}

// NewGameState creates a running state with zero scores and a fresh match id
func NewGameState() *GameState {
	return &GameState{
		running: NewGate(true),
		matchID: uuid.New(),
	}
}

// Score returns the score of side, zero for SideNone
func (s *GameState) Score(side physics.Side) uint32 {
	switch side {
	case physics.SideTop:
		return s.top.Load()
	case physics.SideBottom:
		return s.bottom.Load()
	default:
		return 0
	}
}

// Scores returns both scores
func (s *GameState) Scores() (top, bottom uint32) {
	return s.top.Load(), s.bottom.Load()
}

// addScore credits one goal to side, saturating at MaxScore, and returns the new score
func (s *GameState) addScore(side physics.Side) uint32 {
	var v *atomic.Uint32
	switch side {
	case physics.SideTop:
		v = &s.top
	case physics.SideBottom:
		v = &s.bottom
	default:
		return 0
	}
	for {
		old := v.Load()
		if old >= constants.MaxScore {
			return old
		}
		if v.CompareAndSwap(old, old+1) {
			return old + 1
		}
	}
}

func (s *GameState) resetScores() {
	s.top.Store(0)
	s.bottom.Store(0)
}

// Over reports whether the game-over sequence is active
func (s *GameState) Over() bool {
	return s.over.Load()
}

// setOver freezes or releases the simulation tasks
func (s *GameState) setOver(over bool) {
	s.over.Store(over)
	if over {
		s.running.Close()
	} else {
		s.running.Open()
	}
}

// WaitRunning blocks while the game-over sequence is active
func (s *GameState) WaitRunning(ctx context.Context) error {
	return s.running.Wait(ctx)
}

func (s *GameState) Phase() Phase {
	return Phase(s.phase.Load())
}

func (s *GameState) setPhase(p Phase) {
	s.phase.Store(uint32(p))
}

// MatchID identifies the current match; it changes when a new match starts
func (s *GameState) MatchID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matchID
}

func (s *GameState) newMatch() uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.matchID = id
	s.mu.Unlock()
	return id
}
