package manager

import (
	"fmt"

	"gridsnake/game/types"
)

// StateManager owns the phase of a session and the guards on moving
// between phases. It has no timers; the caller arms and cancels them
// according to the transition it got back.
type StateManager struct {
	phase     types.Phase
	countdown int
	won       bool
	score     int
}

func NewStateManager() *StateManager {
	return &StateManager{phase: types.PhaseIdle}
}

func (sm *StateManager) Phase() types.Phase { return sm.phase }
func (sm *StateManager) Countdown() int     { return sm.countdown }
func (sm *StateManager) Won() bool          { return sm.won }

// Reset is valid from any phase.
func (sm *StateManager) Reset() {
	sm.phase = types.PhaseIdle
	sm.countdown = 0
	sm.won = false
	sm.score = 0
}

// BeginCountdown moves Idle to CountingDown(from).
func (sm *StateManager) BeginCountdown(from int) bool {
	if sm.phase != types.PhaseIdle {
		return false
	}
	if from < 1 {
		from = 1
	}
	sm.phase = types.PhaseCountingDown
	sm.countdown = from
	return true
}

// TickCountdown decrements the countdown and reports whether it reached
// zero, in which case the phase is now Running.
func (sm *StateManager) TickCountdown() bool {
	if sm.phase != types.PhaseCountingDown {
		return false
	}
	sm.countdown--
	if sm.countdown > 0 {
		return false
	}
	sm.countdown = 0
	sm.phase = types.PhaseRunning
	return true
}

func (sm *StateManager) Pause() bool {
	if sm.phase != types.PhaseRunning {
		return false
	}
	sm.phase = types.PhasePaused
	return true
}

func (sm *StateManager) Resume() bool {
	if sm.phase != types.PhasePaused {
		return false
	}
	sm.phase = types.PhaseRunning
	return true
}

// End is the single terminal transition for both a collision and a full board.
func (sm *StateManager) End(won bool, score int) bool {
	if sm.phase == types.PhaseGameOver {
		return false
	}
	sm.phase = types.PhaseGameOver
	sm.countdown = 0
	sm.won = won
	sm.score = score
	return true
}

// Status is the line shown under the board.
func (sm *StateManager) Status() string {
	switch sm.phase {
	case types.PhaseCountingDown:
		return fmt.Sprintf("Starting in %d...", sm.countdown)
	case types.PhaseRunning:
		return "Good luck!"
	case types.PhasePaused:
		return "Paused."
	case types.PhaseGameOver:
		if sm.won {
			return "You win! Board filled."
		}
		return fmt.Sprintf("Game over! Final score: %d. Click Retry to play again.", sm.score)
	default:
		return "Press Start to begin."
	}
}
