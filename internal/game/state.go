// Package game provides the hangman engine: rounds, turn rotation and scoring.
package game

// Phase represents where the engine is in a game.
type Phase int

const (
	// PhaseAwaitingGuess - the current player's round is pending
	PhaseAwaitingGuess Phase = iota
	// PhaseRevealing - the round just ended; word and definition are shown
	PhaseRevealing
	// PhaseGameOver - every player has played their round
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingGuess:
		return "awaiting_guess"
	case PhaseRevealing:
		return "revealing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is the state of a single round.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome can no longer change.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// GuessResult describes what a single guess did.
type GuessResult int

const (
	GuessCorrect GuessResult = iota
	GuessIncorrect
	// GuessAlreadyGuessed is a no-op, not an error.
	GuessAlreadyGuessed
)

// String returns a human-readable result name.
func (g GuessResult) String() string {
	switch g {
	case GuessCorrect:
		return "correct"
	case GuessIncorrect:
		return "incorrect"
	case GuessAlreadyGuessed:
		return "already_guessed"
	default:
		return "unknown"
	}
}
