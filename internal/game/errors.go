package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a game cannot be set up, e.g. an empty roster.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidTransition is matched by TransitionError.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidLetter is returned for guesses outside A-Z.
	ErrInvalidLetter = errors.New("invalid letter")
	// ErrRoundOver is returned when guessing on a round that already ended.
	ErrRoundOver = errors.New("round is over")
)

// TransitionError reports an operation attempted in a phase that does not allow it.
// The engine state is unchanged when it is returned.
type TransitionError struct {
	Op    string
	Phase Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed in phase %s", e.Op, e.Phase)
}

// Is makes errors.Is(err, ErrInvalidTransition) work.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
