package game

import (
	"slices"
	"strings"

	"github.com/samdwyer/hangman/internal/gamedata"
)

// MaxAttempts is the number of wrong guesses a player may make in a round.
const MaxAttempts = 6

// Round tracks one player's attempt at one word.
type Round struct {
	entry     gamedata.WordEntry
	guessed   map[rune]struct{}
	misses    int
	remaining int
	outcome   Outcome
	score     int
}

// NewRound creates a started round for the given entry.
func NewRound(entry gamedata.WordEntry) *Round {
	r := &Round{}
	r.Start(entry)
	return r
}

// Start resets the round to guess entry with a full attempt budget.
func (r *Round) Start(entry gamedata.WordEntry) {
	r.entry = entry
	r.guessed = make(map[rune]struct{}, 26)
	r.misses = 0
	r.remaining = MaxAttempts
	r.outcome = OutcomePending
	r.score = 0
}

// Guess evaluates one letter. Lowercase a-z is accepted and upper-cased.
func (r *Round) Guess(letter rune) (GuessResult, Outcome, error) {
	if r.outcome.Terminal() {
		return 0, r.outcome, ErrRoundOver
	}
	letter, ok := normalizeLetter(letter)
	if !ok {
		return 0, r.outcome, ErrInvalidLetter
	}
	if r.HasGuessed(letter) {
		return GuessAlreadyGuessed, r.outcome, nil
	}
	r.guessed[letter] = struct{}{}

	result := GuessCorrect
	if !strings.ContainsRune(r.entry.Word, letter) {
		result = GuessIncorrect
		r.misses++
		if r.remaining > 0 {
			r.remaining--
		}
	}

	switch {
	case r.solved():
		r.finish(OutcomeWon)
	case r.remaining == 0:
		r.finish(OutcomeLost)
	}
	return result, r.outcome, nil
}

// finish freezes the score at the remaining attempts.
func (r *Round) finish(outcome Outcome) {
	r.outcome = outcome
	r.score = r.remaining
}

func (r *Round) solved() bool {
	for _, ch := range r.entry.Word {
		if ch == ' ' {
			continue
		}
		if _, ok := r.guessed[ch]; !ok {
			return false
		}
	}
	return true
}

// FinalScore returns the attempts left when the round ended.
// ok is false while the round is still pending.
func (r *Round) FinalScore() (score int, ok bool) {
	if !r.outcome.Terminal() {
		return 0, false
	}
	return r.score, true
}

// Outcome returns the round state.
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Remaining returns the wrong guesses still allowed.
func (r *Round) Remaining() int {
	return r.remaining
}

// Misses returns how many distinct wrong letters were guessed.
func (r *Round) Misses() int {
	return r.misses
}

// Entry returns the word being guessed.
func (r *Round) Entry() gamedata.WordEntry {
	return r.entry
}

// HasGuessed reports whether letter was already tried.
func (r *Round) HasGuessed(letter rune) bool {
	letter, ok := normalizeLetter(letter)
	if !ok {
		return false
	}
	_, seen := r.guessed[letter]
	return seen
}

// Guessed returns the tried letters in alphabetical order.
func (r *Round) Guessed() []rune {
	letters := make([]rune, 0, len(r.guessed))
	for l := range r.guessed {
		letters = append(letters, l)
	}
	slices.Sort(letters)
	return letters
}

// Masked returns the word with unguessed letters replaced by placeholder.
// Spaces are kept.
func (r *Round) Masked(placeholder rune) string {
	var b strings.Builder
	b.Grow(len(r.entry.Word))
	for _, ch := range r.entry.Word {
		_, seen := r.guessed[ch]
		if ch == ' ' || seen {
			b.WriteRune(ch)
			continue
		}
		b.WriteRune(placeholder)
	}
	return b.String()
}

func normalizeLetter(letter rune) (rune, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return letter, letter >= 'A' && letter <= 'Z'
}
