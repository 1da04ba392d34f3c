package game

import (
	"context"
	"fmt"
	"slices"
	"unicode"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/hangman/internal/entity"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/telemetry"
)

// MaskPlaceholder stands in for letters not yet guessed.
const MaskPlaceholder = '_'

// WordSource supplies a random entry for a theme.
// *gamedata.WordBank satisfies it.
type WordSource interface {
	Pick(theme string) (gamedata.WordEntry, error)
}

// Engine is one game session: the roster, whose turn it is and the active round.
// It is owned by a single caller and is not safe for concurrent use.
type Engine struct {
	players   []entity.Player
	index     int
	round     *Round
	phase     Phase
	theme     string
	words     WordSource
	reveals   int // bumped on every round end, lets an AdvanceTask detect a stale reveal
	completed int
}

// Snapshot is what a renderer needs to draw the current turn.
type Snapshot struct {
	Phase       Phase
	Theme       string
	PlayerName  string
	PlayerScore int
	Turn        int // 1-based index of the current player
	Players     int
	Masked      string
	Remaining   int
	Misses      int
	Guessed     []rune
}

// Reveal is the completed word shown between turns.
type Reveal struct {
	PlayerName string
	Word       string
	Definition string
	Outcome    Outcome
	Score      int
}

// NewEngine starts a game for the named players, in order, drawing words
// for theme. No engine is returned on error.
func NewEngine(ctx context.Context, names []string, theme string, words WordSource) (*Engine, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()
	span.SetAttributes(
		attribute.Int("players", len(names)),
		attribute.String("theme", theme),
	)

	if len(names) == 0 {
		err := fmt.Errorf("%w: no players", ErrInvalidConfiguration)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if words == nil {
		err := fmt.Errorf("%w: no word source", ErrInvalidConfiguration)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	e := &Engine{
		players: entity.NewRoster(names, MaxAttempts),
		theme:   theme,
		words:   words,
	}
	entry, err := e.pick()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	e.startRound(entry)

	zerolog.Ctx(ctx).Info().
		Int("players", len(names)).
		Str("theme", theme).
		Msg("game started")
	return e, nil
}

func (e *Engine) pick() (gamedata.WordEntry, error) {
	entry, err := e.words.Pick(e.theme)
	if err != nil {
		return gamedata.WordEntry{}, fmt.Errorf("pick word for theme %q: %w", e.theme, err)
	}
	return entry, nil
}

func (e *Engine) startRound(entry gamedata.WordEntry) {
	e.round = NewRound(entry)
	e.phase = PhaseAwaitingGuess
}

// SubmitGuess forwards a letter to the current player's round. When the
// round ends the player's score is set and the engine moves to PhaseRevealing.
func (e *Engine) SubmitGuess(ctx context.Context, letter rune) (GuessResult, error) {
	if e.phase != PhaseAwaitingGuess {
		return 0, &TransitionError{Op: "submit guess", Phase: e.phase}
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "round.guess")
	defer span.End()

	result, outcome, err := e.round.Guess(letter)
	if err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(
		attribute.String("player", e.players[e.index].Name),
		attribute.String("letter", string(unicode.ToUpper(letter))),
		attribute.String("result", result.String()),
		attribute.Int("remaining", e.round.Remaining()),
	)

	if outcome.Terminal() {
		e.endRound(ctx)
	}
	return result, nil
}

func (e *Engine) endRound(ctx context.Context) {
	score, _ := e.round.FinalScore()
	player := &e.players[e.index]
	player.Score = score
	e.phase = PhaseRevealing
	e.reveals++
	e.completed++

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "round.end")
	span.SetAttributes(
		attribute.String("player", player.Name),
		attribute.String("outcome", e.round.Outcome().String()),
		attribute.Int("score", score),
		attribute.Int("misses", e.round.Misses()),
	)
	span.End()

	zerolog.Ctx(ctx).Debug().
		Str("player", player.Name).
		Str("outcome", e.round.Outcome().String()).
		Int("score", score).
		Msg("round ended")
}

// Advance leaves the reveal: the next player gets a new round, or the game
// ends after the last player. On a word bank error the engine stays in
// PhaseRevealing.
func (e *Engine) Advance(ctx context.Context) error {
	if e.phase != PhaseRevealing {
		return &TransitionError{Op: "advance", Phase: e.phase}
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.advance")
	defer span.End()

	if e.index == len(e.players)-1 {
		e.phase = PhaseGameOver
		e.round = nil
		e.gameOver(ctx)
		return nil
	}

	entry, err := e.pick()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	e.index++
	e.startRound(entry)
	span.SetAttributes(
		attribute.Int("turn", e.index+1),
		attribute.String("player", e.players[e.index].Name),
	)
	return nil
}

func (e *Engine) gameOver(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.over")
	defer span.End()

	ranked := Rank(e.players)
	span.SetAttributes(
		attribute.Int("rounds", e.completed),
		attribute.String("leader", ranked[0].Name),
		attribute.Int("top_score", ranked[0].Score),
	)
	zerolog.Ctx(ctx).Info().
		Int("rounds", e.completed).
		Str("leader", ranked[0].Name).
		Int("top_score", ranked[0].Score).
		Msg("game over")
}

// Phase returns the engine's current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// RoundsCompleted returns how many rounds have reached a terminal outcome.
func (e *Engine) RoundsCompleted() int {
	return e.completed
}

// CurrentPlayer returns the player whose turn it is (the last player once the game is over).
func (e *Engine) CurrentPlayer() entity.Player {
	return e.players[e.index]
}

// Players returns a copy of the roster in turn order.
func (e *Engine) Players() []entity.Player {
	return slices.Clone(e.players)
}

// Snapshot returns the render state for the current turn.
func (e *Engine) Snapshot() Snapshot {
	player := e.players[e.index]
	snap := Snapshot{
		Phase:       e.phase,
		Theme:       e.theme,
		PlayerName:  player.Name,
		PlayerScore: player.Score,
		Turn:        e.index + 1,
		Players:     len(e.players),
	}
	if e.round != nil {
		snap.Masked = e.round.Masked(MaskPlaceholder)
		snap.Remaining = e.round.Remaining()
		snap.Misses = e.round.Misses()
		snap.Guessed = e.round.Guessed()
	}
	return snap
}

// Reveal returns the finished word while the engine is in PhaseRevealing.
func (e *Engine) Reveal() (Reveal, error) {
	if e.phase != PhaseRevealing {
		return Reveal{}, &TransitionError{Op: "reveal", Phase: e.phase}
	}
	entry := e.round.Entry()
	score, _ := e.round.FinalScore()
	return Reveal{
		PlayerName: e.players[e.index].Name,
		Word:       entry.Word,
		Definition: entry.Definition,
		Outcome:    e.round.Outcome(),
		Score:      score,
	}, nil
}

// Ranking returns the final scoreboard once the game is over.
func (e *Engine) Ranking() ([]entity.Player, error) {
	if e.phase != PhaseGameOver {
		return nil, &TransitionError{Op: "ranking", Phase: e.phase}
	}
	return Rank(e.players), nil
}
