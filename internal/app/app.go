// Package app runs the terminal front end: menu, turns and scoreboard.
package app

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/entity"
	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/ui"
)

// App holds the screen and the current session.
type App struct {
	cfg      config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	words    *gamedata.WordBank
	menu     *Menu
	engine   *game.Engine
	theme    *gamedata.ThemeDef
	pending  *game.AdvanceTask
	message  string
	running  bool
}

// New creates an app showing the start menu.
func New(cfg config.Config, screen *ui.Screen, words *gamedata.WordBank) *App {
	return &App{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		words:    words,
		menu:     NewMenu(words.Themes(), cfg.DefaultTheme),
		running:  true,
	}
}

// Run executes the main loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	for a.running {
		a.render()

		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.handleEvent(ctx, ev)
	}
	return nil
}

// Close cancels any pending auto-advance and restores the terminal.
func (a *App) Close() {
	a.cancelPending()
	if a.screen != nil {
		a.screen.Close()
		a.screen = nil
	}
}

func (a *App) render() {
	if a.engine == nil {
		a.renderer.RenderMenu(a.menu.View())
		return
	}

	snap := a.engine.Snapshot()
	switch snap.Phase {
	case game.PhaseAwaitingGuess:
		a.renderer.RenderRound(snap, a.theme.Name, a.message)
	case game.PhaseRevealing:
		reveal, err := a.engine.Reveal()
		if err != nil {
			a.renderer.RenderMessage(err.Error(), 0)
			return
		}
		a.renderer.RenderReveal(snap, reveal, a.theme.Name, a.cfg.RevealDelay.String())
		if a.message != "" {
			a.renderer.RenderMessage(a.message, 0)
		}
	case game.PhaseGameOver:
		players := a.engine.Players()
		a.renderer.RenderScoreboard(game.Standings(players), entity.Names(game.Leaders(players)))
	}
}

// handleEvent processes a single event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	}
}

// handleKey processes keyboard input for the current screen.
func (a *App) handleKey(ctx context.Context, key tcell.Key, ch rune) {
	if a.engine == nil {
		switch a.menu.HandleKey(key, ch) {
		case menuStart:
			a.startGame(ctx)
		case menuQuit:
			a.running = false
		}
		return
	}

	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		a.running = false
		return
	}

	switch a.engine.Phase() {
	case game.PhaseAwaitingGuess:
		if key == tcell.KeyRune {
			a.guess(ctx, ch)
		}
	case game.PhaseRevealing:
		if key == tcell.KeyEnter || (key == tcell.KeyRune && ch == ' ') {
			a.advance(ctx)
		}
	case game.PhaseGameOver:
		switch {
		case key == tcell.KeyEnter:
			a.backToMenu()
		case key == tcell.KeyRune && (ch == 'q' || ch == 'Q'):
			a.running = false
		}
	}
}

// startGame builds a session from the menu form.
func (a *App) startGame(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	themeInput := a.menu.Theme()

	theme, err := a.words.Resolve(themeInput)
	if err != nil {
		a.menu.SetMessage(err.Error())
		return
	}
	if theme.ID != gamedata.NormalizeThemeID(themeInput) {
		logger.Warn().Str("requested", themeInput).Str("using", theme.ID).Msg("unknown theme, using fallback")
	}

	engine, err := game.NewEngine(ctx, a.menu.Roster(), themeInput, a.words)
	if err != nil {
		a.menu.SetMessage(err.Error())
		return
	}

	a.menu.SetMessage("")
	a.engine = engine
	a.theme = theme
	a.message = ""
	a.renderer.SetAccent(theme.TCellColor())
}

func (a *App) guess(ctx context.Context, ch rune) {
	result, err := a.engine.SubmitGuess(ctx, ch)
	switch {
	case errors.Is(err, game.ErrInvalidLetter):
		a.message = fmt.Sprintf("%q is not a letter", ch)
		return
	case err != nil:
		zerolog.Ctx(ctx).Error().Err(err).Msg("guess rejected")
		a.message = err.Error()
		return
	}

	switch result {
	case game.GuessAlreadyGuessed:
		a.message = fmt.Sprintf("%c was already guessed", unicode.ToUpper(ch))
	case game.GuessIncorrect:
		a.message = fmt.Sprintf("No %c", unicode.ToUpper(ch))
	default:
		a.message = ""
	}

	if a.engine.Phase() == game.PhaseRevealing {
		a.message = ""
		a.scheduleAdvance(ctx)
	}
}

// scheduleAdvance starts the reveal timer. Its advance runs on the event loop.
func (a *App) scheduleAdvance(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	screen := a.screen
	dispatch := func(fn func()) error {
		return screen.PostEvent(tcell.NewEventInterrupt(fn))
	}

	task, err := a.engine.ScheduleAdvance(ctx, a.cfg.RevealDelay, dispatch)
	if err != nil {
		logger.Error().Err(err).Msg("schedule advance")
		return
	}
	a.pending = task
}

// advance moves past the reveal at once and revokes the timer.
func (a *App) advance(ctx context.Context) {
	a.cancelPending()
	if err := a.engine.Advance(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("advance")
		a.message = err.Error()
		return
	}
	a.message = ""
}

func (a *App) cancelPending() {
	if a.pending != nil {
		a.pending.Cancel()
		a.pending = nil
	}
}

func (a *App) backToMenu() {
	a.cancelPending()
	a.engine = nil
	a.theme = nil
	a.message = ""
}
