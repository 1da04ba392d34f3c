package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/entity"
	"github.com/samdwyer/hangman/internal/game"
)

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	screen, err := NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	t.Cleanup(screen.Close)
	return NewRenderer(screen), screen
}

// row returns the text drawn on line y.
func row(s *Screen, y int) string {
	width, _ := s.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenText(s *Screen) string {
	_, height := s.Size()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = row(s, y)
	}
	return strings.Join(lines, "\n")
}

func TestRenderRound(t *testing.T) {
	r, s := newTestRenderer(t)
	snap := game.Snapshot{
		Phase:       game.PhaseAwaitingGuess,
		PlayerName:  "Ada",
		PlayerScore: 6,
		Turn:        1,
		Players:     2,
		Masked:      "_L___ __L_",
		Remaining:   5,
		Misses:      1,
		Guessed:     []rune("LZ"),
	}

	r.RenderRound(snap, "Space", "")

	if got := row(s, 1); got != "  HANGMAN · Space" {
		t.Errorf("title row = %q", got)
	}
	if got := row(s, 2); !strings.Contains(got, "Player 1/2: Ada") || !strings.Contains(got, "Attempts left: 5") {
		t.Errorf("status row = %q", got)
	}
	if got := row(s, 12); got != "    _ L _ _ _   _ _ L _" {
		t.Errorf("word row = %q", got)
	}
	alphabet := row(s, 14)
	if strings.Contains(alphabet, "L") || strings.Contains(alphabet, "Z") || !strings.Contains(alphabet, "A B C") {
		t.Errorf("alphabet row = %q", alphabet)
	}
	if got := row(s, 6); got != "      O   |" {
		t.Errorf("figure head row = %q", got)
	}
}

func TestRenderReveal(t *testing.T) {
	r, s := newTestRenderer(t)
	reveal := game.Reveal{
		PlayerName: "Linus",
		Word:       "RAIN",
		Definition: "Water falling from clouds.",
		Outcome:    game.OutcomeLost,
		Score:      0,
	}

	r.RenderReveal(game.Snapshot{PlayerName: "Linus", Turn: 2, Players: 2}, reveal, "Weather", "2s")

	text := screenText(s)
	for _, want := range []string{"Linus is out of attempts. Score: 0", "The word was: RAIN", "Water falling from clouds.", "Next turn in 2s"} {
		if !strings.Contains(text, want) {
			t.Errorf("reveal screen missing %q:\n%s", want, text)
		}
	}
}

func TestRenderScoreboard(t *testing.T) {
	r, s := newTestRenderer(t)
	standings := game.Standings([]entity.Player{{Name: "B", Score: 0}, {Name: "A", Score: 4}})

	r.RenderScoreboard(standings, []string{"A"})

	if got := row(s, 3); !strings.HasPrefix(strings.TrimSpace(got), "1. A") {
		t.Errorf("first row = %q, want A first", got)
	}
	if got := row(s, 4); !strings.HasPrefix(strings.TrimSpace(got), "2. B") {
		t.Errorf("second row = %q, want B second", got)
	}
	if !strings.Contains(screenText(s), "Winner: A") {
		t.Error("scoreboard missing winner line")
	}
}

func TestRenderMenu(t *testing.T) {
	r, s := newTestRenderer(t)

	r.RenderMenu(MenuView{
		Theme:   "Animals",
		Names:   []string{"Ada", ""},
		Focus:   2,
		Message: `unknown theme "x"`,
	})

	if got := row(s, 3); got != "    Theme: < Animals >" {
		t.Errorf("theme row = %q", got)
	}
	if got := row(s, 6); got != "  > Player 2:" {
		t.Errorf("focused row = %q", got)
	}
	if !strings.Contains(screenText(s), `unknown theme "x"`) {
		t.Error("menu missing message")
	}
}

func TestFigureLines(t *testing.T) {
	empty := strings.Join(figureLines(0), "\n")
	if strings.ContainsAny(empty, "O/\\") {
		t.Errorf("figureLines(0) should have no body:\n%s", empty)
	}

	full := figureLines(game.MaxAttempts)
	if full[2] != "  O   |" || full[3] != " /|\\  |" || full[4] != " / \\  |" {
		t.Errorf("figureLines(6) =\n%s", strings.Join(full, "\n"))
	}

	if got := figureLines(10); strings.Join(got, "") != strings.Join(full, "") {
		t.Error("figureLines should cap at the full figure")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("a quick brown fox jumps over the lazy dog", 10)
	for _, line := range got {
		if len(line) > 10 {
			t.Errorf("line %q longer than 10", line)
		}
	}
	if strings.Join(got, " ") != "a quick brown fox jumps over the lazy dog" {
		t.Errorf("wrap lost words: %q", got)
	}
	if wrap("", 20) != nil {
		t.Error("wrap(\"\") should be empty")
	}
}

func TestSpaced(t *testing.T) {
	if got := spaced("A_ B"); got != "A _   B" {
		t.Errorf("spaced() = %q", got)
	}
}
