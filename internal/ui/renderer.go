package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/game"
)

// MenuView is the state of the start form.
type MenuView struct {
	Theme   string
	Names   []string
	Focus   int // 0 is the theme field, 1..n the player names
	Message string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	accent tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, accent: tcell.ColorYellow}
}

// SetAccent sets the highlight color, usually the theme color.
func (r *Renderer) SetAccent(c tcell.Color) {
	r.accent = c
}

var (
	styleText = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleBad  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGood = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

func (r *Renderer) accentStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(r.accent).Bold(true)
}

// RenderMenu draws the start form.
func (r *Renderer) RenderMenu(view MenuView) {
	r.screen.Clear()

	r.drawText(2, 1, "Welcome to Hangman!", r.accentStyle())
	r.drawField(2, 3, "Theme", "< "+view.Theme+" >", view.Focus == 0)
	for i, name := range view.Names {
		r.drawField(2, 5+i, fmt.Sprintf("Player %d", i+1), name, view.Focus == i+1)
	}

	_, height := r.screen.Size()
	if view.Message != "" {
		r.drawText(2, 6+len(view.Names), view.Message, styleBad)
	}
	r.drawText(2, height-2, "Up/Down move · Left/Right theme · Ctrl-N add · Ctrl-D remove · Enter start · Esc quit", styleDim)

	r.screen.Show()
}

func (r *Renderer) drawField(x, y int, label, value string, focused bool) {
	marker, style := "  ", styleText
	if focused {
		marker, style = "> ", r.accentStyle()
	}
	x += r.drawText(x, y, marker+label+": ", style)
	r.drawText(x, y, value, style)
}

// RenderRound draws the current turn.
func (r *Renderer) RenderRound(snap game.Snapshot, themeName, message string) {
	r.screen.Clear()
	r.drawHeader(snap, themeName)

	for i, line := range figureLines(snap.Misses) {
		r.drawText(4, 4+i, line, styleText)
	}

	r.drawText(4, 12, spaced(snap.Masked), r.accentStyle())
	r.drawAlphabet(4, 14, snap.Guessed)

	if message != "" {
		r.drawText(4, 16, message, styleDim)
	}
	_, height := r.screen.Size()
	r.drawText(2, height-2, "A-Z guess · Esc quit", styleDim)

	r.screen.Show()
}

// RenderReveal draws the finished word between turns.
func (r *Renderer) RenderReveal(snap game.Snapshot, reveal game.Reveal, themeName string, nextIn string) {
	r.screen.Clear()
	r.drawHeader(snap, themeName)

	for i, line := range figureLines(game.MaxAttempts - reveal.Score) {
		r.drawText(4, 4+i, line, styleText)
	}

	if reveal.Outcome == game.OutcomeWon {
		r.drawText(4, 12, fmt.Sprintf("%s guessed it! Score: %d", reveal.PlayerName, reveal.Score), styleGood)
	} else {
		r.drawText(4, 12, fmt.Sprintf("%s is out of attempts. Score: %d", reveal.PlayerName, reveal.Score), styleBad)
	}
	r.drawText(4, 14, "The word was: "+reveal.Word, r.accentStyle())

	width, height := r.screen.Size()
	for i, line := range wrap(reveal.Definition, width-8) {
		r.drawText(4, 16+i, line, styleText)
	}

	help := "Enter continue · Esc quit"
	if nextIn != "" {
		help = "Next turn in " + nextIn + " · " + help
	}
	r.drawText(2, height-2, help, styleDim)

	r.screen.Show()
}

// RenderScoreboard draws the final ranking.
func (r *Renderer) RenderScoreboard(standings []game.Standing, leaders []string) {
	r.screen.Clear()

	r.drawText(2, 1, "Scoreboard", r.accentStyle())
	for i, s := range standings {
		r.drawText(4, 3+i, fmt.Sprintf("%d. %-20s %d", s.Position, s.Name, s.Score), styleText)
	}

	y := 4 + len(standings)
	switch {
	case len(leaders) == 1:
		r.drawText(4, y, "Winner: "+leaders[0], styleGood)
	case len(leaders) > 1:
		r.drawText(4, y, "Tie: "+strings.Join(leaders, ", "), styleGood)
	}

	_, height := r.screen.Size()
	r.drawText(2, height-2, "Enter new game · q quit", styleDim)

	r.screen.Show()
}

func (r *Renderer) drawHeader(snap game.Snapshot, themeName string) {
	r.drawText(2, 1, "HANGMAN · "+themeName, r.accentStyle())
	r.drawText(2, 2, fmt.Sprintf("Player %d/%d: %s   Score: %d   Attempts left: %d",
		snap.Turn, snap.Players, snap.PlayerName, snap.PlayerScore, snap.Remaining), styleText)
}

// drawAlphabet shows A-Z with guessed letters blanked out.
func (r *Renderer) drawAlphabet(x, y int, guessed []rune) {
	used := make(map[rune]bool, len(guessed))
	for _, l := range guessed {
		used[l] = true
	}
	for i := 0; i < 26; i++ {
		l := rune('A' + i)
		if used[l] {
			r.screen.SetContent(x+i*2, y, '·', styleDim)
			continue
		}
		r.screen.SetContent(x+i*2, y, l, styleText)
	}
}

// drawText writes s starting at x, y and returns the number of cells used.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, ch := range s {
		r.screen.SetContent(x+n, y, ch, style)
		n++
	}
	return n
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, styleText)
	r.screen.Show()
}

// spaced puts a space between the letters of a masked word.
func spaced(masked string) string {
	runes := []rune(masked)
	parts := make([]string, len(runes))
	for i, ch := range runes {
		parts[i] = string(ch)
	}
	return strings.Join(parts, " ")
}

// wrap splits text into lines no longer than width, breaking on spaces.
func wrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
