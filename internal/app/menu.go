package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"

	"github.com/samdwyer/hangman/internal/entity"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/ui"
)

const (
	defaultPlayers = 2
	maxPlayers     = 8
	maxFieldLen    = 24
)

// menuAction is what the app should do after a menu key.
type menuAction int

const (
	menuNone menuAction = iota
	menuStart
	menuQuit
)

// Menu is the start form: a theme and the ordered player names.
type Menu struct {
	themes   []string // display names, in bank order
	themeIDs []string
	themeIdx int
	theme    string
	typed    bool // theme field holds free text rather than a listed theme
	names    []string
	focus    int
	message  string
}

// NewMenu creates a form with two blank players and defaultTheme selected.
func NewMenu(themes []gamedata.ThemeDef, defaultTheme string) *Menu {
	m := &Menu{
		themes:   lo.Map(themes, func(t gamedata.ThemeDef, _ int) string { return t.Name }),
		themeIDs: lo.Map(themes, func(t gamedata.ThemeDef, _ int) string { return t.ID }),
		names:    make([]string, defaultPlayers),
		theme:    defaultTheme,
		typed:    true,
	}
	_, idx, found := lo.FindIndexOf(themes, func(t gamedata.ThemeDef) bool {
		return t.ID == gamedata.NormalizeThemeID(defaultTheme)
	})
	if found {
		m.themeIdx = idx
		m.theme = m.themes[idx]
		m.typed = false
	}
	return m
}

// HandleKey applies one key press to the form.
func (m *Menu) HandleKey(key tcell.Key, ch rune) menuAction {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return menuQuit
	case tcell.KeyEnter:
		return menuStart
	case tcell.KeyUp, tcell.KeyBacktab:
		m.focus = (m.focus + len(m.names)) % (len(m.names) + 1)
	case tcell.KeyDown, tcell.KeyTab:
		m.focus = (m.focus + 1) % (len(m.names) + 1)
	case tcell.KeyLeft:
		m.cycleTheme(-1)
	case tcell.KeyRight:
		m.cycleTheme(1)
	case tcell.KeyCtrlN:
		if len(m.names) < maxPlayers {
			m.names = append(m.names, "")
			m.focus = len(m.names)
		}
	case tcell.KeyCtrlD:
		if m.focus > 0 && len(m.names) > 1 {
			m.names = append(m.names[:m.focus-1], m.names[m.focus:]...)
			m.focus = min(m.focus, len(m.names))
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		m.setField(dropLast(m.field()))
	case tcell.KeyRune:
		if len([]rune(m.field())) < maxFieldLen {
			m.setField(m.field() + string(ch))
		}
	}
	return menuNone
}

func (m *Menu) cycleTheme(step int) {
	if m.focus != 0 || len(m.themes) == 0 {
		return
	}
	m.themeIdx = (m.themeIdx + step + len(m.themes)) % len(m.themes)
	m.theme = m.themes[m.themeIdx]
	m.typed = false
}

func (m *Menu) field() string {
	if m.focus == 0 {
		return m.theme
	}
	return m.names[m.focus-1]
}

func (m *Menu) setField(v string) {
	if m.focus == 0 {
		m.theme = v
		m.typed = true
		return
	}
	m.names[m.focus-1] = v
}

func dropLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// Roster returns the player names, with blanks replaced by defaults.
func (m *Menu) Roster() []string {
	return entity.DefaultNames(m.names)
}

// Theme returns the id of the selected theme, or the text typed into the
// theme field.
func (m *Menu) Theme() string {
	if !m.typed {
		return m.themeIDs[m.themeIdx]
	}
	return m.theme
}

// ThemeLabel returns the theme field as displayed.
func (m *Menu) ThemeLabel() string {
	return m.theme
}

// SetMessage shows a line of feedback, such as a start error.
func (m *Menu) SetMessage(msg string) {
	m.message = msg
}

// View returns the render state.
func (m *Menu) View() ui.MenuView {
	return ui.MenuView{
		Theme:   m.theme,
		Names:   append([]string(nil), m.names...),
		Focus:   m.focus,
		Message: m.message,
	}
}
