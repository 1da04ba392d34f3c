package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordEntry is a single word to guess and the definition shown on reveal.
type WordEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// ThemeDef defines a topic and its word collection loaded from JSON.
type ThemeDef struct {
	ID    string      `json:"id"`    // Lookup key (e.g., "computer_science")
	Name  string      `json:"name"`  // Display name (e.g., "Computer Science")
	Color string      `json:"color"` // Hex accent color (e.g., "#00AFFF")
	Words []WordEntry `json:"words"`
}

// TCellColor returns the accent color as a tcell.Color.
func (t *ThemeDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// NormalizeThemeID maps user input such as " Computer Science " to the
// canonical id form "computer_science".
func NormalizeThemeID(theme string) string {
	fields := strings.FieldsFunc(strings.ToLower(theme), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	})
	return strings.Join(fields, "_")
}

// normalizeWord upper-cases a word and checks it only holds A-Z and single
// inner spaces.
func normalizeWord(word string) (string, error) {
	upper := cases.Upper(language.Und).String(strings.TrimSpace(word))
	if upper == "" {
		return "", errors.New("empty word")
	}
	prevSpace := false
	for _, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z':
			prevSpace = false
		case r == ' ':
			if prevSpace {
				return "", fmt.Errorf("word %q has consecutive spaces", upper)
			}
			prevSpace = true
		default:
			return "", fmt.Errorf("word %q has invalid character %q", upper, r)
		}
	}
	return upper, nil
}

// validate normalizes the theme in place and reports the first invalid entry.
func (t *ThemeDef) validate() error {
	t.ID = NormalizeThemeID(t.ID)
	if t.ID == "" {
		return errors.New("theme has empty id")
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	if len(t.Words) == 0 {
		return fmt.Errorf("theme %s has no words", t.ID)
	}
	for i := range t.Words {
		word, err := normalizeWord(t.Words[i].Word)
		if err != nil {
			return fmt.Errorf("theme %s entry %d: %w", t.ID, i, err)
		}
		if strings.TrimSpace(t.Words[i].Definition) == "" {
			return fmt.Errorf("theme %s entry %d (%s): empty definition", t.ID, i, word)
		}
		t.Words[i].Word = word
	}
	return nil
}
