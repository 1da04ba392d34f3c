package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownTheme is matched by UnknownThemeError via errors.Is.
var ErrUnknownTheme = errors.New("unknown theme")

// UnknownThemeError reports a theme id with no registered collection.
type UnknownThemeError struct {
	Theme string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q", e.Theme)
}

// Is makes errors.Is(err, ErrUnknownTheme) work.
func (e *UnknownThemeError) Is(target error) bool {
	return target == ErrUnknownTheme
}

// WordBank holds loaded themes and picks random entries from them.
// It is not safe for concurrent use; the rng is owned by the bank.
type WordBank struct {
	themes   map[string]*ThemeDef
	all      []ThemeDef
	fallback string
	rng      *rand.Rand
}

// WordBankOption configures a WordBank.
type WordBankOption func(*WordBank)

// WithFallbackTheme makes Pick use the given theme instead of failing when an
// unknown theme is requested. An empty id keeps the strict behavior.
func WithFallbackTheme(id string) WordBankOption {
	return func(b *WordBank) {
		b.fallback = NormalizeThemeID(id)
	}
}

// NewWordBank validates the themes and creates a bank drawing from rng.
func NewWordBank(themes []ThemeDef, rng *rand.Rand, opts ...WordBankOption) (*WordBank, error) {
	if rng == nil {
		return nil, errors.New("word bank needs a random source")
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded")
	}

	bank := &WordBank{
		themes: make(map[string]*ThemeDef, len(themes)),
		all:    make([]ThemeDef, len(themes)),
		rng:    rng,
	}
	for i := range themes {
		theme := themes[i]
		theme.Words = append([]WordEntry(nil), themes[i].Words...)
		if err := theme.validate(); err != nil {
			return nil, err
		}
		if _, dup := bank.themes[theme.ID]; dup {
			return nil, fmt.Errorf("duplicate theme id %s", theme.ID)
		}
		bank.all[i] = theme
		bank.themes[theme.ID] = &bank.all[i]
	}

	for _, opt := range opts {
		opt(bank)
	}
	if bank.fallback != "" {
		if _, ok := bank.themes[bank.fallback]; !ok {
			return nil, fmt.Errorf("fallback theme: %w", &UnknownThemeError{Theme: bank.fallback})
		}
	}
	return bank, nil
}

// LoadWordBank loads and creates a bank from the embedded themes.json.
func LoadWordBank(rng *rand.Rand, opts ...WordBankOption) (*WordBank, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	return NewWordBank(themes, rng, opts...)
}

// MustLoadWordBank loads a bank, panicking on error.
func MustLoadWordBank(rng *rand.Rand, opts ...WordBankOption) *WordBank {
	bank, err := LoadWordBank(rng, opts...)
	if err != nil {
		panic(err)
	}
	return bank
}

// Pick selects one entry uniformly at random from the theme's collection.
// The returned word is always upper case.
func (b *WordBank) Pick(theme string) (WordEntry, error) {
	def, err := b.Resolve(theme)
	if err != nil {
		return WordEntry{}, err
	}
	return def.Words[b.rng.Intn(len(def.Words))], nil
}

// Resolve returns the theme Pick would draw from for the given id, applying
// the fallback theme when one is configured.
func (b *WordBank) Resolve(theme string) (*ThemeDef, error) {
	if def := b.GetByID(theme); def != nil {
		return def, nil
	}
	if b.fallback != "" {
		return b.themes[b.fallback], nil
	}
	return nil, &UnknownThemeError{Theme: theme}
}

// GetByID returns the theme with the given id, or nil if not found.
func (b *WordBank) GetByID(id string) *ThemeDef {
	return b.themes[NormalizeThemeID(id)]
}

// Themes returns all themes in load order.
func (b *WordBank) Themes() []ThemeDef {
	return b.all
}

// Count returns the number of themes in the bank.
func (b *WordBank) Count() int {
	return len(b.all)
}
