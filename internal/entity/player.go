// Package entity provides the players taking part in a game.
package entity

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Player is one participant and the score they finished their round with.
type Player struct {
	Name  string
	Score int
}

// NewRoster creates players in the given order, each starting at score.
// Duplicate names are kept as-is.
func NewRoster(names []string, score int) []Player {
	return lo.Map(names, func(name string, _ int) Player {
		return Player{Name: name, Score: score}
	})
}

// DefaultNames replaces blank names with "Player N" (1-based).
func DefaultNames(names []string) []string {
	return lo.Map(names, func(name string, i int) string {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			return trimmed
		}
		return "Player " + strconv.Itoa(i+1)
	})
}

// Names returns the players' names in order.
func Names(players []Player) []string {
	return lo.Map(players, func(p Player, _ int) string {
		return p.Name
	})
}
