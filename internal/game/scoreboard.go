package game

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/samdwyer/hangman/internal/entity"
)

// Standing is a ranked player and their position. Equal scores share a position.
type Standing struct {
	Position int
	entity.Player
}

// Rank orders players by score, highest first. Players with equal scores
// keep their input order. The input slice is not modified.
func Rank(players []entity.Player) []entity.Player {
	ranked := slices.Clone(players)
	slices.SortStableFunc(ranked, func(a, b entity.Player) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// Standings ranks players and assigns competition positions (1, 1, 3).
func Standings(players []entity.Player) []Standing {
	ranked := Rank(players)
	standings := make([]Standing, len(ranked))
	for i, p := range ranked {
		position := i + 1
		if i > 0 && p.Score == ranked[i-1].Score {
			position = standings[i-1].Position
		}
		standings[i] = Standing{Position: position, Player: p}
	}
	return standings
}

// Leaders returns every player sharing the top score, in input order.
func Leaders(players []entity.Player) []entity.Player {
	if len(players) == 0 {
		return nil
	}
	top := lo.MaxBy(players, func(a, b entity.Player) bool {
		return a.Score > b.Score
	}).Score
	return lo.Filter(players, func(p entity.Player, _ int) bool {
		return p.Score == top
	})
}
