package services

import (
	"math/rand"

	"github.com/Saaaaaad3/Plattera/entity"
)

// RecommendedSidesCount is how many sides a detail page shows.
const RecommendedSidesCount = 3

// RecommendSides picks up to n random available items to suggest next
// to the current one. The current item and unavailable items never
// appear. rng may be seeded for deterministic tests.
func RecommendSides(items []entity.MenuItem, currentNumber uint, n int, rng *rand.Rand) []entity.MenuItem {
	var pool []entity.MenuItem
	for _, it := range items {
		if it.ItemNumber != currentNumber && it.ItemAvailable {
			pool = append(pool, it)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
