package services

import (
	"math/rand"
	"testing"
)

func TestRecommendSides(t *testing.T) {
	items := starters(1, 6)
	items[1].ItemAvailable = false // number 2 out of stock

	rng := rand.New(rand.NewSource(1))
	sides := RecommendSides(items, 3, RecommendedSidesCount, rng)

	if len(sides) != 3 {
		t.Fatalf("got %d sides, want 3", len(sides))
	}
	for _, s := range sides {
		if s.ItemNumber == 3 {
			t.Error("current item recommended as its own side")
		}
		if !s.ItemAvailable {
			t.Error("unavailable item recommended")
		}
	}
}

func TestRecommendSidesSmallPool(t *testing.T) {
	items := starters(1, 2)
	rng := rand.New(rand.NewSource(1))
	sides := RecommendSides(items, 1, RecommendedSidesCount, rng)
	if len(sides) != 1 {
		t.Errorf("got %d sides from a pool of 1, want 1", len(sides))
	}

	if got := RecommendSides(nil, 1, RecommendedSidesCount, rng); len(got) != 0 {
		t.Errorf("got %d sides from an empty menu", len(got))
	}
}
