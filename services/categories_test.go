package services

import (
	"testing"

	"github.com/Saaaaaad3/Plattera/entity"
)

func TestCategoryDisplayName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"starters", "Starters"},
		{"main-course", "Main course"},
		{"ice-cream-sundaes", "Ice cream sundaes"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CategoryDisplayName(tt.raw); got != tt.want {
			t.Errorf("CategoryDisplayName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestGroupByCategoryFirstSeenOrder(t *testing.T) {
	mk := func(id uint, cat string) entity.MenuItem {
		it := entity.MenuItem{ItemName: "x", ItemPrice: "1", Category: cat}
		it.ID = id
		return it
	}
	items := []entity.MenuItem{
		mk(1, "starters"),
		mk(2, "main-course"),
		mk(3, "starters"),
		mk(4, "desserts"),
		mk(5, "main-course"),
	}

	cats := GroupByCategory(items)
	wantOrder := []string{"starters", "main-course", "desserts"}
	if len(cats) != len(wantOrder) {
		t.Fatalf("got %d categories, want %d", len(cats), len(wantOrder))
	}
	for i, want := range wantOrder {
		if cats[i].ID != want {
			t.Errorf("category[%d] = %q, want %q", i, cats[i].ID, want)
		}
	}
	if len(cats[0].Items) != 2 || len(cats[1].Items) != 2 || len(cats[2].Items) != 1 {
		t.Error("items not grouped into their categories")
	}
	if cats[1].Name != "Main course" {
		t.Errorf("display name = %q, want %q", cats[1].Name, "Main course")
	}
}
