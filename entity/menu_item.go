package entity

import (
	"gorm.io/gorm"
)

// MenuItem is one sellable dish. Image and ingredient lists are stored
// as JSON columns; the first image is the thumbnail.
type MenuItem struct {
	gorm.Model
	// ItemNumber is the menu-facing item id, assigned as max+1 within a
	// restaurant. It is kept separate from the autoincrement primary key
	// because rows are soft-deleted: a number freed by a delete may be
	// handed out again without colliding with the retired row's key.
	ItemNumber      uint     `gorm:"index:idx_restaurant_item" json:"itemNumber"`
	ItemName        string   `json:"itemName"`
	ItemPrice       string   `json:"itemPrice"` // decimal kept as text, parsed on validation
	ItemDescription string   `json:"itemDescription"`
	Category        string   `json:"category"` // free-text grouping key
	ItemIsVeg       bool     `json:"itemIsVeg"`
	ItemIsJain      bool     `json:"itemIsJain"`
	ItemSpicy       bool     `json:"itemSpicy"`
	ItemSweet       bool     `json:"itemSweet"`
	ItemSpiceLevel  int      `json:"itemSpiceLevel"` // 0-5
	ItemSweetLevel  int      `json:"itemSweetLevel"` // 0-5
	ItemAvailable   bool     `json:"itemAvailable"`
	ItemBestSeller  bool     `json:"itemBestSeller"`
	ItemImages      []string `gorm:"serializer:json" json:"itemImages"`
	Ingredients     []string `gorm:"serializer:json" json:"ingredients"`

	RestaurantID uint       `gorm:"index:idx_restaurant_item" json:"restId"`
	Restaurant   Restaurant `json:"-"` // preload only when needed
}
