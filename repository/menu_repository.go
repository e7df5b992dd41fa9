package repository

import (
	"github.com/Saaaaaad3/Plattera/entity"
	"gorm.io/gorm"
)

// MenuRepository talks to the menu_items table only. Items are
// addressed by (restaurant, item number); the table's primary key is
// database-assigned and never leaves this package's queries.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ItemsByRestaurant returns every item of one restaurant in menu
// order. This is the store's natural item order.
func (r *MenuRepository) ItemsByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("item_number ASC").
		Find(&items).Error
	return items, err
}

// FindByNumber resolves an item's row from its restaurant-scoped
// menu number.
func (r *MenuRepository) FindByNumber(restID, number uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ? AND item_number = ?", restID, number).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts an item with its menu number already assigned by
// the store. The primary key is left to the database.
func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// SaveItem updates the row addressed by the item's restaurant and menu
// number, carrying the resolved primary key back into item.
func (r *MenuRepository) SaveItem(item *entity.MenuItem) error {
	existing, err := r.FindByNumber(item.RestaurantID, item.ItemNumber)
	if err != nil {
		return err
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	return r.DB.Save(item).Error
}

func (r *MenuRepository) DeleteItem(restID, number uint) error {
	return r.DB.
		Where("restaurant_id = ? AND item_number = ?", restID, number).
		Delete(&entity.MenuItem{}).Error
}
