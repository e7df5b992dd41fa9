package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Picture     string `json:"picture"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
