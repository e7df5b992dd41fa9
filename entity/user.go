package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	MobileNumber string `gorm:"uniqueIndex;not null" json:"mobileNumber"`
	Role         string `gorm:"not null;default:Customer" json:"role"`

	RestaurantsOwned []Restaurant `gorm:"foreignKey:UserID" json:"-"`
}
