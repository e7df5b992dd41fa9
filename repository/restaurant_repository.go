package repository

import (
	"github.com/Saaaaaad3/Plattera/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindByOwner returns the restaurant owned by a user, if any.
func (r *RestaurantRepository) FindByOwner(userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("user_id = ?", userID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}
