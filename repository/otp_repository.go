package repository

import (
	"github.com/Saaaaaad3/Plattera/entity"
	"gorm.io/gorm"
)

type OtpRepository struct {
	DB *gorm.DB
}

func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{DB: db}
}

func (r *OtpRepository) Create(code *entity.OtpCode) error {
	return r.DB.Create(code).Error
}

// LatestForMobile returns the newest unconsumed code for a number.
func (r *OtpRepository) LatestForMobile(mobile string) (*entity.OtpCode, error) {
	var code entity.OtpCode
	err := r.DB.
		Where("mobile_number = ? AND consumed = ?", mobile, false).
		Order("id DESC").
		First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *OtpRepository) MarkConsumed(id uint) error {
	return r.DB.Model(&entity.OtpCode{}).Where("id = ?", id).Update("consumed", true).Error
}
