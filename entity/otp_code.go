package entity

import (
	"time"

	"gorm.io/gorm"
)

// OtpCode is one issued login code. Only the bcrypt hash of the code is
// stored; RequestID identifies the issuance across login and verify.
type OtpCode struct {
	gorm.Model
	RequestID    string    `gorm:"uniqueIndex" json:"requestId"`
	MobileNumber string    `gorm:"index" json:"mobileNumber"`
	CodeHash     string    `json:"-"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Consumed     bool      `json:"consumed"`
}
