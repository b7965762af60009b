package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID               string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name             string `gorm:"type:varchar(100);not null" json:"name"`
	Email            string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PhoneNumber      string `gorm:"type:varchar(20)" json:"phone_number"`
	NewsletterSignup bool   `gorm:"default:false" json:"newsletter_signup"`
}

// BeforeCreate -> mengisi UUID sebelum record disimpan
func (cust *Customer) BeforeCreate(tx *gorm.DB) error {
	if cust.ID == "" {
		cust.ID = uuid.NewString()
	}
	return nil
}
