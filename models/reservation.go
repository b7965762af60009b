package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerID  string    `gorm:"type:varchar(36);not null;index" json:"customer_id"`
	Customer    Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TimeSlot    time.Time `gorm:"not null;index" json:"time_slot"`
	TableNumber int       `gorm:"not null" json:"table_number"`
}

// BeforeCreate -> mengisi UUID sebelum record disimpan
func (res *Reservation) BeforeCreate(tx *gorm.DB) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	return nil
}
