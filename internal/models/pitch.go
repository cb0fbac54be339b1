package models

import (
	"time"

	"gorm.io/gorm"
)

// Pitch is a submitted funding proposal. The funding target is stored as a
// whole-unit amount plus a display currency code; the localized string shown
// to investors is derived at render time.
type Pitch struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Phone         string         `gorm:"type:varchar(32);not null" json:"phone"`
	Idea          string         `gorm:"type:text" json:"idea"`
	FundingAmount int64          `gorm:"not null" json:"funding_amount"`
	Currency      string         `gorm:"type:varchar(3);not null;default:'IDR'" json:"currency"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
