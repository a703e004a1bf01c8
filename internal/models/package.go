package models

import (
	"time"

	"gorm.io/gorm"
)

// Package is a purchasable subscription tier. Per-feature limits use the
// same -1 unlimited sentinel as UserLimitation.
type Package struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Name                 string         `gorm:"size:64;not null;uniqueIndex" json:"name"`
	PriceCents           int64          `gorm:"not null" json:"price_cents"`
	Currency             string         `gorm:"size:3;default:'INR'" json:"currency"`
	ValidityDays         int            `gorm:"not null" json:"validity_days"`
	InterestExpressLimit int            `gorm:"not null;default:0" json:"interest_express_limit"`
	ContactViewLimit     int            `gorm:"not null;default:0" json:"contact_view_limit"`
	ImageUploadLimit     int            `gorm:"not null;default:0" json:"image_upload_limit"`
	IsActive             bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Package) TableName() string { return "packages" }
