package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	PackageID   uint           `gorm:"not null;index" json:"package_id"`
	AmountCents int64          `gorm:"not null" json:"amount_cents"`
	Currency    string         `gorm:"size:3;default:'INR'" json:"currency"`
	Provider    string         `gorm:"size:50;not null" json:"provider"`
	OrderID     string         `gorm:"size:255;uniqueIndex" json:"order_id"`     // gateway order reference
	PaymentRef  string         `gorm:"size:255;index" json:"payment_ref"`        // gateway payment id after capture
	Receipt     string         `gorm:"size:255;uniqueIndex" json:"receipt"`      // our idempotency key
	Status      string         `gorm:"size:20;not null;index" json:"status"`     // PENDING, COMPLETED, FAILED
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Package Package `gorm:"foreignKey:PackageID" json:"-"`
}

func (Payment) TableName() string { return "payments" }
