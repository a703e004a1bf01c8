package models

import (
	"time"

	"vivah/internal/domain"

	"gorm.io/gorm"
)

// UserLimitation holds the per-user remaining credit counters. Each counter
// is a non-negative integer or domain.Unlimited (-1).
type UserLimitation struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	UserID               uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	PackageID            *uint          `gorm:"index" json:"package_id"`
	InterestExpressLimit int            `gorm:"not null;default:0" json:"interest_express_limit"`
	ContactViewLimit     int            `gorm:"not null;default:0" json:"contact_view_limit"`
	ImageUploadLimit     int            `gorm:"not null;default:0" json:"image_upload_limit"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Package *Package `gorm:"foreignKey:PackageID" json:"package,omitempty"`
}

func (UserLimitation) TableName() string { return "user_limitations" }

// CreditView is how a counter is surfaced to clients: raw value plus an
// explicit unlimited flag so callers never interpret the sentinel themselves.
type CreditView struct {
	Remaining int  `json:"remaining"`
	Unlimited bool `json:"unlimited"`
}

func NewCreditView(v int) CreditView {
	return CreditView{Remaining: v, Unlimited: v == domain.Unlimited}
}
