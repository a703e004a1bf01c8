package models

import "time"

// RegistrationStep records one profile section as completed or skipped.
// The unique pair index makes re-saving a section idempotent; the user's
// step counters are derived from these rows.
type RegistrationStep struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_step_pair,unique" json:"user_id"`
	Step      string    `gorm:"size:16;not null;index:idx_step_pair,unique" json:"step"`
	Skipped   bool      `gorm:"not null;default:false" json:"skipped"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (RegistrationStep) TableName() string { return "registration_steps" }
