package models

import (
	"time"

	"vivah/internal/domain"
)

// Interest is a directed "interest sent" edge. The unique pair index makes
// duplicate edges a constraint violation rather than a race. Edges delete
// hard: a removed pair must release the index so it can be re-expressed.
type Interest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SenderID  uint      `gorm:"not null;index:idx_interest_pair,unique" json:"sender_id"`
	TargetID  uint      `gorm:"not null;index:idx_interest_pair,unique" json:"target_id"`
	Status    int       `gorm:"not null;default:0;index" json:"status"` // 0 pending, 1 accepted
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sender User `gorm:"foreignKey:SenderID" json:"-"`
	Target User `gorm:"foreignKey:TargetID" json:"-"`
}

func (Interest) TableName() string { return "interests" }

func (i *Interest) IsAccepted() bool { return i.Status == domain.InterestAccepted }

// ShortlistedProfile is a private bookmark edge.
type ShortlistedProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_shortlist_pair,unique" json:"user_id"`
	TargetID  uint      `gorm:"not null;index:idx_shortlist_pair,unique" json:"target_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID" json:"-"`
	Target User `gorm:"foreignKey:TargetID" json:"-"`
}

func (ShortlistedProfile) TableName() string { return "shortlisted_profiles" }

// IgnoredProfile is a private hide/suppress edge.
type IgnoredProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_ignore_pair,unique" json:"user_id"`
	TargetID  uint      `gorm:"not null;index:idx_ignore_pair,unique" json:"target_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID" json:"-"`
	Target User `gorm:"foreignKey:TargetID" json:"-"`
}

func (IgnoredProfile) TableName() string { return "ignored_profiles" }

// ContactView records an unlocked contact so repeat unlocks of the same
// member never re-charge the viewer.
type ContactView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ViewerID  uint      `gorm:"not null;index:idx_contact_pair,unique" json:"viewer_id"`
	TargetID  uint      `gorm:"not null;index:idx_contact_pair,unique" json:"target_id"`
	CreatedAt time.Time `json:"created_at"`

	Viewer User `gorm:"foreignKey:ViewerID" json:"-"`
	Target User `gorm:"foreignKey:TargetID" json:"-"`
}

func (ContactView) TableName() string { return "contact_views" }
