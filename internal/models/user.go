package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"size:128;not null" json:"name"`
	Email           string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Mobile          string         `gorm:"uniqueIndex;size:32;not null" json:"mobile"`
	PasswordHash    string         `gorm:"size:255" json:"-"`
	Status          string         `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`
	PackageID       *uint          `gorm:"index" json:"package_id"`
	PackageExpiry   *time.Time     `json:"package_expiry"`
	LookingFor      int            `gorm:"index" json:"looking_for"` // 1 = male-seeking, 2 = female-seeking
	ProfileComplete bool           `gorm:"default:false" json:"profile_complete"`
	StepsCompleted  int            `gorm:"default:0" json:"steps_completed"`
	StepsSkipped    int            `gorm:"default:0" json:"steps_skipped"`
	ProfileImage    string         `gorm:"size:512" json:"profile_image"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	BasicInfo          *BasicInfo          `gorm:"foreignKey:UserID" json:"basic_info,omitempty"`
	PhysicalAttribute  *PhysicalAttribute  `gorm:"foreignKey:UserID" json:"physical_attribute,omitempty"`
	Family             *Family             `gorm:"foreignKey:UserID" json:"family,omitempty"`
	PartnerExpectation *PartnerExpectation `gorm:"foreignKey:UserID" json:"partner_expectation,omitempty"`
	Limitation         *UserLimitation     `gorm:"foreignKey:UserID" json:"limitation,omitempty"`
	Educations         []EducationInfo     `gorm:"foreignKey:UserID" json:"educations,omitempty"`
	Careers            []CareerInfo        `gorm:"foreignKey:UserID" json:"careers,omitempty"`
	Gallery            []GalleryImage      `gorm:"foreignKey:UserID" json:"gallery,omitempty"`
	Package            *Package            `gorm:"foreignKey:PackageID" json:"package,omitempty"`
}

// HasActivePackage reports whether the user holds an unexpired purchased package.
func (u *User) HasActivePackage(now time.Time) bool {
	if u.PackageID == nil {
		return false
	}
	return u.PackageExpiry == nil || u.PackageExpiry.After(now)
}
