package models

import (
	"time"

	"gorm.io/gorm"
)

type EducationInfo struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Degree       string         `gorm:"size:128;not null" json:"degree"`
	Institution  string         `gorm:"size:255" json:"institution"`
	FieldOfStudy string         `gorm:"size:128" json:"field_of_study"`
	PassingYear  int            `json:"passing_year"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (EducationInfo) TableName() string { return "education_infos" }

type CareerInfo struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Designation string         `gorm:"size:128;not null" json:"designation"`
	Company     string         `gorm:"size:255" json:"company"`
	StartYear   int            `json:"start_year"`
	EndYear     *int           `json:"end_year"` // nil = current
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (CareerInfo) TableName() string { return "career_infos" }

type PhysicalAttribute struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	HeightCm   int            `json:"height_cm"`
	WeightKg   int            `json:"weight_kg"`
	Complexion string         `gorm:"size:32" json:"complexion"`
	BloodGroup string         `gorm:"size:8" json:"blood_group"`
	Disability string         `gorm:"size:128" json:"disability"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PhysicalAttribute) TableName() string { return "physical_attributes" }

type Family struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserID           uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	FatherName       string         `gorm:"size:128" json:"father_name"`
	FatherProfession string         `gorm:"size:128" json:"father_profession"`
	MotherName       string         `gorm:"size:128" json:"mother_name"`
	MotherProfession string         `gorm:"size:128" json:"mother_profession"`
	Brothers         int            `json:"brothers"`
	Sisters          int            `json:"sisters"`
	FamilyType       string         `gorm:"size:32" json:"family_type"` // JOINT / NUCLEAR
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Family) TableName() string { return "families" }

type PartnerExpectation struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	MinAge        *int           `json:"min_age"`
	MaxAge        *int           `json:"max_age"`
	ReligionID    *uint          `json:"religion_id"`
	Caste         string         `gorm:"size:64" json:"caste"`
	MaritalStatus string         `gorm:"size:32" json:"marital_status"`
	MinHeightCm   *int           `json:"min_height_cm"`
	Description   string         `gorm:"type:text" json:"description"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (PartnerExpectation) TableName() string { return "partner_expectations" }

type GalleryImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Image     string         `gorm:"size:512;not null" json:"image"` // filename or absolute URL
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (GalleryImage) TableName() string { return "gallery_images" }
