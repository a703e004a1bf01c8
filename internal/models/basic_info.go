package models

import (
	"time"

	"gorm.io/gorm"
)

// BasicInfo is the one-to-one profile core. Gender is stored canonical
// (MALE/FEMALE); normalization happens at the ingestion boundary.
type BasicInfo struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Gender         string         `gorm:"size:10;index" json:"gender"`
	BirthDate      *time.Time     `json:"birth_date"`
	ReligionID     *uint          `gorm:"index" json:"religion_id"`
	Caste          string         `gorm:"size:64" json:"caste"`
	MaritalStatus  string         `gorm:"size:32" json:"marital_status"`
	MotherTongue   string         `gorm:"size:64" json:"mother_tongue"`
	Profession     string         `gorm:"size:128" json:"profession"`
	City           string         `gorm:"size:128" json:"city"`
	State          string         `gorm:"size:128" json:"state"`
	PresentCity    string         `gorm:"size:128" json:"present_city"`
	PresentState   string         `gorm:"size:128" json:"present_state"`
	PermanentCity  string         `gorm:"size:128" json:"permanent_city"`
	PermanentState string         `gorm:"size:128" json:"permanent_state"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Religion *Religion `gorm:"foreignKey:ReligionID" json:"religion,omitempty"`
}

func (BasicInfo) TableName() string { return "basic_infos" }

type Religion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Religion) TableName() string { return "religions" }
