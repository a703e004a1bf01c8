package repository

import (
	"testing"
	"time"

	"vivah/internal/database"
	"vivah/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

type memberSpec struct {
	name    string
	gender  string
	birth   *time.Time
	caste   string
	relID   *uint
	city    string
	created time.Time
}

func seedMember(t *testing.T, db *gorm.DB, spec memberSpec) models.User {
	t.Helper()
	u := models.User{
		Name:   spec.name,
		Email:  spec.name + "@test.local",
		Mobile: "+91" + spec.name,
		Status: "ACTIVE",
	}
	require.NoError(t, db.Create(&u).Error)
	if !spec.created.IsZero() {
		require.NoError(t, db.Model(&u).UpdateColumn("created_at", spec.created).Error)
	}
	bi := models.BasicInfo{
		UserID:     u.ID,
		Gender:     spec.gender,
		BirthDate:  spec.birth,
		Caste:      spec.caste,
		ReligionID: spec.relID,
		City:       spec.city,
	}
	require.NoError(t, db.Create(&bi).Error)
	return u
}

func seedLimits(t *testing.T, db *gorm.DB, userID uint, interest, contact, image int) {
	t.Helper()
	require.NoError(t, db.Create(&models.UserLimitation{
		UserID:               userID,
		InterestExpressLimit: interest,
		ContactViewLimit:     contact,
		ImageUploadLimit:     image,
	}).Error)
}

func birthDate(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}
