// Command seed loads a small demo dataset: the default catalogue plus a
// handful of members with complete profiles, for local development.
package main

import (
	"os"
	"time"

	"vivah/config"
	"vivah/internal/database"
	"vivah/internal/logger"
	"vivah/internal/models"
	"vivah/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type demoMember struct {
	name     string
	email    string
	mobile   string
	gender   string
	birth    string
	religion string
	caste    string
	city     string
	state    string
}

var demoMembers = []demoMember{
	{"Arjun Mehta", "arjun@example.com", "+919800000001", "MALE", "1992-03-14", "Hindu", "Brahmin", "Pune", "Maharashtra"},
	{"Priya Sharma", "priya@example.com", "+919800000002", "FEMALE", "1995-07-02", "Hindu", "Brahmin", "Mumbai", "Maharashtra"},
	{"Rahul Nair", "rahul@example.com", "+919800000003", "MALE", "1990-11-21", "Hindu", "Nair", "Kochi", "Kerala"},
	{"Sara Thomas", "sara@example.com", "+919800000004", "FEMALE", "1993-01-30", "Christian", "", "Bengaluru", "Karnataka"},
	{"Imran Khan", "imran@example.com", "+919800000005", "MALE", "1991-06-18", "Muslim", "", "Hyderabad", "Telangana"},
	{"Anita Kaur", "anita@example.com", "+919800000006", "FEMALE", "1996-09-09", "Sikh", "", "Amritsar", "Punjab"},
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}
	database.SeedDefaults(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	for _, m := range demoMembers {
		if err := seedMember(db, m, string(hash)); err != nil {
			logger.Error("seed member failed", "email", m.email, "err", err)
			os.Exit(1)
		}
	}
	logger.Info("demo data loaded", "members", len(demoMembers))
}

func seedMember(db *gorm.DB, m demoMember, passwordHash string) error {
	var existing models.User
	if err := db.Where("email = ?", m.email).First(&existing).Error; err == nil {
		return nil
	}

	lookingFor := 2
	if m.gender == "FEMALE" {
		lookingFor = 1
	}
	birth, err := time.Parse("2006-01-02", m.birth)
	if err != nil {
		return err
	}
	var religion models.Religion
	if err := db.Where("name = ?", m.religion).First(&religion).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		u := models.User{
			Name:            m.name,
			Email:           m.email,
			Mobile:          m.mobile,
			PasswordHash:    passwordHash,
			Status:          "ACTIVE",
			LookingFor:      lookingFor,
			ProfileComplete: true,
			StepsCompleted:  6,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		bi := models.BasicInfo{
			UserID:     u.ID,
			Gender:     m.gender,
			BirthDate:  &birth,
			ReligionID: &religion.ID,
			Caste:      m.caste,
			City:       m.city,
			State:      m.state,
		}
		if err := tx.Create(&bi).Error; err != nil {
			return err
		}
		// Step rows back the counters set on the user above.
		for _, step := range []string{
			service.StepBasic, service.StepEducation, service.StepCareer,
			service.StepFamily, service.StepPhysical, service.StepPartner,
		} {
			if err := tx.Create(&models.RegistrationStep{UserID: u.ID, Step: step}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&models.UserLimitation{UserID: u.ID}).Error
	})
}
