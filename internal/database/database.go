package database

import (
	"vivah/config"
	"vivah/internal/domain"
	"vivah/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Religion{},
		&models.BasicInfo{},
		&models.EducationInfo{},
		&models.CareerInfo{},
		&models.PhysicalAttribute{},
		&models.Family{},
		&models.PartnerExpectation{},
		&models.GalleryImage{},
		&models.RegistrationStep{},
		&models.UserLimitation{},
		&models.Interest{},
		&models.ShortlistedProfile{},
		&models.IgnoredProfile{},
		&models.ContactView{},
		&models.Package{},
		&models.Payment{},
		&models.SupportTicket{},
		&models.TicketReply{},
		&models.Notification{},
	)
}

// SeedDefaults inserts the religion list and package catalogue if missing.
func SeedDefaults(db *gorm.DB) {
	for _, name := range []string{"Hindu", "Muslim", "Christian", "Sikh", "Jain", "Buddhist", "Other"} {
		db.Where(models.Religion{Name: name}).FirstOrCreate(&models.Religion{Name: name})
	}
	packages := []models.Package{
		{Name: "SILVER", PriceCents: 49900, ValidityDays: 30, InterestExpressLimit: 25, ContactViewLimit: 10, ImageUploadLimit: 5},
		{Name: "GOLD", PriceCents: 99900, ValidityDays: 90, InterestExpressLimit: 100, ContactViewLimit: 50, ImageUploadLimit: 15},
		{Name: "PLATINUM", PriceCents: 199900, ValidityDays: 180, InterestExpressLimit: domain.Unlimited, ContactViewLimit: domain.Unlimited, ImageUploadLimit: domain.Unlimited},
	}
	for _, p := range packages {
		db.Where(models.Package{Name: p.Name}).FirstOrCreate(&p)
	}
}
