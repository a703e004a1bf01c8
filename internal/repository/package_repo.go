package repository

import (
	"vivah/internal/models"

	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) ListActive() ([]models.Package, error) {
	var list []models.Package
	err := r.db.Where("is_active = ?", true).Order("price_cents ASC").Find(&list).Error
	return list, err
}

func (r *PackageRepository) GetByID(id uint) (*models.Package, error) {
	var p models.Package
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
