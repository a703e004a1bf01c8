package repository

import (
	"vivah/internal/models"

	"gorm.io/gorm"
)

type IgnoreRepository struct {
	db *gorm.DB
}

func NewIgnoreRepository(db *gorm.DB) *IgnoreRepository {
	return &IgnoreRepository{db: db}
}

func (r *IgnoreRepository) Add(userID, targetID uint) error {
	row := models.IgnoredProfile{UserID: userID, TargetID: targetID}
	return r.db.Where(models.IgnoredProfile{UserID: userID, TargetID: targetID}).
		FirstOrCreate(&row).Error
}

func (r *IgnoreRepository) Remove(userID, targetID uint) error {
	return r.db.Where("user_id = ? AND target_id = ?", userID, targetID).
		Delete(&models.IgnoredProfile{}).Error
}

func (r *IgnoreRepository) List(userID uint, limit, offset int) ([]models.IgnoredProfile, error) {
	var list []models.IgnoredProfile
	err := r.db.Where("user_id = ?", userID).
		Preload("Target").Preload("Target.BasicInfo").Preload("Target.BasicInfo.Religion").
		Preload("Target.Limitation").Preload("Target.Limitation.Package").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
