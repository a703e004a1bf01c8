package repository

import (
	"vivah/internal/models"

	"gorm.io/gorm"
)

type ShortlistRepository struct {
	db *gorm.DB
}

func NewShortlistRepository(db *gorm.DB) *ShortlistRepository {
	return &ShortlistRepository{db: db}
}

// Add is idempotent: an existing pair is left untouched.
func (r *ShortlistRepository) Add(userID, targetID uint) error {
	row := models.ShortlistedProfile{UserID: userID, TargetID: targetID}
	return r.db.Where(models.ShortlistedProfile{UserID: userID, TargetID: targetID}).
		FirstOrCreate(&row).Error
}

func (r *ShortlistRepository) Remove(userID, targetID uint) error {
	return r.db.Where("user_id = ? AND target_id = ?", userID, targetID).
		Delete(&models.ShortlistedProfile{}).Error
}

func (r *ShortlistRepository) IsShortlisted(userID, targetID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.ShortlistedProfile{}).
		Where("user_id = ? AND target_id = ?", userID, targetID).Count(&c).Error
	return c > 0, err
}

func (r *ShortlistRepository) List(userID uint, limit, offset int) ([]models.ShortlistedProfile, error) {
	var list []models.ShortlistedProfile
	err := r.db.Where("user_id = ?", userID).
		Preload("Target").Preload("Target.BasicInfo").Preload("Target.BasicInfo.Religion").
		Preload("Target.Limitation").Preload("Target.Limitation.Package").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *ShortlistRepository) Count(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.ShortlistedProfile{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}
