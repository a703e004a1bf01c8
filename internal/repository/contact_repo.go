package repository

import (
	"vivah/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db      *gorm.DB
	limRepo *LimitationRepository
}

func NewContactRepository(db *gorm.DB, limRepo *LimitationRepository) *ContactRepository {
	return &ContactRepository{db: db, limRepo: limRepo}
}

func (r *ContactRepository) IsUnlocked(viewerID, targetID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.ContactView{}).
		Where("viewer_id = ? AND target_id = ?", viewerID, targetID).Count(&c).Error
	return c > 0, err
}

// Unlock spends one contact credit and records the view in one transaction.
// Already-unlocked pairs are free: the caller checks IsUnlocked first, and
// the unique pair index keeps a concurrent double-unlock from charging twice
// by failing the second insert.
func (r *ContactRepository) Unlock(viewerID, targetID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.limRepo.Spend(tx, viewerID, CreditContact); err != nil {
			return err
		}
		return tx.Create(&models.ContactView{ViewerID: viewerID, TargetID: targetID}).Error
	})
}

func (r *ContactRepository) ListUnlocked(viewerID uint, limit, offset int) ([]models.ContactView, error) {
	var list []models.ContactView
	err := r.db.Where("viewer_id = ?", viewerID).
		Preload("Target").Preload("Target.BasicInfo").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
