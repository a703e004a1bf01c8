package repository

import (
	"errors"

	"vivah/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository covers the one-to-one profile sections: basic info,
// physical attributes, family, partner expectation.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetBasicInfo(userID uint) (*models.BasicInfo, error) {
	var bi models.BasicInfo
	err := r.db.Preload("Religion").Where("user_id = ?", userID).First(&bi).Error
	if err != nil {
		return nil, err
	}
	return &bi, nil
}

// UpsertBasicInfo writes the basic info section and the user's top-level
// fields in one transaction, mirroring the single atomic update flow the
// profile edit screen performs.
func (r *ProfileRepository) UpsertBasicInfo(userID uint, bi *models.BasicInfo, userUpdates map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BasicInfo
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		switch {
		case err == nil:
			bi.ID = existing.ID
			bi.UserID = userID
			if err := tx.Model(&existing).Updates(bi).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			bi.UserID = userID
			if err := tx.Create(bi).Error; err != nil {
				return err
			}
		default:
			return err
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProfileRepository) GetPhysical(userID uint) (*models.PhysicalAttribute, error) {
	var pa models.PhysicalAttribute
	err := r.db.Where("user_id = ?", userID).First(&pa).Error
	if err != nil {
		return nil, err
	}
	return &pa, nil
}

func (r *ProfileRepository) UpsertPhysical(userID uint, pa *models.PhysicalAttribute) error {
	return r.upsertOneToOne(userID, &models.PhysicalAttribute{}, pa)
}

func (r *ProfileRepository) GetFamily(userID uint) (*models.Family, error) {
	var f models.Family
	err := r.db.Where("user_id = ?", userID).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *ProfileRepository) UpsertFamily(userID uint, f *models.Family) error {
	return r.upsertOneToOne(userID, &models.Family{}, f)
}

func (r *ProfileRepository) GetPartnerExpectation(userID uint) (*models.PartnerExpectation, error) {
	var pe models.PartnerExpectation
	err := r.db.Where("user_id = ?", userID).First(&pe).Error
	if err != nil {
		return nil, err
	}
	return &pe, nil
}

func (r *ProfileRepository) UpsertPartnerExpectation(userID uint, pe *models.PartnerExpectation) error {
	return r.upsertOneToOne(userID, &models.PartnerExpectation{}, pe)
}

// upsertOneToOne implements the updateOrCreate lifecycle for sections keyed
// by a unique user_id.
func (r *ProfileRepository) upsertOneToOne(userID uint, existing, value interface{}) error {
	err := r.db.Where("user_id = ?", userID).First(existing).Error
	switch {
	case err == nil:
		return r.db.Model(existing).Updates(value).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(value).Error
	default:
		return err
	}
}
