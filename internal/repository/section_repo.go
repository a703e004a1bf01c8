package repository

import (
	"errors"

	"vivah/internal/models"

	"gorm.io/gorm"
)

var ErrNotOwned = errors.New("record not found for this user")

// EducationRepository is owner-scoped CRUD over education rows.
type EducationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) List(userID uint) ([]models.EducationInfo, error) {
	var list []models.EducationInfo
	err := r.db.Where("user_id = ?", userID).Order("passing_year DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *EducationRepository) Create(e *models.EducationInfo) error {
	return r.db.Create(e).Error
}

func (r *EducationRepository) Update(userID, id uint, updates *models.EducationInfo) (*models.EducationInfo, error) {
	var e models.EducationInfo
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwned
		}
		return nil, err
	}
	if err := r.db.Model(&e).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EducationRepository) Delete(userID, id uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.EducationInfo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotOwned
	}
	return nil
}

// CareerRepository is owner-scoped CRUD over career rows.
type CareerRepository struct {
	db *gorm.DB
}

func NewCareerRepository(db *gorm.DB) *CareerRepository {
	return &CareerRepository{db: db}
}

func (r *CareerRepository) List(userID uint) ([]models.CareerInfo, error) {
	var list []models.CareerInfo
	err := r.db.Where("user_id = ?", userID).Order("start_year DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *CareerRepository) Create(c *models.CareerInfo) error {
	return r.db.Create(c).Error
}

func (r *CareerRepository) Update(userID, id uint, updates *models.CareerInfo) (*models.CareerInfo, error) {
	var ci models.CareerInfo
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&ci).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwned
		}
		return nil, err
	}
	if err := r.db.Model(&ci).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *CareerRepository) Delete(userID, id uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CareerInfo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotOwned
	}
	return nil
}

// GalleryRepository stores image records. Adding a row spends one image
// credit in the same transaction.
type GalleryRepository struct {
	db      *gorm.DB
	limRepo *LimitationRepository
}

func NewGalleryRepository(db *gorm.DB, limRepo *LimitationRepository) *GalleryRepository {
	return &GalleryRepository{db: db, limRepo: limRepo}
}

func (r *GalleryRepository) List(userID uint) ([]models.GalleryImage, error) {
	var list []models.GalleryImage
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&list).Error
	return list, err
}

func (r *GalleryRepository) Add(userID uint, image string) (*models.GalleryImage, error) {
	img := &models.GalleryImage{UserID: userID, Image: image}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.limRepo.Spend(tx, userID, CreditImage); err != nil {
			return err
		}
		return tx.Create(img).Error
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Delete removes the image and refunds the credit it spent, so the slot
// can be reused. Refund is a no-op on unlimited ledgers.
func (r *GalleryRepository) Delete(userID, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.GalleryImage{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotOwned
		}
		return r.limRepo.Refund(tx, userID, CreditImage)
	})
}
