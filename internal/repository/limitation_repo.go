package repository

import (
	"errors"

	"vivah/internal/domain"
	"vivah/internal/models"

	"gorm.io/gorm"
)

var ErrNoCredit = errors.New("credit limit exhausted")

// Credit columns. Spend/Refund only accept these, never caller input.
const (
	CreditInterest = "interest_express_limit"
	CreditContact  = "contact_view_limit"
	CreditImage    = "image_upload_limit"
)

type LimitationRepository struct {
	db *gorm.DB
}

func NewLimitationRepository(db *gorm.DB) *LimitationRepository {
	return &LimitationRepository{db: db}
}

func (r *LimitationRepository) GetByUserID(userID uint) (*models.UserLimitation, error) {
	var lim models.UserLimitation
	err := r.db.Preload("Package").Where("user_id = ?", userID).First(&lim).Error
	if err != nil {
		return nil, err
	}
	return &lim, nil
}

func (r *LimitationRepository) GetOrCreate(userID uint) (*models.UserLimitation, error) {
	lim, err := r.GetByUserID(userID)
	if err == nil {
		return lim, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	lim = &models.UserLimitation{UserID: userID}
	if err := r.db.Create(lim).Error; err != nil {
		return nil, err
	}
	return lim, nil
}

// Spend consumes one credit from the given column. The decrement is a single
// conditional UPDATE so concurrent spends cannot take the counter below zero.
// The unlimited sentinel is never decremented. Pass a transaction handle when
// the spend must be atomic with another write.
func (r *LimitationRepository) Spend(tx *gorm.DB, userID uint, column string) error {
	if tx == nil {
		tx = r.db
	}
	var lim models.UserLimitation
	if err := tx.Where("user_id = ?", userID).First(&lim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoCredit
		}
		return err
	}
	if creditValue(&lim, column) == domain.Unlimited {
		return nil
	}
	res := tx.Model(&models.UserLimitation{}).
		Where("user_id = ? AND "+column+" > 0", userID).
		UpdateColumn(column, gorm.Expr(column+" - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoCredit
	}
	return nil
}

// Refund returns one credit (used when a follow-up write in the same flow
// fails outside a transaction). No-op for unlimited counters.
func (r *LimitationRepository) Refund(tx *gorm.DB, userID uint, column string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&models.UserLimitation{}).
		Where("user_id = ? AND "+column+" <> ?", userID, domain.Unlimited).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

// ApplyPackage resets the counters from the purchased package limits.
func (r *LimitationRepository) ApplyPackage(tx *gorm.DB, userID uint, pkg *models.Package) error {
	if tx == nil {
		tx = r.db
	}
	lim := models.UserLimitation{UserID: userID}
	if err := tx.Where(models.UserLimitation{UserID: userID}).FirstOrCreate(&lim).Error; err != nil {
		return err
	}
	return tx.Model(&lim).Updates(map[string]interface{}{
		"package_id":             pkg.ID,
		"interest_express_limit": pkg.InterestExpressLimit,
		"contact_view_limit":     pkg.ContactViewLimit,
		"image_upload_limit":     pkg.ImageUploadLimit,
	}).Error
}

func creditValue(lim *models.UserLimitation, column string) int {
	switch column {
	case CreditInterest:
		return lim.InterestExpressLimit
	case CreditContact:
		return lim.ContactViewLimit
	case CreditImage:
		return lim.ImageUploadLimit
	}
	return 0
}
