package repository

import (
	"time"

	"vivah/internal/domain"
	"vivah/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *PaymentRepository) GetByOrderID(orderID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.Where("order_id = ?", orderID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByUser(userID uint, limit, offset int) ([]models.Payment, error) {
	var list []models.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// Complete marks the payment captured and, in the same transaction, assigns
// the package to the buyer and resets the limitation counters.
func (r *PaymentRepository) Complete(p *models.Payment, paymentRef string, pkg *models.Package, limRepo *LimitationRepository, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		completed := now
		if err := tx.Model(p).Updates(map[string]interface{}{
			"status":       domain.PaymentCompleted,
			"payment_ref":  paymentRef,
			"completed_at": &completed,
		}).Error; err != nil {
			return err
		}
		expiry := now.AddDate(0, 0, pkg.ValidityDays)
		if err := tx.Model(&models.User{}).Where("id = ?", p.UserID).Updates(map[string]interface{}{
			"package_id":     pkg.ID,
			"package_expiry": &expiry,
		}).Error; err != nil {
			return err
		}
		return limRepo.ApplyPackage(tx, p.UserID, pkg)
	})
}

func (r *PaymentRepository) MarkFailed(p *models.Payment) error {
	return r.db.Model(p).Update("status", domain.PaymentFailed).Error
}
