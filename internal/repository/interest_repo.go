package repository

import (
	"errors"

	"vivah/internal/domain"
	"vivah/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSelfInterest      = errors.New("cannot express interest in yourself")
	ErrDuplicateInterest = errors.New("interest already expressed")
	ErrInterestNotFound  = errors.New("interest not found")
)

type InterestRepository struct {
	db      *gorm.DB
	limRepo *LimitationRepository
}

func NewInterestRepository(db *gorm.DB, limRepo *LimitationRepository) *InterestRepository {
	return &InterestRepository{db: db, limRepo: limRepo}
}

// Express inserts the interest edge and spends one interest credit in a
// single transaction. The unique pair index backstops concurrent duplicates
// that slip past the existence check.
func (r *InterestRepository) Express(senderID, targetID uint) (*models.Interest, error) {
	if senderID == targetID {
		return nil, ErrSelfInterest
	}
	interest := &models.Interest{SenderID: senderID, TargetID: targetID, Status: domain.InterestPending}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Interest{}).
			Where("sender_id = ? AND target_id = ?", senderID, targetID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateInterest
		}
		if err := r.limRepo.Spend(tx, senderID, CreditInterest); err != nil {
			return err
		}
		return tx.Create(interest).Error
	})
	if err != nil {
		return nil, err
	}
	return interest, nil
}

func (r *InterestRepository) Remove(senderID, targetID uint) error {
	res := r.db.Where("sender_id = ? AND target_id = ?", senderID, targetID).Delete(&models.Interest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInterestNotFound
	}
	return nil
}

// Accept flips a pending interest addressed to the given user.
func (r *InterestRepository) Accept(interestID, targetUserID uint) (*models.Interest, error) {
	var interest models.Interest
	err := r.db.Where("id = ? AND target_id = ?", interestID, targetUserID).First(&interest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}
	if interest.Status != domain.InterestAccepted {
		interest.Status = domain.InterestAccepted
		if err := r.db.Model(&interest).Update("status", domain.InterestAccepted).Error; err != nil {
			return nil, err
		}
	}
	return &interest, nil
}

func (r *InterestRepository) GetPair(senderID, targetID uint) (*models.Interest, error) {
	var interest models.Interest
	err := r.db.Where("sender_id = ? AND target_id = ?", senderID, targetID).First(&interest).Error
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

func (r *InterestRepository) ListSent(senderID uint, limit, offset int) ([]models.Interest, error) {
	var list []models.Interest
	err := r.db.Where("sender_id = ?", senderID).
		Preload("Target").Preload("Target.BasicInfo").Preload("Target.BasicInfo.Religion").
		Preload("Target.Limitation").Preload("Target.Limitation.Package").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *InterestRepository) ListReceived(targetID uint, limit, offset int) ([]models.Interest, error) {
	var list []models.Interest
	err := r.db.Where("target_id = ?", targetID).
		Preload("Sender").Preload("Sender.BasicInfo").Preload("Sender.BasicInfo.Religion").
		Preload("Sender.Limitation").Preload("Sender.Limitation.Package").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
