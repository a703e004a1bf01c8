package repository

import (
	"errors"

	"vivah/internal/domain"
	"vivah/internal/models"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(t *models.SupportTicket) error {
	return r.db.Create(t).Error
}

func (r *TicketRepository) ListByUser(userID uint, limit, offset int) ([]models.SupportTicket, error) {
	var list []models.SupportTicket
	err := r.db.Where("user_id = ?", userID).Preload("Replies").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *TicketRepository) GetOwned(userID, id uint) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := r.db.Where("id = ? AND user_id = ?", id, userID).Preload("Replies").First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) AddReply(reply *models.TicketReply) error {
	return r.db.Create(reply).Error
}

func (r *TicketRepository) Close(userID, id uint) error {
	res := r.db.Model(&models.SupportTicket{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", domain.TicketClosed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}
