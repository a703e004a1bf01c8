package service

import (
	"encoding/json"

	"vivah/internal/models"
	"vivah/internal/repository"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Notify(userID uint, notifType, title, body string, data map[string]interface{}) error {
	var dataJSON string
	if data != nil {
		b, _ := json.Marshal(data)
		dataJSON = string(b)
	}
	return s.repo.Create(&models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   dataJSON,
	})
}

func (s *NotificationService) NotifyInterestReceived(targetUserID, interestID uint, senderName string) error {
	return s.Notify(targetUserID, "INTEREST_RECEIVED", "New interest", senderName+" has expressed interest in you", map[string]interface{}{"interest_id": interestID})
}

func (s *NotificationService) NotifyInterestAccepted(senderUserID, interestID uint, targetName string) error {
	return s.Notify(senderUserID, "INTEREST_ACCEPTED", "Interest accepted", targetName+" accepted your interest", map[string]interface{}{"interest_id": interestID})
}

func (s *NotificationService) NotifyContactUnlocked(targetUserID uint, viewerName string) error {
	return s.Notify(targetUserID, "CONTACT_VIEWED", "Contact viewed", viewerName+" viewed your contact details", nil)
}

func (s *NotificationService) NotifyPaymentConfirmed(userID uint, packageName string, amountCents int64) error {
	return s.Notify(userID, "PAYMENT_CONFIRMED", "Payment confirmed", "Your "+packageName+" plan is now active.", map[string]interface{}{"amount_cents": amountCents})
}
