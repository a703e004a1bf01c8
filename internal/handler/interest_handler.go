package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"vivah/internal/logger"
	"vivah/internal/middleware"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	repo      *repository.InterestRepository
	userRepo  *repository.UserRepository
	formatter *service.Formatter
	notifier  *service.NotificationService
}

func NewInterestHandler(repo *repository.InterestRepository, userRepo *repository.UserRepository, formatter *service.Formatter, notifier *service.NotificationService) *InterestHandler {
	return &InterestHandler{repo: repo, userRepo: userRepo, formatter: formatter, notifier: notifier}
}

// Express charges one interest credit and creates the edge. Duplicate and
// self edges are rejected before any credit is spent.
func (h *InterestHandler) Express(c *gin.Context) {
	senderID := middleware.GetUserID(c)
	targetID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || targetID64 == 0 {
		response.Error(c, http.StatusUnprocessableEntity, "invalid member id")
		return
	}
	targetID := uint(targetID64)
	if _, err := h.userRepo.GetByID(targetID); err != nil {
		response.Error(c, http.StatusNotFound, "member not found")
		return
	}
	interest, err := h.repo.Express(senderID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSelfInterest):
			response.Error(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, repository.ErrDuplicateInterest):
			response.Error(c, http.StatusConflict, err.Error())
		case errors.Is(err, repository.ErrNoCredit):
			response.Error(c, http.StatusPaymentRequired, "interest limit reached")
		default:
			logger.Error("express interest failed", "sender_id", senderID, "target_id", targetID, "err", err)
			response.Error(c, http.StatusInternalServerError, "failed to express interest")
		}
		return
	}
	if sender, err := h.userRepo.GetByID(senderID); err == nil {
		if err := h.notifier.NotifyInterestReceived(targetID, interest.ID, sender.Name); err != nil {
			logger.Warn("interest notification failed", "interest_id", interest.ID, "err", err)
		}
	}
	response.OK(c, http.StatusCreated, interest)
}

func (h *InterestHandler) Remove(c *gin.Context) {
	senderID := middleware.GetUserID(c)
	targetID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Remove(senderID, uint(targetID)); err != nil {
		if errors.Is(err, repository.ErrInterestNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to remove interest")
		return
	}
	response.Message(c, http.StatusOK, "interest removed")
}

// Accept flips a pending interest addressed to the caller and notifies the
// sender. Accepting an already-accepted interest is a no-op.
func (h *InterestHandler) Accept(c *gin.Context) {
	userID := middleware.GetUserID(c)
	interestID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	interest, err := h.repo.Accept(uint(interestID), userID)
	if err != nil {
		if errors.Is(err, repository.ErrInterestNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to accept interest")
		return
	}
	if target, err := h.userRepo.GetByID(userID); err == nil {
		if err := h.notifier.NotifyInterestAccepted(interest.SenderID, interest.ID, target.Name); err != nil {
			logger.Warn("accept notification failed", "interest_id", interest.ID, "err", err)
		}
	}
	response.OK(c, http.StatusOK, interest)
}

func (h *InterestHandler) ListSent(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pageWindow(c)
	list, err := h.repo.ListSent(userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list interests")
		return
	}
	now := time.Now()
	out := make([]gin.H, len(list))
	for i := range list {
		out[i] = gin.H{
			"id":         list[i].ID,
			"status":     list[i].Status,
			"created_at": list[i].CreatedAt,
			"member":     h.formatter.Summary(&list[i].Target, now),
		}
	}
	response.OK(c, http.StatusOK, out)
}

func (h *InterestHandler) ListReceived(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pageWindow(c)
	list, err := h.repo.ListReceived(userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list interests")
		return
	}
	now := time.Now()
	out := make([]gin.H, len(list))
	for i := range list {
		out[i] = gin.H{
			"id":         list[i].ID,
			"status":     list[i].Status,
			"created_at": list[i].CreatedAt,
			"member":     h.formatter.Summary(&list[i].Sender, now),
		}
	}
	response.OK(c, http.StatusOK, out)
}

// pageWindow converts ?page/?per_page into a limit/offset pair.
func pageWindow(c *gin.Context) (limit, offset int) {
	page := atoiDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit = atoiDefault(c.Query("per_page"), 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}
