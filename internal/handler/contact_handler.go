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

type ContactHandler struct {
	repo      *repository.ContactRepository
	userRepo  *repository.UserRepository
	formatter *service.Formatter
	notifier  *service.NotificationService
}

func NewContactHandler(repo *repository.ContactRepository, userRepo *repository.UserRepository, formatter *service.Formatter, notifier *service.NotificationService) *ContactHandler {
	return &ContactHandler{repo: repo, userRepo: userRepo, formatter: formatter, notifier: notifier}
}

// Unlock reveals a member's contact details. Requires an active package and
// one contact credit; a previously unlocked member is returned again without
// charging.
func (h *ContactHandler) Unlock(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, http.StatusUnprocessableEntity, "invalid member id")
		return
	}
	if uint(targetID) == viewerID {
		response.Error(c, http.StatusUnprocessableEntity, "cannot unlock your own contact")
		return
	}

	viewer, err := h.userRepo.GetByID(viewerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load account")
		return
	}
	target, err := h.userRepo.GetByID(uint(targetID))
	if err != nil {
		response.Error(c, http.StatusNotFound, "member not found")
		return
	}

	unlocked, err := h.repo.IsUnlocked(viewerID, uint(targetID))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to check contact status")
		return
	}
	if !unlocked {
		if !viewer.HasActivePackage(time.Now()) {
			response.Error(c, http.StatusForbidden, "an active package is required to view contact details")
			return
		}
		if err := h.repo.Unlock(viewerID, uint(targetID)); err != nil {
			if errors.Is(err, repository.ErrNoCredit) {
				response.Error(c, http.StatusPaymentRequired, "contact view limit reached")
				return
			}
			logger.Error("contact unlock failed", "viewer_id", viewerID, "target_id", targetID, "err", err)
			response.Error(c, http.StatusInternalServerError, "failed to unlock contact")
			return
		}
		if err := h.notifier.NotifyContactUnlocked(uint(targetID), viewer.Name); err != nil {
			logger.Warn("contact notification failed", "target_id", targetID, "err", err)
		}
	}

	response.OK(c, http.StatusOK, gin.H{
		"member_id": target.ID,
		"name":      target.Name,
		"mobile":    target.Mobile,
		"email":     target.Email,
	})
}

func (h *ContactHandler) ListUnlocked(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	limit, offset := pageWindow(c)
	list, err := h.repo.ListUnlocked(viewerID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list unlocked contacts")
		return
	}
	now := time.Now()
	out := make([]gin.H, len(list))
	for i := range list {
		out[i] = gin.H{
			"unlocked_at": list[i].CreatedAt,
			"member":      h.formatter.Summary(&list[i].Target, now),
			"mobile":      list[i].Target.Mobile,
			"email":       list[i].Target.Email,
		}
	}
	response.OK(c, http.StatusOK, out)
}
