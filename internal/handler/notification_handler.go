package handler

import (
	"net/http"
	"strconv"

	"vivah/internal/middleware"
	"vivah/internal/repository"
	"vivah/internal/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	repo *repository.NotificationRepository
}

func NewNotificationHandler(repo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pageWindow(c)
	list, err := h.repo.ListByUser(userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	unread, err := h.repo.CountUnread(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to count notifications")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.MarkRead(userID, uint(id)); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	response.Message(c, http.StatusOK, "notification marked read")
}
