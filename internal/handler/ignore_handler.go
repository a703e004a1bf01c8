package handler

import (
	"net/http"
	"strconv"
	"time"

	"vivah/internal/middleware"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
)

type IgnoreHandler struct {
	repo      *repository.IgnoreRepository
	userRepo  *repository.UserRepository
	formatter *service.Formatter
}

func NewIgnoreHandler(repo *repository.IgnoreRepository, userRepo *repository.UserRepository, formatter *service.Formatter) *IgnoreHandler {
	return &IgnoreHandler{repo: repo, userRepo: userRepo, formatter: formatter}
}

// Add hides a member from every listing the caller sees. Idempotent.
func (h *IgnoreHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		TargetID uint `json:"target_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.TargetID == userID {
		response.Error(c, http.StatusUnprocessableEntity, "cannot ignore yourself")
		return
	}
	if _, err := h.userRepo.GetByID(req.TargetID); err != nil {
		response.Error(c, http.StatusNotFound, "member not found")
		return
	}
	if err := h.repo.Add(userID, req.TargetID); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to ignore member")
		return
	}
	response.Message(c, http.StatusCreated, "member ignored")
}

func (h *IgnoreHandler) Remove(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Remove(userID, uint(targetID)); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to unignore member")
		return
	}
	response.Message(c, http.StatusOK, "member unignored")
}

func (h *IgnoreHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pageWindow(c)
	list, err := h.repo.List(userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list ignored members")
		return
	}
	now := time.Now()
	out := make([]gin.H, len(list))
	for i := range list {
		out[i] = gin.H{
			"id":         list[i].ID,
			"created_at": list[i].CreatedAt,
			"member":     h.formatter.Summary(&list[i].Target, now),
		}
	}
	response.OK(c, http.StatusOK, out)
}
