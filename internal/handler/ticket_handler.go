package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vivah/internal/domain"
	"vivah/internal/middleware"
	"vivah/internal/models"
	"vivah/internal/repository"
	"vivah/internal/response"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	repo *repository.TicketRepository
}

func NewTicketHandler(repo *repository.TicketRepository) *TicketHandler {
	return &TicketHandler{repo: repo}
}

type TicketRequest struct {
	Subject  string `json:"subject" binding:"required,max=255"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = "NORMAL"
	}
	t := &models.SupportTicket{
		UserID:   userID,
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: priority,
		Status:   domain.TicketOpen,
	}
	if err := h.repo.Create(t); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create ticket")
		return
	}
	response.OK(c, http.StatusCreated, t)
}

func (h *TicketHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pageWindow(c)
	list, err := h.repo.ListByUser(userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list tickets")
		return
	}
	response.OK(c, http.StatusOK, list)
}

func (h *TicketHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	t, err := h.repo.GetOwned(userID, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load ticket")
		return
	}
	response.OK(c, http.StatusOK, t)
}

// Reply appends a message to an open ticket. Closed tickets reject replies.
func (h *TicketHandler) Reply(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	t, err := h.repo.GetOwned(userID, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load ticket")
		return
	}
	if t.Status == domain.TicketClosed {
		response.Error(c, http.StatusConflict, "ticket is closed")
		return
	}
	reply := &models.TicketReply{TicketID: t.ID, UserID: userID, Message: req.Message}
	if err := h.repo.AddReply(reply); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to add reply")
		return
	}
	response.OK(c, http.StatusCreated, reply)
}

func (h *TicketHandler) Close(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Close(userID, uint(id)); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to close ticket")
		return
	}
	response.Message(c, http.StatusOK, "ticket closed")
}
