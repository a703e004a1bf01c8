package handler

import (
	"errors"
	"net/http"

	"vivah/internal/logger"
	"vivah/internal/middleware"
	"vivah/internal/response"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=128"`
	Email      string `json:"email" binding:"required,email"`
	Mobile     string `json:"mobile" binding:"required,min=7,max=32"`
	Password   string `json:"password" binding:"required,min=8"`
	LookingFor int    `json:"looking_for" binding:"required,oneof=1 2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u, access, refresh, err := h.svc.Register(req.Name, req.Email, req.Mobile, req.Password, req.LookingFor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrMobileExists):
			response.Error(c, http.StatusConflict, err.Error())
		default:
			logger.Error("register failed", "email", req.Email, "err", err)
			response.Error(c, http.StatusInternalServerError, "registration failed")
		}
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"user":          u,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u, access, refresh, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			response.Error(c, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Error("login failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "login failed")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"user":          u,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	access, refresh, err := h.svc.RefreshToken(req.RefreshToken)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			response.Error(c, http.StatusUnauthorized, "current password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "password change failed")
		return
	}
	response.Message(c, http.StatusOK, "password updated")
}
