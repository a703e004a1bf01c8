package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vivah/internal/logger"
	"vivah/internal/middleware"
	"vivah/internal/models"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
)

// EducationHandler is owner-scoped CRUD over education rows.
type EducationHandler struct {
	repo       *repository.EducationRepository
	profileSvc *service.ProfileService
}

func NewEducationHandler(repo *repository.EducationRepository, profileSvc *service.ProfileService) *EducationHandler {
	return &EducationHandler{repo: repo, profileSvc: profileSvc}
}

type EducationRequest struct {
	Degree       string `json:"degree" binding:"required"`
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"field_of_study"`
	PassingYear  int    `json:"passing_year"`
}

func (h *EducationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.repo.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list educations")
		return
	}
	response.OK(c, http.StatusOK, list)
}

func (h *EducationHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	e := &models.EducationInfo{
		UserID:       userID,
		Degree:       req.Degree,
		Institution:  req.Institution,
		FieldOfStudy: req.FieldOfStudy,
		PassingYear:  req.PassingYear,
	}
	if err := h.repo.Create(e); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create education")
		return
	}
	if err := h.profileSvc.MarkStepDone(c.Request.Context(), userID, service.StepEducation); err != nil {
		logger.Warn("step tracking failed", "user_id", userID, "err", err)
	}
	response.OK(c, http.StatusCreated, e)
}

func (h *EducationHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	e, err := h.repo.Update(userID, uint(id), &models.EducationInfo{
		Degree:       req.Degree,
		Institution:  req.Institution,
		FieldOfStudy: req.FieldOfStudy,
		PassingYear:  req.PassingYear,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			response.Error(c, http.StatusNotFound, "education not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update education")
		return
	}
	response.OK(c, http.StatusOK, e)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			response.Error(c, http.StatusNotFound, "education not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete education")
		return
	}
	response.Message(c, http.StatusOK, "education removed")
}

// CareerHandler is owner-scoped CRUD over career rows.
type CareerHandler struct {
	repo       *repository.CareerRepository
	profileSvc *service.ProfileService
}

func NewCareerHandler(repo *repository.CareerRepository, profileSvc *service.ProfileService) *CareerHandler {
	return &CareerHandler{repo: repo, profileSvc: profileSvc}
}

type CareerRequest struct {
	Designation string `json:"designation" binding:"required"`
	Company     string `json:"company"`
	StartYear   int    `json:"start_year"`
	EndYear     *int   `json:"end_year"`
}

func (h *CareerHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.repo.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list careers")
		return
	}
	response.OK(c, http.StatusOK, list)
}

func (h *CareerHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	ci := &models.CareerInfo{
		UserID:      userID,
		Designation: req.Designation,
		Company:     req.Company,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	}
	if err := h.repo.Create(ci); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create career")
		return
	}
	if err := h.profileSvc.MarkStepDone(c.Request.Context(), userID, service.StepCareer); err != nil {
		logger.Warn("step tracking failed", "user_id", userID, "err", err)
	}
	response.OK(c, http.StatusCreated, ci)
}

func (h *CareerHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	ci, err := h.repo.Update(userID, uint(id), &models.CareerInfo{
		Designation: req.Designation,
		Company:     req.Company,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			response.Error(c, http.StatusNotFound, "career not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update career")
		return
	}
	response.OK(c, http.StatusOK, ci)
}

func (h *CareerHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			response.Error(c, http.StatusNotFound, "career not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete career")
		return
	}
	response.Message(c, http.StatusOK, "career removed")
}

// GalleryHandler manages image records; each add spends an image credit.
type GalleryHandler struct {
	repo       *repository.GalleryRepository
	profileSvc *service.ProfileService
	formatter  *service.Formatter
}

func NewGalleryHandler(repo *repository.GalleryRepository, profileSvc *service.ProfileService, formatter *service.Formatter) *GalleryHandler {
	return &GalleryHandler{repo: repo, profileSvc: profileSvc, formatter: formatter}
}

func (h *GalleryHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.repo.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list gallery")
		return
	}
	out := make([]gin.H, len(list))
	for i, img := range list {
		out[i] = gin.H{
			"id":         img.ID,
			"image":      h.formatter.ImageURL(img.Image),
			"created_at": img.CreatedAt,
		}
	}
	response.OK(c, http.StatusOK, out)
}

func (h *GalleryHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	img, err := h.repo.Add(userID, req.Image)
	if err != nil {
		if errors.Is(err, repository.ErrNoCredit) {
			response.Error(c, http.StatusPaymentRequired, "image upload limit reached")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to add image")
		return
	}
	h.profileSvc.Invalidate(c.Request.Context(), userID)
	response.OK(c, http.StatusCreated, gin.H{
		"id":    img.ID,
		"image": h.formatter.ImageURL(img.Image),
	})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotOwned) {
			response.Error(c, http.StatusNotFound, "image not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete image")
		return
	}
	h.profileSvc.Invalidate(c.Request.Context(), userID)
	response.Message(c, http.StatusOK, "image removed")
}
