package handler

import (
	"errors"
	"net/http"

	"vivah/internal/domain"
	"vivah/internal/logger"
	"vivah/internal/middleware"
	"vivah/internal/models"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	repo       *repository.ProfileRepository
	profileSvc *service.ProfileService
}

func NewProfileHandler(repo *repository.ProfileRepository, profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{repo: repo, profileSvc: profileSvc}
}

type BasicInfoRequest struct {
	Gender         string `json:"gender" binding:"required"`
	BirthDate      string `json:"birth_date"` // YYYY-MM-DD; "N/A"/empty tolerated
	ReligionID     *uint  `json:"religion_id"`
	Caste          string `json:"caste"`
	MaritalStatus  string `json:"marital_status"`
	MotherTongue   string `json:"mother_tongue"`
	Profession     string `json:"profession"`
	City           string `json:"city"`
	State          string `json:"state"`
	PresentCity    string `json:"present_city"`
	PresentState   string `json:"present_state"`
	PermanentCity  string `json:"permanent_city"`
	PermanentState string `json:"permanent_state"`
}

func (h *ProfileHandler) GetBasicInfo(c *gin.Context) {
	userID := middleware.GetUserID(c)
	bi, err := h.repo.GetBasicInfo(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "basic info not set")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load basic info")
		return
	}
	response.OK(c, http.StatusOK, bi)
}

// UpdateBasicInfo normalizes gender and birth date at the boundary, then
// writes the section and the user flags in one transaction.
func (h *ProfileHandler) UpdateBasicInfo(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req BasicInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	gender := domain.NormalizeGender(req.Gender)
	if gender == "" {
		response.Error(c, http.StatusUnprocessableEntity, "unrecognized gender value")
		return
	}
	bi := &models.BasicInfo{
		Gender:         gender,
		BirthDate:      service.ParseBirthDate(req.BirthDate),
		ReligionID:     req.ReligionID,
		Caste:          req.Caste,
		MaritalStatus:  req.MaritalStatus,
		MotherTongue:   req.MotherTongue,
		Profession:     req.Profession,
		City:           req.City,
		State:          req.State,
		PresentCity:    req.PresentCity,
		PresentState:   req.PresentState,
		PermanentCity:  req.PermanentCity,
		PermanentState: req.PermanentState,
	}
	if err := h.repo.UpsertBasicInfo(userID, bi, nil); err != nil {
		logger.Error("basic info upsert failed", "user_id", userID, "err", err)
		response.Error(c, http.StatusInternalServerError, "failed to save basic info")
		return
	}
	if err := h.profileSvc.MarkStepDone(c.Request.Context(), userID, service.StepBasic); err != nil {
		logger.Warn("step tracking failed", "user_id", userID, "err", err)
	}
	response.OK(c, http.StatusOK, bi)
}

type PhysicalRequest struct {
	HeightCm   int    `json:"height_cm"`
	WeightKg   int    `json:"weight_kg"`
	Complexion string `json:"complexion"`
	BloodGroup string `json:"blood_group"`
	Disability string `json:"disability"`
}

func (h *ProfileHandler) UpdatePhysical(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req PhysicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	pa := &models.PhysicalAttribute{
		UserID:     userID,
		HeightCm:   req.HeightCm,
		WeightKg:   req.WeightKg,
		Complexion: req.Complexion,
		BloodGroup: req.BloodGroup,
		Disability: req.Disability,
	}
	if err := h.repo.UpsertPhysical(userID, pa); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save physical attributes")
		return
	}
	if err := h.profileSvc.MarkStepDone(c.Request.Context(), userID, service.StepPhysical); err != nil {
		logger.Warn("step tracking failed", "user_id", userID, "err", err)
	}
	response.OK(c, http.StatusOK, pa)
}

type FamilyRequest struct {
	FatherName       string `json:"father_name"`
	FatherProfession string `json:"father_profession"`
	MotherName       string `json:"mother_name"`
	MotherProfession string `json:"mother_profession"`
	Brothers         int    `json:"brothers"`
	Sisters          int    `json:"sisters"`
	FamilyType       string `json:"family_type"`
}

func (h *ProfileHandler) UpdateFamily(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	f := &models.Family{
		UserID:           userID,
		FatherName:       req.FatherName,
		FatherProfession: req.FatherProfession,
		MotherName:       req.MotherName,
		MotherProfession: req.MotherProfession,
		Brothers:         req.Brothers,
		Sisters:          req.Sisters,
		FamilyType:       req.FamilyType,
	}
	if err := h.repo.UpsertFamily(userID, f); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save family info")
		return
	}
	if err := h.profileSvc.MarkStepDone(c.Request.Context(), userID, service.StepFamily); err != nil {
		logger.Warn("step tracking failed", "user_id", userID, "err", err)
	}
	response.OK(c, http.StatusOK, f)
}

type PartnerExpectationRequest struct {
	MinAge        *int   `json:"min_age"`
	MaxAge        *int   `json:"max_age"`
	ReligionID    *uint  `json:"religion_id"`
	Caste         string `json:"caste"`
	MaritalStatus string `json:"marital_status"`
	MinHeightCm   *int   `json:"min_height_cm"`
	Description   string `json:"description"`
}

func (h *ProfileHandler) UpdatePartnerExpectation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req PartnerExpectationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		response.Error(c, http.StatusUnprocessableEntity, "min_age cannot exceed max_age")
		return
	}
	pe := &models.PartnerExpectation{
		UserID:        userID,
		MinAge:        req.MinAge,
		MaxAge:        req.MaxAge,
		ReligionID:    req.ReligionID,
		Caste:         req.Caste,
		MaritalStatus: req.MaritalStatus,
		MinHeightCm:   req.MinHeightCm,
		Description:   req.Description,
	}
	if err := h.repo.UpsertPartnerExpectation(userID, pe); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save partner expectation")
		return
	}
	if err := h.profileSvc.MarkStepDone(c.Request.Context(), userID, service.StepPartner); err != nil {
		logger.Warn("step tracking failed", "user_id", userID, "err", err)
	}
	response.OK(c, http.StatusOK, pe)
}

// SkipStep lets the client skip a named registration section; skipped
// sections still count toward profile completion.
func (h *ProfileHandler) SkipStep(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Step string `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.profileSvc.SkipStep(c.Request.Context(), userID, req.Step); err != nil {
		if errors.Is(err, service.ErrUnknownStep) {
			response.Error(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to skip step")
		return
	}
	completed, skipped, complete, err := h.profileSvc.Progress(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load progress")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"steps_completed":  completed,
		"steps_skipped":    skipped,
		"profile_complete": complete,
	})
}
