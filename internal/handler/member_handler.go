package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"vivah/internal/cache"
	"vivah/internal/domain"
	"vivah/internal/logger"
	"vivah/internal/middleware"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MemberHandler serves the candidate listing, detail and search endpoints.
type MemberHandler struct {
	listingRepo *repository.ListingRepository
	profileRepo *repository.ProfileRepository
	formatter   *service.Formatter
	cache       *cache.ProfileCache
}

func NewMemberHandler(listingRepo *repository.ListingRepository, profileRepo *repository.ProfileRepository, formatter *service.Formatter, c *cache.ProfileCache) *MemberHandler {
	return &MemberHandler{listingRepo: listingRepo, profileRepo: profileRepo, formatter: formatter, cache: c}
}

// List returns one page of the selected segment: all, recommended or
// newly_joined.
func (h *MemberHandler) List(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	now := time.Now()

	f := repository.ListingFilters{
		ViewerID: viewerID,
		Segment:  c.DefaultQuery("segment", domain.SegmentAll),
		Page:     atoiDefault(c.Query("page"), 1),
		PerPage:  atoiDefault(c.Query("per_page"), 20),
		Now:      now,
	}
	if lf, err := strconv.Atoi(c.Query("looking_for")); err == nil {
		f.LookingFor = lf
	}

	// Viewer context: gender complement plus, for recommended, religion,
	// caste and the partner-preferred age band. An unknown viewer gender
	// means no gender filter at all.
	viewerInfo, err := h.profileRepo.GetBasicInfo(viewerID)
	if err == nil {
		f.Gender = domain.OppositeGender(viewerInfo.Gender)
		if f.Segment == domain.SegmentRecommended {
			f.ReligionID = viewerInfo.ReligionID
			f.ViewerCaste = viewerInfo.Caste
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusInternalServerError, "failed to load viewer profile")
		return
	}
	if f.Segment == domain.SegmentRecommended {
		if pe, err := h.profileRepo.GetPartnerExpectation(viewerID); err == nil {
			f.MinAge, f.MaxAge = pe.MinAge, pe.MaxAge
		}
	}

	users, page, err := h.listingRepo.ListMembers(f)
	if err != nil {
		logger.Error("member listing failed", "viewer_id", viewerID, "segment", f.Segment, "err", err)
		response.Error(c, http.StatusInternalServerError, "failed to list members")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"members":    h.formatter.Summaries(users, now),
		"pagination": page,
	})
}

// Detail returns the full profile with all relations, served from the
// projection cache when warm.
func (h *MemberHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusUnprocessableEntity, "invalid member id")
		return
	}
	ctx := c.Request.Context()
	if h.cache != nil {
		var cached map[string]interface{}
		if ok, _ := h.cache.GetProfile(ctx, uint(id), &cached); ok {
			response.OK(c, http.StatusOK, cached)
			return
		}
	}
	u, err := h.listingRepo.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "member not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load member")
		return
	}
	now := time.Now()
	detail := gin.H{
		"summary":             h.formatter.Summary(u, now),
		"basic_info":          u.BasicInfo,
		"physical_attribute":  u.PhysicalAttribute,
		"family":              u.Family,
		"partner_expectation": u.PartnerExpectation,
		"educations":          u.Educations,
		"careers":             u.Careers,
		"gallery":             u.Gallery,
	}
	if h.cache != nil {
		if err := h.cache.SetProfile(ctx, uint(id), detail); err != nil {
			logger.Warn("profile cache write failed", "member_id", id, "err", err)
		}
	}
	response.OK(c, http.StatusOK, detail)
}

// Search runs the structured member search.
func (h *MemberHandler) Search(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	now := time.Now()

	f := repository.SearchFilters{
		ViewerID:      viewerID,
		Caste:         c.Query("caste"),
		MaritalStatus: c.Query("marital_status"),
		City:          c.Query("city"),
		Query:         c.Query("q"),
		Page:          atoiDefault(c.Query("page"), 1),
		PerPage:       atoiDefault(c.Query("per_page"), 20),
		Now:           now,
	}
	if v, err := strconv.Atoi(c.Query("min_age")); err == nil {
		f.MinAge = &v
	}
	if v, err := strconv.Atoi(c.Query("max_age")); err == nil {
		f.MaxAge = &v
	}
	if v, err := strconv.ParseUint(c.Query("religion_id"), 10, 64); err == nil {
		rid := uint(v)
		f.ReligionID = &rid
	}
	if viewerInfo, err := h.profileRepo.GetBasicInfo(viewerID); err == nil {
		f.Gender = domain.OppositeGender(viewerInfo.Gender)
	}

	users, page, err := h.listingRepo.SearchMembers(f)
	if err != nil {
		logger.Error("member search failed", "viewer_id", viewerID, "err", err)
		response.Error(c, http.StatusInternalServerError, "search failed")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"members":    h.formatter.Summaries(users, now),
		"pagination": page,
	})
}

func atoiDefault(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
