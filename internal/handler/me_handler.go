package handler

import (
	"net/http"
	"time"

	"vivah/internal/cache"
	"vivah/internal/logger"
	"vivah/internal/middleware"
	"vivah/internal/models"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the caller's own denormalized account view.
type MeHandler struct {
	userRepo  *repository.UserRepository
	limRepo   *repository.LimitationRepository
	formatter *service.Formatter
	cache     *cache.ProfileCache
}

func NewMeHandler(userRepo *repository.UserRepository, limRepo *repository.LimitationRepository, formatter *service.Formatter, c *cache.ProfileCache) *MeHandler {
	return &MeHandler{userRepo: userRepo, limRepo: limRepo, formatter: formatter, cache: c}
}

// Info returns the caller's profile summary, plan state and remaining
// credits. Served from the user-info cache when warm; any profile write
// invalidates it.
func (h *MeHandler) Info(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()
	if h.cache != nil {
		var cached map[string]interface{}
		if ok, _ := h.cache.GetUserInfo(ctx, userID, &cached); ok {
			response.OK(c, http.StatusOK, cached)
			return
		}
	}

	u, err := h.userRepo.GetWithProfile(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load account")
		return
	}
	lim, err := h.limRepo.GetOrCreate(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load limits")
		return
	}

	now := time.Now()
	info := gin.H{
		"summary":          h.formatter.Summary(u, now),
		"email":            u.Email,
		"mobile":           u.Mobile,
		"looking_for":      u.LookingFor,
		"steps_completed":  u.StepsCompleted,
		"steps_skipped":    u.StepsSkipped,
		"profile_complete": u.ProfileComplete,
		"plan": gin.H{
			"name":   h.formatter.PlanName(u),
			"expiry": u.PackageExpiry,
			"active": u.HasActivePackage(now),
		},
		"credits": gin.H{
			"interest_express": models.NewCreditView(lim.InterestExpressLimit),
			"contact_view":     models.NewCreditView(lim.ContactViewLimit),
			"image_upload":     models.NewCreditView(lim.ImageUploadLimit),
		},
	}
	if h.cache != nil {
		if err := h.cache.SetUserInfo(ctx, userID, info); err != nil {
			logger.Warn("user info cache write failed", "user_id", userID, "err", err)
		}
	}
	response.OK(c, http.StatusOK, info)
}
