package service

import (
	"context"
	"errors"

	"vivah/internal/cache"
	"vivah/internal/domain"
	"vivah/internal/models"
	"vivah/internal/repository"

	"gorm.io/gorm"
)

// Registration step names, one per profile section.
const (
	StepBasic     = "basic"
	StepEducation = "education"
	StepCareer    = "career"
	StepFamily    = "family"
	StepPhysical  = "physical"
	StepPartner   = "partner"
)

var ErrUnknownStep = errors.New("unknown registration step")

var registrationSteps = map[string]bool{
	StepBasic:     true,
	StepEducation: true,
	StepCareer:    true,
	StepFamily:    true,
	StepPhysical:  true,
	StepPartner:   true,
}

// ProfileService tracks registration progress per section and keeps the
// cached projections coherent with profile writes.
type ProfileService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
	cache    *cache.ProfileCache
}

func NewProfileService(db *gorm.DB, userRepo *repository.UserRepository, c *cache.ProfileCache) *ProfileService {
	return &ProfileService{db: db, userRepo: userRepo, cache: c}
}

// MarkStepDone records the section as completed. Re-saving a section is
// idempotent: each step counts once no matter how often it is written.
func (s *ProfileService) MarkStepDone(ctx context.Context, userID uint, step string) error {
	return s.record(ctx, userID, step, false)
}

// SkipStep records a skipped section; skipped steps count toward completion.
func (s *ProfileService) SkipStep(ctx context.Context, userID uint, step string) error {
	return s.record(ctx, userID, step, true)
}

func (s *ProfileService) record(ctx context.Context, userID uint, step string, skipped bool) error {
	if !registrationSteps[step] {
		return ErrUnknownStep
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var row models.RegistrationStep
		err := tx.Where("user_id = ? AND step = ?", userID, step).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = models.RegistrationStep{UserID: userID, Step: step, Skipped: skipped}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Completing overrides an earlier skip; skipping never
			// downgrades a completed step.
			if row.Skipped && !skipped {
				if err := tx.Model(&row).Update("skipped", false).Error; err != nil {
					return err
				}
			}
		}
		return syncProgress(tx, userID)
	})
	if err != nil {
		return err
	}
	s.Invalidate(ctx, userID)
	return nil
}

// syncProgress rederives the user's counters from the step rows and flips
// profile_complete once every section is completed or skipped.
func syncProgress(tx *gorm.DB, userID uint) error {
	var completed, skipped int64
	if err := tx.Model(&models.RegistrationStep{}).
		Where("user_id = ? AND skipped = ?", userID, false).Count(&completed).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.RegistrationStep{}).
		Where("user_id = ? AND skipped = ?", userID, true).Count(&skipped).Error; err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"steps_completed":  completed,
		"steps_skipped":    skipped,
		"profile_complete": completed+skipped >= int64(domain.RegistrationSteps),
	}).Error
}

// Invalidate drops the cached projections after any profile write.
func (s *ProfileService) Invalidate(ctx context.Context, userID uint) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}

// Progress returns the registration step counters.
func (s *ProfileService) Progress(userID uint) (completed, skipped int, complete bool, err error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, 0, false, err
	}
	return u.StepsCompleted, u.StepsSkipped, u.ProfileComplete, nil
}
