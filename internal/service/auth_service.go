package service

import (
	"errors"

	"vivah/config"
	"vivah/internal/auth"
	"vivah/internal/models"
	"vivah/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrMobileExists = errors.New("mobile number already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
	limRepo  *repository.LimitationRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, limRepo *repository.LimitationRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, limRepo: limRepo}
}

func (s *AuthService) Register(name, email, mobile, password string, lookingFor int) (*models.User, string, string, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	if _, err := s.userRepo.GetByMobile(mobile); err == nil {
		return nil, "", "", ErrMobileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: string(hash),
		Status:       "ACTIVE",
		LookingFor:   lookingFor,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", "", err
	}
	// Every member starts with an empty limitation row (all counters zero)
	// until a package purchase resets them.
	if _, err := s.limRepo.GetOrCreate(u.ID); err != nil {
		return nil, "", "", err
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email)
	if err != nil {
		return u, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return u, access, "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, _ := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email)
	refresh, _ := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	return u, access, refresh, nil
}

func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.userRepo.Update(u)
}

func (s *AuthService) RefreshToken(refreshToken string) (access, refresh string, err error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", "", err
	}
	access, _ = auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email)
	refresh, _ = auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	return access, refresh, nil
}
