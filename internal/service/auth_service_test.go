package service

import (
	"testing"
	"time"

	"vivah/config"
	"vivah/internal/models"
	"vivah/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access",
			RefreshSecret: "test-refresh",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 24 * time.Hour,
			Issuer:        "vivah-test",
		},
	}
	return NewAuthService(cfg, repository.NewUserRepository(db), repository.NewLimitationRepository(db))
}

func TestRegisterCreatesLimitationRow(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newAuthService(db)

	u, access, refresh, err := svc.Register("Asha", "asha@test.local", "+911", "password123", 1)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "ACTIVE", u.Status)

	var lim models.UserLimitation
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&lim).Error)
	assert.Equal(t, 0, lim.InterestExpressLimit)
	assert.Equal(t, 0, lim.ContactViewLimit)
}

func TestRegisterDuplicateEmailAndMobile(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newAuthService(db)

	_, _, _, err := svc.Register("Asha", "asha@test.local", "+911", "password123", 1)
	require.NoError(t, err)

	_, _, _, err = svc.Register("Other", "asha@test.local", "+912", "password123", 1)
	assert.ErrorIs(t, err, ErrEmailExists)

	_, _, _, err = svc.Register("Other", "other@test.local", "+911", "password123", 1)
	assert.ErrorIs(t, err, ErrMobileExists)
}

func TestLogin(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newAuthService(db)

	_, _, _, err := svc.Register("Asha", "asha@test.local", "+911", "password123", 1)
	require.NoError(t, err)

	u, access, _, err := svc.Login("asha@test.local", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.Equal(t, "Asha", u.Name)

	_, _, _, err = svc.Login("asha@test.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, _, _, err = svc.Login("ghost@test.local", "password123")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestChangePassword(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newAuthService(db)

	u, _, _, err := svc.Register("Asha", "asha@test.local", "+911", "password123", 1)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(u.ID, "wrong", "newpassword1"), ErrInvalidCreds)
	require.NoError(t, svc.ChangePassword(u.ID, "password123", "newpassword1"))

	_, _, _, err = svc.Login("asha@test.local", "newpassword1")
	assert.NoError(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newAuthService(db)

	_, _, refresh, err := svc.Register("Asha", "asha@test.local", "+911", "password123", 1)
	require.NoError(t, err)

	access, newRefresh, err := svc.RefreshToken(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)

	_, _, err = svc.RefreshToken("not-a-token")
	assert.Error(t, err)
}
