package repository

import (
	"testing"

	"vivah/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockSpendsContactCredit(t *testing.T) {
	db := newTestDB(t)
	limRepo := NewLimitationRepository(db)
	repo := NewContactRepository(db, limRepo)
	seedLimits(t, db, 1, 0, 2, 0)

	require.NoError(t, repo.Unlock(1, 2))

	ok, err := repo.IsUnlocked(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	lim, err := limRepo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, lim.ContactViewLimit)
}

func TestUnlockWithoutCredit(t *testing.T) {
	db := newTestDB(t)
	limRepo := NewLimitationRepository(db)
	repo := NewContactRepository(db, limRepo)
	seedLimits(t, db, 1, 0, 0, 0)

	assert.ErrorIs(t, repo.Unlock(1, 2), ErrNoCredit)

	ok, err := repo.IsUnlocked(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnlockUnlimited(t *testing.T) {
	db := newTestDB(t)
	limRepo := NewLimitationRepository(db)
	repo := NewContactRepository(db, limRepo)
	seedLimits(t, db, 1, 0, domain.Unlimited, 0)

	require.NoError(t, repo.Unlock(1, 2))
	require.NoError(t, repo.Unlock(1, 3))

	lim, err := limRepo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, domain.Unlimited, lim.ContactViewLimit)
}
