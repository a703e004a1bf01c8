package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryAddSpendsImageCredit(t *testing.T) {
	db := newTestDB(t)
	repo := NewGalleryRepository(db, NewLimitationRepository(db))
	seedLimits(t, db, 1, 0, 0, 1)

	img, err := repo.Add(1, "a.jpg")
	require.NoError(t, err)
	require.NotZero(t, img.ID)

	lim, err := NewLimitationRepository(db).GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 0, lim.ImageUploadLimit)

	_, err = repo.Add(1, "b.jpg")
	assert.ErrorIs(t, err, ErrNoCredit)
}

func TestGalleryDeleteRefundsCredit(t *testing.T) {
	db := newTestDB(t)
	limRepo := NewLimitationRepository(db)
	repo := NewGalleryRepository(db, limRepo)
	seedLimits(t, db, 1, 0, 0, 1)

	img, err := repo.Add(1, "a.jpg")
	require.NoError(t, err)

	// Slot is gone until the image is removed.
	_, err = repo.Add(1, "b.jpg")
	require.ErrorIs(t, err, ErrNoCredit)

	require.NoError(t, repo.Delete(1, img.ID))
	lim, err := limRepo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, lim.ImageUploadLimit)

	_, err = repo.Add(1, "b.jpg")
	assert.NoError(t, err)
}

func TestGalleryDeleteUnknownIDNoRefund(t *testing.T) {
	db := newTestDB(t)
	limRepo := NewLimitationRepository(db)
	repo := NewGalleryRepository(db, limRepo)
	seedLimits(t, db, 1, 0, 0, 3)

	assert.ErrorIs(t, repo.Delete(1, 999), ErrNotOwned)

	lim, err := limRepo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 3, lim.ImageUploadLimit)
}

func TestGalleryDeleteOtherUsersImage(t *testing.T) {
	db := newTestDB(t)
	limRepo := NewLimitationRepository(db)
	repo := NewGalleryRepository(db, limRepo)
	seedLimits(t, db, 1, 0, 0, 3)
	seedLimits(t, db, 2, 0, 0, 3)

	img, err := repo.Add(1, "a.jpg")
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(2, img.ID), ErrNotOwned)

	lim, err := limRepo.GetByUserID(2)
	require.NoError(t, err)
	assert.Equal(t, 3, lim.ImageUploadLimit)
}
