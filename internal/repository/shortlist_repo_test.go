package repository

import (
	"testing"

	"vivah/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortlistAddIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewShortlistRepository(db)

	require.NoError(t, repo.Add(1, 2))
	require.NoError(t, repo.Add(1, 2))

	count, err := repo.Count(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestShortlistRemove(t *testing.T) {
	db := newTestDB(t)
	repo := NewShortlistRepository(db)

	require.NoError(t, repo.Add(1, 2))
	require.NoError(t, repo.Remove(1, 2))

	ok, err := repo.IsShortlisted(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShortlistRemoveThenReAdd(t *testing.T) {
	db := newTestDB(t)
	repo := NewShortlistRepository(db)

	require.NoError(t, repo.Add(1, 2))
	require.NoError(t, repo.Remove(1, 2))

	// A removed pair must not keep holding the unique index.
	require.NoError(t, repo.Add(1, 2))
	ok, err := repo.IsShortlisted(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestShortlistIsPrivatePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewShortlistRepository(db)

	require.NoError(t, repo.Add(1, 3))
	require.NoError(t, repo.Add(2, 3))

	var rows []models.ShortlistedProfile
	require.NoError(t, db.Find(&rows).Error)
	assert.Len(t, rows, 2)

	count, err := repo.Count(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestIgnoreAddIdempotentAndRemove(t *testing.T) {
	db := newTestDB(t)
	repo := NewIgnoreRepository(db)

	require.NoError(t, repo.Add(1, 2))
	require.NoError(t, repo.Add(1, 2))

	var count int64
	require.NoError(t, db.Model(&models.IgnoredProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.Remove(1, 2))
	require.NoError(t, db.Model(&models.IgnoredProfile{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Unignoring frees the pair for a later re-ignore.
	require.NoError(t, repo.Add(1, 2))
	require.NoError(t, db.Model(&models.IgnoredProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
