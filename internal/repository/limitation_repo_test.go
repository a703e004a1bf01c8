package repository

import (
	"testing"

	"vivah/internal/domain"
	"vivah/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewLimitationRepository(db)

	err := repo.Spend(nil, 42, CreditInterest)
	assert.ErrorIs(t, err, ErrNoCredit)
}

func TestSpendExhausted(t *testing.T) {
	db := newTestDB(t)
	repo := NewLimitationRepository(db)
	seedLimits(t, db, 1, 0, 0, 0)

	err := repo.Spend(nil, 1, CreditInterest)
	assert.ErrorIs(t, err, ErrNoCredit)
}

func TestSpendDecrementsToZeroThenStops(t *testing.T) {
	db := newTestDB(t)
	repo := NewLimitationRepository(db)
	seedLimits(t, db, 1, 2, 0, 0)

	require.NoError(t, repo.Spend(nil, 1, CreditInterest))
	require.NoError(t, repo.Spend(nil, 1, CreditInterest))

	lim, err := repo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 0, lim.InterestExpressLimit)

	assert.ErrorIs(t, repo.Spend(nil, 1, CreditInterest), ErrNoCredit)
}

func TestSpendUnlimitedNeverDecrements(t *testing.T) {
	db := newTestDB(t)
	repo := NewLimitationRepository(db)
	seedLimits(t, db, 1, domain.Unlimited, domain.Unlimited, 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Spend(nil, 1, CreditInterest))
	}
	lim, err := repo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, domain.Unlimited, lim.InterestExpressLimit)
}

func TestRefundSkipsUnlimited(t *testing.T) {
	db := newTestDB(t)
	repo := NewLimitationRepository(db)
	seedLimits(t, db, 1, 3, domain.Unlimited, 0)

	require.NoError(t, repo.Refund(nil, 1, CreditInterest))
	require.NoError(t, repo.Refund(nil, 1, CreditContact))

	lim, err := repo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 4, lim.InterestExpressLimit)
	assert.Equal(t, domain.Unlimited, lim.ContactViewLimit)
}

func TestApplyPackageResetsCounters(t *testing.T) {
	db := newTestDB(t)
	repo := NewLimitationRepository(db)
	seedLimits(t, db, 1, 0, 0, 0)

	pkg := models.Package{Name: "GOLD", PriceCents: 99900, ValidityDays: 90, InterestExpressLimit: 100, ContactViewLimit: 50, ImageUploadLimit: 15}
	require.NoError(t, db.Create(&pkg).Error)

	require.NoError(t, repo.ApplyPackage(nil, 1, &pkg))

	lim, err := repo.GetByUserID(1)
	require.NoError(t, err)
	assert.Equal(t, 100, lim.InterestExpressLimit)
	assert.Equal(t, 50, lim.ContactViewLimit)
	assert.Equal(t, 15, lim.ImageUploadLimit)
	require.NotNil(t, lim.PackageID)
	assert.Equal(t, pkg.ID, *lim.PackageID)
}

func TestApplyPackageCreatesMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewLimitationRepository(db)

	pkg := models.Package{Name: "SILVER", PriceCents: 49900, ValidityDays: 30, InterestExpressLimit: 25, ContactViewLimit: 10, ImageUploadLimit: 5}
	require.NoError(t, db.Create(&pkg).Error)

	require.NoError(t, repo.ApplyPackage(nil, 7, &pkg))
	lim, err := repo.GetByUserID(7)
	require.NoError(t, err)
	assert.Equal(t, 25, lim.InterestExpressLimit)
}
