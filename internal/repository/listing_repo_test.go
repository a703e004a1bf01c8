package repository

import (
	"testing"
	"time"

	"vivah/internal/domain"
	"vivah/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listingNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestListMembersGenderComplement(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: domain.GenderMale})
	seedMember(t, db, memberSpec{name: "f1", gender: domain.GenderFemale})
	seedMember(t, db, memberSpec{name: "f2", gender: domain.GenderFemale})
	seedMember(t, db, memberSpec{name: "m1", gender: domain.GenderMale})

	users, page, err := repo.ListMembers(ListingFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale, Segment: domain.SegmentAll,
		Page: 1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	for _, u := range users {
		require.NotNil(t, u.BasicInfo)
		assert.Equal(t, domain.GenderFemale, u.BasicInfo.Gender)
	}
}

func TestListMembersUnresolvedGenderShowsAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: ""})
	seedMember(t, db, memberSpec{name: "f1", gender: domain.GenderFemale})
	seedMember(t, db, memberSpec{name: "m1", gender: domain.GenderMale})

	_, page, err := repo.ListMembers(ListingFilters{
		ViewerID: viewer.ID, Segment: domain.SegmentAll,
		Page: 1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestListMembersExcludesViewerAndIgnored(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: domain.GenderMale})
	hidden := seedMember(t, db, memberSpec{name: "hidden", gender: domain.GenderFemale})
	visible := seedMember(t, db, memberSpec{name: "visible", gender: domain.GenderFemale})
	require.NoError(t, NewIgnoreRepository(db).Add(viewer.ID, hidden.ID))

	users, page, err := repo.ListMembers(ListingFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale, Segment: domain.SegmentAll,
		Page: 1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, users, 1)
	assert.Equal(t, visible.ID, users[0].ID)
}

func TestNewlyJoinedWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: domain.GenderMale})
	recent := seedMember(t, db, memberSpec{name: "recent", gender: domain.GenderFemale, created: listingNow.AddDate(0, 0, -5)})
	seedMember(t, db, memberSpec{name: "old", gender: domain.GenderFemale, created: listingNow.AddDate(0, 0, -20)})

	users, page, err := repo.ListMembers(ListingFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale, Segment: domain.SegmentNewlyJoined,
		Page: 1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, users, 1)
	assert.Equal(t, recent.ID, users[0].ID)
}

func TestRecommendedReligionAndAgeBand(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	rel := models.Religion{Name: "Hindu"}
	require.NoError(t, db.Create(&rel).Error)
	other := models.Religion{Name: "Christian"}
	require.NoError(t, db.Create(&other).Error)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: domain.GenderMale, relID: &rel.ID})
	inBand := seedMember(t, db, memberSpec{name: "inband", gender: domain.GenderFemale, relID: &rel.ID, birth: birthDate(1996, 6, 1)}) // 28
	seedMember(t, db, memberSpec{name: "tooOld", gender: domain.GenderFemale, relID: &rel.ID, birth: birthDate(1985, 1, 1)})
	seedMember(t, db, memberSpec{name: "wrongRel", gender: domain.GenderFemale, relID: &other.ID, birth: birthDate(1996, 6, 1)})
	seedMember(t, db, memberSpec{name: "noBirth", gender: domain.GenderFemale, relID: &rel.ID})

	minAge, maxAge := 25, 30
	users, page, err := repo.ListMembers(ListingFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale, Segment: domain.SegmentRecommended,
		ReligionID: &rel.ID, MinAge: &minAge, MaxAge: &maxAge,
		Page: 1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, users, 1)
	assert.Equal(t, inBand.ID, users[0].ID)
}

func TestRecommendedCasteTieBreak(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: domain.GenderMale, caste: "Brahmin"})
	otherCaste := seedMember(t, db, memberSpec{name: "other", gender: domain.GenderFemale, caste: "Nair"})
	sameCaste := seedMember(t, db, memberSpec{name: "same", gender: domain.GenderFemale, caste: "brahmin"})

	users, _, err := repo.ListMembers(ListingFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale, Segment: domain.SegmentRecommended,
		ViewerCaste: "Brahmin",
		Page:        1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Case-insensitive caste match sorts first despite the lower id ordering.
	assert.Equal(t, sameCaste.ID, users[0].ID)
	assert.Equal(t, otherCaste.ID, users[1].ID)
}

func TestSearchFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: domain.GenderMale})
	puneite := seedMember(t, db, memberSpec{name: "Asha", gender: domain.GenderFemale, caste: "Maratha", city: "Pune"})
	seedMember(t, db, memberSpec{name: "Beena", gender: domain.GenderFemale, caste: "Nair", city: "Kochi"})

	users, page, err := repo.SearchMembers(SearchFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale,
		Caste: "maratha", City: "Pune",
		Page: 1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, users, 1)
	assert.Equal(t, puneite.ID, users[0].ID)

	users, _, err = repo.SearchMembers(SearchFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale, Query: "Been",
		Page: 1, PerPage: 10, Now: listingNow,
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Beena", users[0].Name)
}

func TestPageInfoMath(t *testing.T) {
	p := NewPageInfo(2, 10, 25)
	assert.Equal(t, 3, p.LastPage)
	assert.True(t, p.HasMore)

	p = NewPageInfo(3, 10, 25)
	assert.False(t, p.HasMore)

	p = NewPageInfo(0, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.LastPage)
	assert.False(t, p.HasMore)
}

func TestListMembersPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewListingRepository(db)

	viewer := seedMember(t, db, memberSpec{name: "viewer", gender: domain.GenderMale})
	for i := 0; i < 5; i++ {
		seedMember(t, db, memberSpec{name: "cand" + string(rune('a'+i)), gender: domain.GenderFemale})
	}

	users, page, err := repo.ListMembers(ListingFilters{
		ViewerID: viewer.ID, Gender: domain.GenderFemale, Segment: domain.SegmentAll,
		Page: 2, PerPage: 2, Now: listingNow,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 3, page.LastPage)
	assert.True(t, page.HasMore)
	assert.Len(t, users, 2)
}
