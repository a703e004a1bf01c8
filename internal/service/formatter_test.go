package service

import (
	"testing"
	"time"

	"vivah/internal/domain"
	"vivah/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assetBase = "https://assets.vivah.app"

func TestAgeBirthdayBoundary(t *testing.T) {
	f := NewFormatter(assetBase)
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	u := &models.User{BasicInfo: &models.BasicInfo{BirthDate: &dob}}

	dayBefore := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	age := f.Age(u, dayBefore)
	require.NotNil(t, age)
	assert.Equal(t, 33, *age)

	onBirthday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	age = f.Age(u, onBirthday)
	require.NotNil(t, age)
	assert.Equal(t, 34, *age)
}

func TestAgeLeapYearBirthday(t *testing.T) {
	f := NewFormatter(assetBase)
	dob := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)
	u := &models.User{BasicInfo: &models.BasicInfo{BirthDate: &dob}}

	age := f.Age(u, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, age)
	assert.Equal(t, 22, *age)

	age = f.Age(u, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, age)
	assert.Equal(t, 23, *age)
}

func TestAgeMissingBirthDate(t *testing.T) {
	f := NewFormatter(assetBase)
	assert.Nil(t, f.Age(&models.User{}, time.Now()))
	assert.Nil(t, f.Age(&models.User{BasicInfo: &models.BasicInfo{}}, time.Now()))
}

func TestLocationFallbackChain(t *testing.T) {
	f := NewFormatter(assetBase)

	u := &models.User{BasicInfo: &models.BasicInfo{City: "Pune", PresentCity: "Mumbai", PermanentCity: "Nashik"}}
	city, _ := f.Location(u)
	require.NotNil(t, city)
	assert.Equal(t, "Pune", *city)

	u = &models.User{BasicInfo: &models.BasicInfo{PresentCity: "Mumbai", PermanentCity: "Nashik"}}
	city, _ = f.Location(u)
	require.NotNil(t, city)
	assert.Equal(t, "Mumbai", *city)

	u = &models.User{BasicInfo: &models.BasicInfo{PermanentCity: "Nashik"}}
	city, _ = f.Location(u)
	require.NotNil(t, city)
	assert.Equal(t, "Nashik", *city)

	u = &models.User{BasicInfo: &models.BasicInfo{}}
	city, state := f.Location(u)
	assert.Nil(t, city)
	assert.Nil(t, state)
}

func TestImageURL(t *testing.T) {
	f := NewFormatter(assetBase + "/")

	assert.Equal(t, "", f.ImageURL(""))
	assert.Equal(t, "https://cdn.example.com/x.jpg", f.ImageURL("https://cdn.example.com/x.jpg"))
	assert.Equal(t, assetBase+"/assets/images/user/profile/abc.jpg", f.ImageURL("photos/abc.jpg"))
	assert.Equal(t, assetBase+"/assets/images/user/profile/abc.jpg", f.ImageURL("abc.jpg"))
}

func TestPlanNameFallback(t *testing.T) {
	f := NewFormatter(assetBase)

	assert.Equal(t, domain.DefaultPlanName, f.PlanName(&models.User{}))
	assert.Equal(t, domain.DefaultPlanName, f.PlanName(&models.User{Limitation: &models.UserLimitation{}}))

	u := &models.User{Limitation: &models.UserLimitation{Package: &models.Package{Name: "GOLD"}}}
	assert.Equal(t, "GOLD", f.PlanName(u))
}

func TestParseBirthDate(t *testing.T) {
	assert.Nil(t, ParseBirthDate(""))
	assert.Nil(t, ParseBirthDate("  "))
	assert.Nil(t, ParseBirthDate("N/A"))
	assert.Nil(t, ParseBirthDate("n/a"))
	assert.Nil(t, ParseBirthDate("15-06-1990"))

	d := ParseBirthDate("1990-06-15")
	require.NotNil(t, d)
	assert.Equal(t, 1990, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestSummaryMapsJoinedRecords(t *testing.T) {
	f := NewFormatter(assetBase)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dob := time.Date(1994, 1, 10, 0, 0, 0, 0, time.UTC)

	u := &models.User{
		Name:         "Asha",
		ProfileImage: "asha.jpg",
		BasicInfo: &models.BasicInfo{
			Gender:        domain.GenderFemale,
			BirthDate:     &dob,
			Caste:         "Maratha",
			MaritalStatus: "NEVER_MARRIED",
			City:          "Pune",
			Religion:      &models.Religion{Name: "Hindu"},
		},
	}
	s := f.Summary(u, now)
	require.NotNil(t, s.Age)
	assert.Equal(t, 30, *s.Age)
	assert.Equal(t, "Hindu", s.Religion)
	assert.Equal(t, "Maratha", s.Caste)
	assert.Equal(t, domain.DefaultPlanName, s.PlanName)
	assert.Equal(t, assetBase+"/assets/images/user/profile/asha.jpg", s.Image)
	require.NotNil(t, s.City)
	assert.Equal(t, "Pune", *s.City)
}
