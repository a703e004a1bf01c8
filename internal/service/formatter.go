package service

import (
	"path"
	"strings"
	"time"

	"vivah/internal/domain"
	"vivah/internal/models"
)

// ProfileSummary is the flat listing shape every candidate row is mapped to.
type ProfileSummary struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Age             *int      `json:"age"`
	Gender          string    `json:"gender"`
	Religion        string    `json:"religion"`
	Caste           string    `json:"caste"`
	MaritalStatus   string    `json:"marital_status"`
	Profession      string    `json:"profession"`
	City            *string   `json:"city"`
	State           *string   `json:"state"`
	Image           string    `json:"image"`
	PlanName        string    `json:"plan_name"`
	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
}

// Formatter maps a loaded user row plus its joined sub-records into the flat
// response shape. One formatter serves every listing endpoint.
type Formatter struct {
	assetBase string
}

func NewFormatter(assetBase string) *Formatter {
	return &Formatter{assetBase: strings.TrimRight(assetBase, "/")}
}

func (f *Formatter) Summary(u *models.User, now time.Time) ProfileSummary {
	s := ProfileSummary{
		ID:              u.ID,
		Name:            u.Name,
		Age:             f.Age(u, now),
		PlanName:        f.PlanName(u),
		Image:           f.ImageURL(u.ProfileImage),
		ProfileComplete: u.ProfileComplete,
		CreatedAt:       u.CreatedAt,
	}
	s.City, s.State = f.Location(u)
	if bi := u.BasicInfo; bi != nil {
		s.Gender = bi.Gender
		s.Caste = bi.Caste
		s.MaritalStatus = bi.MaritalStatus
		s.Profession = bi.Profession
		if bi.Religion != nil {
			s.Religion = bi.Religion.Name
		}
	}
	return s
}

func (f *Formatter) Summaries(users []models.User, now time.Time) []ProfileSummary {
	out := make([]ProfileSummary, len(users))
	for i := range users {
		out[i] = f.Summary(&users[i], now)
	}
	return out
}

// Age computes whole years from the birth date; missing date yields nil
// rather than an error (legacy rows carry no usable date).
func (f *Formatter) Age(u *models.User, now time.Time) *int {
	if u.BasicInfo == nil || u.BasicInfo.BirthDate == nil {
		return nil
	}
	dob := *u.BasicInfo.BirthDate
	age := now.Year() - dob.Year()
	// Month/day comparison, not YearDay: the latter drifts by one across
	// leap years.
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return nil
	}
	return &age
}

// Location resolves city/state through the fallback chain: direct field →
// present address → permanent address → nil.
func (f *Formatter) Location(u *models.User) (city, state *string) {
	bi := u.BasicInfo
	if bi == nil {
		return nil, nil
	}
	city = firstNonEmpty(bi.City, bi.PresentCity, bi.PermanentCity)
	state = firstNonEmpty(bi.State, bi.PresentState, bi.PermanentState)
	return city, state
}

// ImageURL passes absolute URLs through and rebuilds anything else under the
// asset base, keeping only the filename. No storage existence check is made.
func (f *Formatter) ImageURL(stored string) string {
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	return f.assetBase + "/assets/images/user/profile/" + path.Base(stored)
}

// PlanName resolves via the limitation → package relation.
func (f *Formatter) PlanName(u *models.User) string {
	if u.Limitation != nil && u.Limitation.Package != nil && u.Limitation.Package.Name != "" {
		return u.Limitation.Package.Name
	}
	return domain.DefaultPlanName
}

// ParseBirthDate normalizes a raw date string at the ingestion boundary.
// Placeholder values ("N/A", empty) and unparseable input yield nil.
func ParseBirthDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "n/a") {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if v != "" {
			return &v
		}
	}
	return nil
}
