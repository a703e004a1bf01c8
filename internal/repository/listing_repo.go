package repository

import (
	"math"
	"strings"
	"time"

	"vivah/internal/domain"
	"vivah/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingFilters drive the member listing segments. Gender is the candidate
// filter value already resolved from the viewer ("" = no gender filter).
type ListingFilters struct {
	ViewerID    uint
	Gender      string
	Segment     string
	LookingFor  int   // optional, "all" segment only
	ReligionID  *uint // viewer's religion, "recommended" segment
	ViewerCaste string
	MinAge      *int // partner-preferred age band, "recommended" segment
	MaxAge      *int
	Page        int
	PerPage     int
	Now         time.Time
}

// SearchFilters are the structured search inputs.
type SearchFilters struct {
	ViewerID      uint
	Gender        string
	MinAge        *int
	MaxAge        *int
	ReligionID    *uint
	Caste         string
	MaritalStatus string
	City          string
	Query         string // free-text against member name
	Page          int
	PerPage       int
	Now           time.Time
}

// PageInfo is the offset-pagination envelope.
type PageInfo struct {
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
	HasMore  bool  `json:"has_more"`
}

// NewPageInfo clamps page/per_page to a minimum of 1 and derives
// last_page = ceil(total/per_page), has_more = page < last_page.
func NewPageInfo(page, perPage int, total int64) PageInfo {
	if perPage < 1 {
		perPage = 20
	}
	if page < 1 {
		page = 1
	}
	lastPage := int(math.Ceil(float64(total) / float64(perPage)))
	return PageInfo{
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage,
		HasMore:  page < lastPage,
	}
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// ListMembers returns one page of candidates for the segment plus the total
// count over the same predicate set.
func (r *ListingRepository) ListMembers(f ListingFilters) ([]models.User, PageInfo, error) {
	page := NewPageInfo(f.Page, f.PerPage, 0)

	base := r.base(f.ViewerID, f.Gender, f.Now)
	switch f.Segment {
	case domain.SegmentRecommended:
		if f.ReligionID != nil {
			base = base.Where("bi.religion_id = ?", *f.ReligionID)
		}
		base = applyAgeBand(base, f.MinAge, f.MaxAge, f.Now)
	case domain.SegmentNewlyJoined:
		base = base.Where("users.created_at >= ?", f.Now.AddDate(0, 0, -domain.NewlyJoinedDays))
	default: // all
		if f.LookingFor == domain.LookingForMale || f.LookingFor == domain.LookingForFemale {
			base = base.Where("users.looking_for = ?", f.LookingFor)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, page, err
	}
	page = NewPageInfo(f.Page, f.PerPage, total)

	q := base.Session(&gorm.Session{}).
		Preload("BasicInfo").Preload("BasicInfo.Religion").
		Preload("Limitation").Preload("Limitation.Package")
	switch {
	case f.Segment == domain.SegmentRecommended && f.ViewerCaste != "":
		// Caste tie-break: case-insensitive match with the viewer sorts first,
		// then viewer-independent ordering by id.
		q = q.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN LOWER(bi.caste) = ? THEN 1 ELSE 2 END, users.id DESC",
			Vars:               []interface{}{strings.ToLower(f.ViewerCaste)},
			WithoutParentheses: true,
		}})
	case f.Segment == domain.SegmentNewlyJoined:
		q = q.Order("users.created_at DESC")
	default:
		q = q.Order("users.id DESC")
	}

	var users []models.User
	err := q.Offset((page.Page - 1) * page.PerPage).Limit(page.PerPage).Find(&users).Error
	return users, page, err
}

// SearchMembers runs the structured search over the same composer.
func (r *ListingRepository) SearchMembers(f SearchFilters) ([]models.User, PageInfo, error) {
	page := NewPageInfo(f.Page, f.PerPage, 0)

	base := r.base(f.ViewerID, f.Gender, f.Now)
	base = applyAgeBand(base, f.MinAge, f.MaxAge, f.Now)
	if f.ReligionID != nil {
		base = base.Where("bi.religion_id = ?", *f.ReligionID)
	}
	if f.Caste != "" {
		base = base.Where("LOWER(bi.caste) = ?", strings.ToLower(f.Caste))
	}
	if f.MaritalStatus != "" {
		base = base.Where("bi.marital_status = ?", f.MaritalStatus)
	}
	if f.City != "" {
		like := "%" + f.City + "%"
		base = base.Where("bi.city LIKE ? OR bi.present_city LIKE ? OR bi.permanent_city LIKE ?", like, like, like)
	}
	if f.Query != "" {
		base = base.Where("users.name LIKE ?", "%"+f.Query+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, page, err
	}
	page = NewPageInfo(f.Page, f.PerPage, total)

	var users []models.User
	err := base.Session(&gorm.Session{}).
		Preload("BasicInfo").Preload("BasicInfo.Religion").
		Preload("Limitation").Preload("Limitation.Package").
		Order("users.id DESC").
		Offset((page.Page - 1) * page.PerPage).Limit(page.PerPage).
		Find(&users).Error
	return users, page, err
}

// GetDetail loads a member with every profile relation.
func (r *ListingRepository) GetDetail(id uint) (*models.User, error) {
	var u models.User
	err := r.db.
		Preload("BasicInfo").Preload("BasicInfo.Religion").
		Preload("PhysicalAttribute").Preload("Family").Preload("PartnerExpectation").
		Preload("Educations").Preload("Careers").Preload("Gallery").
		Preload("Limitation").Preload("Limitation.Package").
		First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// base joins basic_infos, excludes the viewer and anyone they ignored, and
// applies the gender filter when resolvable.
func (r *ListingRepository) base(viewerID uint, gender string, now time.Time) *gorm.DB {
	q := r.db.Model(&models.User{}).
		Joins("JOIN basic_infos bi ON bi.user_id = users.id AND bi.deleted_at IS NULL").
		Where("users.id <> ?", viewerID).
		Where("users.status = ?", "ACTIVE").
		Where("users.id NOT IN (SELECT target_id FROM ignored_profiles WHERE user_id = ?)", viewerID)
	if gender != "" {
		q = q.Where("bi.gender = ?", gender)
	}
	return q
}

// applyAgeBand turns a min/max age into a birth-date window. A candidate of
// age a satisfies min <= a <= max when birth_date <= now-min years and
// birth_date > now-(max+1) years.
func applyAgeBand(q *gorm.DB, minAge, maxAge *int, now time.Time) *gorm.DB {
	if minAge != nil {
		q = q.Where("bi.birth_date IS NOT NULL AND bi.birth_date <= ?", now.AddDate(-*minAge, 0, 0))
	}
	if maxAge != nil {
		q = q.Where("bi.birth_date IS NOT NULL AND bi.birth_date > ?", now.AddDate(-(*maxAge+1), 0, 0))
	}
	return q
}
