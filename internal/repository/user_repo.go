package repository

import (
	"vivah/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByMobile(mobile string) (*models.User, error) {
	var u models.User
	err := r.db.Where("mobile = ?", mobile).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetWithProfile loads the user plus the relations the user-info projection needs.
func (r *UserRepository) GetWithProfile(id uint) (*models.User, error) {
	var u models.User
	err := r.db.
		Preload("BasicInfo").Preload("BasicInfo.Religion").
		Preload("Limitation").Preload("Limitation.Package").
		Preload("Package").
		First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}
