package repositories

import (
	"errors"

	"recruitment_backend/database"
	"recruitment_backend/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(db *gorm.DB, admin *models.Admin) error
	FindByID(db *gorm.DB, id uint) (*models.Admin, error)
	FindByEmail(db *gorm.DB, email string) (*models.Admin, error)
}

type AdminRepositoryImpl struct{}

func NewAdminRepository() AdminRepository {
	return &AdminRepositoryImpl{}
}

func (r *AdminRepositoryImpl) Create(db *gorm.DB, admin *models.Admin) error {
	if err := db.Create(admin).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *AdminRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}
