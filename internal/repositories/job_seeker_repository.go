package repositories

import (
	"errors"

	"recruitment_backend/database"
	"recruitment_backend/internal/models"

	"gorm.io/gorm"
)

type JobSeekerRepository interface {
	Create(db *gorm.DB, seeker *models.JobSeeker) error
	FindByID(db *gorm.DB, id uint) (*models.JobSeeker, error)
	FindByEmail(db *gorm.DB, email string) (*models.JobSeeker, error)
	EmailExists(db *gorm.DB, email string) (bool, error)
	FindAll(db *gorm.DB) ([]models.JobSeeker, error)
	Delete(db *gorm.DB, id uint) error
}

type JobSeekerRepositoryImpl struct{}

func NewJobSeekerRepository() JobSeekerRepository {
	return &JobSeekerRepositoryImpl{}
}

func (r *JobSeekerRepositoryImpl) Create(db *gorm.DB, seeker *models.JobSeeker) error {
	if err := db.Create(seeker).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *JobSeekerRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.JobSeeker, error) {
	var seeker models.JobSeeker
	if err := db.First(&seeker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeekerNotFound
		}
		return nil, err
	}
	return &seeker, nil
}

func (r *JobSeekerRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.JobSeeker, error) {
	var seeker models.JobSeeker
	if err := db.Where("email = ?", email).First(&seeker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeekerNotFound
		}
		return nil, err
	}
	return &seeker, nil
}

func (r *JobSeekerRepositoryImpl) EmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.JobSeeker{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *JobSeekerRepositoryImpl) FindAll(db *gorm.DB) ([]models.JobSeeker, error) {
	var seekers []models.JobSeeker
	err := db.Order("created_at DESC, id DESC").Find(&seekers).Error
	return seekers, err
}

// Delete удаляет соискателя и все его отклики.
func (r *JobSeekerRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("seeker_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.JobSeeker{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSeekerNotFound
		}
		return nil
	})
}
