package repositories

import (
	"errors"

	"recruitment_backend/internal/models"

	"gorm.io/gorm"
)

// JobFilter - фильтры каталога; пустое поле не ограничивает выборку.
type JobFilter struct {
	City     string
	Category string
	JobType  string
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id uint) (*models.Job, error)
	FindPublishedByID(db *gorm.DB, id uint) (*models.Job, error)
	FindPublishedPage(db *gorm.DB, page, pageSize int) ([]models.Job, int64, error)
	SearchPublished(db *gorm.DB, filter JobFilter) ([]models.Job, error)
	DistinctPublishedCities(db *gorm.DB) ([]string, error)
	DistinctPublishedCategories(db *gorm.DB) ([]string, error)
	FindByCompany(db *gorm.DB, companyID uint) ([]models.Job, error)
	FindAll(db *gorm.DB) ([]models.Job, error)
	UpdateStatus(db *gorm.DB, id uint, status models.JobStatus) error
	CountByStatus(db *gorm.DB) (map[models.JobStatus]int64, error)
	Delete(db *gorm.DB, id uint) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func published(db *gorm.DB) *gorm.DB {
	return db.Where("jobs.status = ?", models.JobStatusPublished)
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	if err := db.Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindPublishedByID(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	if err := published(db).Preload("Company").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindPublishedPage(db *gorm.DB, page, pageSize int) ([]models.Job, int64, error) {
	var total int64
	if err := published(db.Model(&models.Job{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	offset := (page - 1) * pageSize
	err := published(db).
		Preload("Company").
		Order("posted_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) SearchPublished(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	query := published(db).Preload("Company")
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Category != "" {
		query = query.Where("category_name = ?", filter.Category)
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}

	var jobs []models.Job
	err := query.Order("posted_at DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) DistinctPublishedCities(db *gorm.DB) ([]string, error) {
	var cities []string
	err := published(db.Model(&models.Job{})).Distinct().Order("city").Pluck("city", &cities).Error
	return cities, err
}

func (r *JobRepositoryImpl) DistinctPublishedCategories(db *gorm.DB) ([]string, error) {
	var categories []string
	err := published(db.Model(&models.Job{})).Distinct().Order("category_name").Pluck("category_name", &categories).Error
	return categories, err
}

func (r *JobRepositoryImpl) FindByCompany(db *gorm.DB, companyID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("company_id = ?", companyID).Order("posted_at DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindAll(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Company").Order("posted_at DESC, id DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.JobStatus) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CountByStatus(db *gorm.DB) (map[models.JobStatus]int64, error) {
	var rows []struct {
		Status models.JobStatus
		Count  int64
	}
	if err := db.Model(&models.Job{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.JobStatus]int64, len(rows))
	for _, s := range models.AllJobStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Delete удаляет вакансию и все отклики на нее.
func (r *JobRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Job{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
