package repositories

import (
	"errors"

	"recruitment_backend/database"
	"recruitment_backend/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository определяет операции с откликами
type ApplicationRepository interface {
	// Create сохраняет отклик; повторный отклик на ту же вакансию - ErrApplicationExists
	Create(db *gorm.DB, app *models.Application) error

	// FindByID возвращает отклик вместе с вакансией
	FindByID(db *gorm.DB, id uint) (*models.Application, error)

	Exists(db *gorm.DB, jobID, seekerID uint) (bool, error)

	// FindBySeeker - отклики соискателя, новые первыми, с вакансией и компанией
	FindBySeeker(db *gorm.DB, seekerID uint) ([]models.Application, error)

	// FindByJob - отклики на вакансию, новые первыми, с данными соискателя
	FindByJob(db *gorm.DB, jobID uint) ([]models.Application, error)

	// FindByCVFilename ищет отклики, к которым приложен файл резюме.
	// Имена могут совпасть у двух загрузок в одну секунду, поэтому их несколько.
	FindByCVFilename(db *gorm.DB, filename string) ([]models.Application, error)

	UpdateStatusAndNotes(db *gorm.DB, id uint, status models.ApplicationStatus, notes *string) error
	CountByStatus(db *gorm.DB) (map[models.ApplicationStatus]int64, error)
	CountByJobIDs(db *gorm.DB, jobIDs []uint) (map[uint]int64, error)
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *applicationRepository) FindByID(db *gorm.DB, id uint) (*models.Application, error) {
	var app models.Application
	if err := db.Preload("Job").First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Exists(db *gorm.DB, jobID, seekerID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND seeker_id = ?", jobID, seekerID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) FindBySeeker(db *gorm.DB, seekerID uint) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job.Company").
		Where("seeker_id = ?", seekerID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByJob(db *gorm.DB, jobID uint) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Seeker").
		Where("job_id = ?", jobID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByCVFilename(db *gorm.DB, filename string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").Where("cv_filename = ?", filename).Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateStatusAndNotes(db *gorm.DB, id uint, status models.ApplicationStatus, notes *string) error {
	result := db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"internal_notes": notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) CountByStatus(db *gorm.DB) (map[models.ApplicationStatus]int64, error) {
	var rows []struct {
		Status models.ApplicationStatus
		Count  int64
	}
	if err := db.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, s := range models.AllApplicationStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountByJobIDs считает отклики по каждой вакансии одним запросом.
func (r *applicationRepository) CountByJobIDs(db *gorm.DB, jobIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		JobID uint
		Count int64
	}
	if err := db.Model(&models.Application{}).
		Select("job_id, COUNT(*) AS count").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.JobID] = row.Count
	}
	return counts, nil
}
