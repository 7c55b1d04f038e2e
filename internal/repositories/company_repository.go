package repositories

import (
	"errors"

	"recruitment_backend/database"
	"recruitment_backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, id uint) (*models.Company, error)
	FindByEmail(db *gorm.DB, email string) (*models.Company, error)
	EmailExists(db *gorm.DB, email string) (bool, error)
	FindAll(db *gorm.DB) ([]models.Company, error)
	UpdateStatus(db *gorm.DB, id uint, status models.CompanyStatus) error
	CountByStatus(db *gorm.DB) (map[models.CompanyStatus]int64, error)
	Delete(db *gorm.DB, id uint) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	if err := db.Create(company).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Company, error) {
	var company models.Company
	if err := db.Where("email = ?", email).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) EmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.Company{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *CompanyRepositoryImpl) FindAll(db *gorm.DB) ([]models.Company, error) {
	var companies []models.Company
	err := db.Order("created_at DESC, id DESC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) UpdateStatus(db *gorm.DB, id uint, status models.CompanyStatus) error {
	result := db.Model(&models.Company{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) CountByStatus(db *gorm.DB) (map[models.CompanyStatus]int64, error) {
	var rows []struct {
		Status models.CompanyStatus
		Count  int64
	}
	if err := db.Model(&models.Company{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.CompanyStatus]int64, len(rows))
	for _, s := range models.AllCompanyStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Delete удаляет компанию вместе с ее вакансиями и откликами на них.
// Зависимые строки удаляются явно, не полагаясь на ON DELETE CASCADE.
func (r *CompanyRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		jobIDs := tx.Model(&models.Job{}).Select("id").Where("company_id = ?", id)
		if err := tx.Where("job_id IN (?)", jobIDs).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Job{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Company{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCompanyNotFound
		}
		return nil
	})
}
