package services

import (
	"context"
	"errors"
	"strings"

	"recruitment_backend/internal/auth"
	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/repositories"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdminService interface {
	// Dashboard - все компании, вакансии и соискатели плюс счетчики по статусам
	Dashboard(ctx context.Context, db *gorm.DB) (*dto.AdminDashboard, error)
	UpdateCompanyStatus(ctx context.Context, db *gorm.DB, companyID uint, req *dto.UpdateCompanyStatusRequest) error
	UpdateJobStatus(ctx context.Context, db *gorm.DB, jobID uint, req *dto.UpdateJobStatusRequest) error
	// EnsureAdmin создает администратора, если такого email еще нет
	EnsureAdmin(ctx context.Context, db *gorm.DB, fullName, email, password string) (bool, error)
}

type AdminServiceImpl struct {
	adminRepo       repositories.AdminRepository
	companyRepo     repositories.CompanyRepository
	jobRepo         repositories.JobRepository
	seekerRepo      repositories.JobSeekerRepository
	applicationRepo repositories.ApplicationRepository
	notifier        NotificationService
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
	seekerRepo repositories.JobSeekerRepository,
	applicationRepo repositories.ApplicationRepository,
	notifier NotificationService,
) AdminService {
	return &AdminServiceImpl{
		adminRepo:       adminRepo,
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
		seekerRepo:      seekerRepo,
		applicationRepo: applicationRepo,
		notifier:        notifier,
	}
}

func (s *AdminServiceImpl) Dashboard(ctx context.Context, db *gorm.DB) (*dto.AdminDashboard, error) {
	companies, err := s.companyRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	seekers, err := s.seekerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var counts dto.StatusCounts
	if counts.Companies, err = s.companyRepo.CountByStatus(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if counts.Jobs, err = s.jobRepo.CountByStatus(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if counts.Applications, err = s.applicationRepo.CountByStatus(db); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := &dto.AdminDashboard{
		Companies: make([]dto.CompanyResponse, 0, len(companies)),
		Jobs:      dto.NewJobResponses(jobs),
		Seekers:   make([]dto.SeekerResponse, 0, len(seekers)),
		Counts:    counts,
	}
	for i := range companies {
		out.Companies = append(out.Companies, dto.NewCompanyResponse(&companies[i]))
	}
	for i := range seekers {
		out.Seekers = append(out.Seekers, dto.NewSeekerResponse(&seekers[i]))
	}
	return out, nil
}

func (s *AdminServiceImpl) UpdateCompanyStatus(ctx context.Context, db *gorm.DB, companyID uint, req *dto.UpdateCompanyStatusRequest) error {
	status := models.CompanyStatus(req.Status)
	if !status.Valid() {
		return apperrors.ErrInvalidStatus("company", "Unknown company status")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByID(tx, companyID)
	if err != nil {
		return handleRepoError(err)
	}
	if !company.Status.CanTransitionTo(status) {
		return apperrors.ErrInvalidTransition("company",
			"Cannot change company status from "+string(company.Status)+" to "+string(status))
	}
	if company.Status == status {
		return nil
	}

	if err := s.companyRepo.UpdateStatus(tx, companyID, status); err != nil {
		return handleRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Company status updated", "company_id", companyID, "from", company.Status, "to", status)
	if s.notifier != nil {
		s.notifier.CompanyStatusChanged(ctx, db, companyID)
	}
	return nil
}

func (s *AdminServiceImpl) UpdateJobStatus(ctx context.Context, db *gorm.DB, jobID uint, req *dto.UpdateJobStatusRequest) error {
	status := models.JobStatus(req.Status)
	if !status.Valid() {
		return apperrors.ErrInvalidStatus("job", "Unknown job status")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	job, err := s.jobRepo.FindByID(tx, jobID)
	if err != nil {
		return handleRepoError(err)
	}
	if !job.Status.CanTransitionTo(status) {
		return apperrors.ErrInvalidTransition("job",
			"Cannot change job status from "+string(job.Status)+" to "+string(status))
	}
	if job.Status == status {
		return nil
	}

	if err := s.jobRepo.UpdateStatus(tx, jobID, status); err != nil {
		return handleRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job status updated", "job_id", jobID, "from", job.Status, "to", status)
	if s.notifier != nil {
		s.notifier.JobStatusChanged(ctx, db, jobID)
	}
	return nil
}

func (s *AdminServiceImpl) EnsureAdmin(ctx context.Context, db *gorm.DB, fullName, email, password string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, apperrors.NewBadRequestError("admin email and password are required")
	}

	if _, err := s.adminRepo.FindByEmail(db, email); err == nil {
		return false, nil
	} else if !errors.Is(err, repositories.ErrAdminNotFound) {
		return false, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	if fullName == "" {
		fullName = "Administrator"
	}

	admin := &models.Admin{FullName: fullName, Email: email, PasswordHash: hash}
	if err := s.adminRepo.Create(db, admin); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Admin account created", "admin_id", admin.ID)
	return true, nil
}
