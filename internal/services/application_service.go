package services

import (
	"context"
	"errors"
	"strings"

	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/repositories"
	"recruitment_backend/internal/services/dto"
	"recruitment_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Apply создает отклик соискателя на опубликованную вакансию, с резюме или без
	Apply(ctx context.Context, db *gorm.DB, seekerID, jobID uint, req *dto.ApplyRequest) (*dto.SeekerApplication, error)
	// JobApplicants - отклики на вакансию; только для компании-владельца
	JobApplicants(ctx context.Context, db *gorm.DB, companyID, jobID uint) (*dto.JobApplicants, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, companyID, applicationID uint, req *dto.UpdateApplicationStatusRequest) error
	SeekerDashboard(ctx context.Context, db *gorm.DB, seekerID uint) (*dto.SeekerDashboard, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	seekerRepo      repositories.JobSeekerRepository
	resumeService   ResumeService
	notifier        NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	seekerRepo repositories.JobSeekerRepository,
	resumeService ResumeService,
	notifier NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		seekerRepo:      seekerRepo,
		resumeService:   resumeService,
		notifier:        notifier,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, db *gorm.DB, seekerID, jobID uint, req *dto.ApplyRequest) (*dto.SeekerApplication, error) {
	job, err := s.jobRepo.FindPublishedByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotAvailable
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.applicationRepo.Exists(db, jobID, seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		JobID:    job.ID,
		SeekerID: seekerID,
		Status:   models.ApplicationStatusPending,
	}
	if letter := strings.TrimSpace(req.CoverLetter); letter != "" {
		app.CoverLetter = &letter
	}

	// Файл проверяется и сохраняется до вставки строки; при сбое вставки удаляется.
	var stored string
	if req.CVFile != nil {
		if stored, err = s.resumeService.Store(ctx, req.CVFile); err != nil {
			return nil, err
		}
		app.CVFilename = &stored
	}

	if err := s.insertApplication(db, app); err != nil {
		s.resumeService.Discard(ctx, db, stored)
		return nil, err
	}

	logger.CtxInfo(ctx, "Application submitted",
		"application_id", app.ID, "job_id", job.ID, "with_resume", stored != "")

	app.Job = job
	resp := dto.NewSeekerApplication(app)
	return &resp, nil
}

func (s *ApplicationServiceImpl) insertApplication(db *gorm.DB, app *models.Application) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.seekerRepo.FindByID(tx, app.SeekerID); err != nil {
		return handleRepoError(err)
	}
	if err := s.applicationRepo.Create(tx, app); err != nil {
		if errors.Is(err, repositories.ErrApplicationExists) {
			return apperrors.ErrDuplicateApplication
		}
		return apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		if errors.Is(err, repositories.ErrApplicationExists) {
			return apperrors.ErrDuplicateApplication
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) JobApplicants(ctx context.Context, db *gorm.DB, companyID, jobID uint) (*dto.JobApplicants, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if job.CompanyID != companyID {
		logger.CtxWarn(ctx, "Foreign job applicants requested", "job_id", jobID)
		return nil, apperrors.ErrJobNotOwned
	}

	apps, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := &dto.JobApplicants{
		Job:          dto.NewJobResponse(job),
		Applications: make([]dto.Applicant, 0, len(apps)),
	}
	for i := range apps {
		out.Applications = append(out.Applications, dto.NewApplicant(&apps[i]))
	}
	return out, nil
}

// UpdateStatus - решение компании по отклику; заметки видит только компания
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, companyID, applicationID uint, req *dto.UpdateApplicationStatusRequest) error {
	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return apperrors.ErrInvalidStatus("application", "Unknown application status")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	app, err := s.applicationRepo.FindByID(tx, applicationID)
	if err != nil {
		return handleRepoError(err)
	}
	if app.Job == nil || app.Job.CompanyID != companyID {
		logger.CtxWarn(ctx, "Foreign application status change rejected", "application_id", applicationID)
		return apperrors.ErrJobNotOwned
	}
	if !app.Status.CanTransitionTo(status) {
		return apperrors.ErrInvalidTransition("application",
			"Cannot change application status from "+string(app.Status)+" to "+string(status))
	}

	var notes *string
	if n := strings.TrimSpace(req.Notes); n != "" {
		notes = &n
	}
	if err := s.applicationRepo.UpdateStatusAndNotes(tx, app.ID, status, notes); err != nil {
		return handleRepoError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Application status updated",
		"application_id", app.ID, "from", app.Status, "to", status)

	if app.Status != status && s.notifier != nil {
		app.Status = status
		s.notifier.ApplicationStatusChanged(ctx, db, app)
	}
	return nil
}

func (s *ApplicationServiceImpl) SeekerDashboard(ctx context.Context, db *gorm.DB, seekerID uint) (*dto.SeekerDashboard, error) {
	seeker, err := s.seekerRepo.FindByID(db, seekerID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	apps, err := s.applicationRepo.FindBySeeker(db, seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := &dto.SeekerDashboard{
		Seeker:       dto.NewSeekerResponse(seeker),
		Applications: make([]dto.SeekerApplication, 0, len(apps)),
	}
	for i := range apps {
		out.Applications = append(out.Applications, dto.NewSeekerApplication(&apps[i]))
	}
	return out, nil
}
