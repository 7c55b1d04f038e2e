package services

import (
	"context"

	"recruitment_backend/internal/email"
	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/repositories"

	"gorm.io/gorm"
)

// NotificationService отправляет письма после смены статусов.
// Ошибки доставки только логируются: статус уже сохранен.
type NotificationService interface {
	ApplicationStatusChanged(ctx context.Context, db *gorm.DB, app *models.Application)
	CompanyStatusChanged(ctx context.Context, db *gorm.DB, companyID uint)
	JobStatusChanged(ctx context.Context, db *gorm.DB, jobID uint)
}

type NotificationServiceImpl struct {
	mailer      *email.Mailer
	seekerRepo  repositories.JobSeekerRepository
	companyRepo repositories.CompanyRepository
	jobRepo     repositories.JobRepository
}

func NewNotificationService(
	mailer *email.Mailer,
	seekerRepo repositories.JobSeekerRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
) NotificationService {
	return &NotificationServiceImpl{
		mailer:      mailer,
		seekerRepo:  seekerRepo,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

func (s *NotificationServiceImpl) ApplicationStatusChanged(ctx context.Context, db *gorm.DB, app *models.Application) {
	if s.mailer == nil {
		return
	}
	seeker, err := s.seekerRepo.FindByID(db, app.SeekerID)
	if err != nil {
		logger.CtxWithError(ctx, "Notification skipped: seeker lookup failed", err, "application_id", app.ID)
		return
	}

	data := email.TemplateData{
		"SeekerName": seeker.FullName,
		"Status":     string(app.Status),
	}
	if app.Job != nil {
		data["JobTitle"] = app.Job.Title
		if company, err := s.companyRepo.FindByID(db, app.Job.CompanyID); err == nil {
			data["CompanyName"] = company.CompanyName
		}
	}

	s.send(ctx, seeker.Email, "Your application status has changed", email.TemplateApplicationStatus, data)
}

func (s *NotificationServiceImpl) CompanyStatusChanged(ctx context.Context, db *gorm.DB, companyID uint) {
	if s.mailer == nil {
		return
	}
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		logger.CtxWithError(ctx, "Notification skipped: company lookup failed", err, "company_id", companyID)
		return
	}

	s.send(ctx, company.Email, "Your company account has been reviewed", email.TemplateCompanyStatus, email.TemplateData{
		"CompanyName": company.CompanyName,
		"Status":      string(company.Status),
	})
}

func (s *NotificationServiceImpl) JobStatusChanged(ctx context.Context, db *gorm.DB, jobID uint) {
	if s.mailer == nil {
		return
	}
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil || job.Company == nil {
		logger.CtxWithError(ctx, "Notification skipped: job lookup failed", err, "job_id", jobID)
		return
	}

	s.send(ctx, job.Company.Email, "Your job posting has been reviewed", email.TemplateJobStatus, email.TemplateData{
		"CompanyName": job.Company.CompanyName,
		"JobTitle":    job.Title,
		"Status":      string(job.Status),
	})
}

func (s *NotificationServiceImpl) send(ctx context.Context, to, subject, template string, data email.TemplateData) {
	if err := s.mailer.SendTemplate(ctx, to, subject, template, data); err != nil {
		logger.CtxWithError(ctx, "Failed to send notification", err, "template", template)
		return
	}
	logger.CtxDebug(ctx, "Notification sent", "template", template)
}
