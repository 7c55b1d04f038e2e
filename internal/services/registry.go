package services

import (
	"recruitment_backend/internal/email"
	"recruitment_backend/internal/repositories"
	"recruitment_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	JobService          JobService
	ApplicationService  ApplicationService
	ResumeService       ResumeService
	AdminService        AdminService
	NotificationService NotificationService
}

// NewServiceContainer собирает репозитории и сервисы. mailer может быть nil,
// тогда письма не отправляются.
func NewServiceContainer(store storage.Storage, mailer *email.Mailer, resumeConfig *ResumeConfig) *ServiceContainer {
	adminRepo := repositories.NewAdminRepository()
	companyRepo := repositories.NewCompanyRepository()
	seekerRepo := repositories.NewJobSeekerRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	notificationService := NewNotificationService(mailer, seekerRepo, companyRepo, jobRepo)
	resumeService := NewResumeService(store, applicationRepo, resumeConfig)

	return &ServiceContainer{
		AuthService:         NewAuthService(seekerRepo, companyRepo, adminRepo),
		JobService:          NewJobService(jobRepo, companyRepo, applicationRepo),
		ApplicationService:  NewApplicationService(applicationRepo, jobRepo, seekerRepo, resumeService, notificationService),
		ResumeService:       resumeService,
		AdminService:        NewAdminService(adminRepo, companyRepo, jobRepo, seekerRepo, applicationRepo, notificationService),
		NotificationService: notificationService,
	}
}
