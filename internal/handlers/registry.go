package handlers

import (
	"recruitment_backend/internal/services"
	"recruitment_backend/internal/session"
	"recruitment_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	PublicHandler  *PublicHandler
	SeekerHandler  *SeekerHandler
	CompanyHandler *CompanyHandler
	AdminHandler   *AdminHandler
	ResumeHandler  *ResumeHandler
	HealthHandler  *HealthHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов.
func NewAppHandlers(sc *services.ServiceContainer, sessions *session.Manager, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService, sessions),
		PublicHandler:  NewPublicHandler(base, sc.JobService),
		SeekerHandler:  NewSeekerHandler(base, sc.ApplicationService),
		CompanyHandler: NewCompanyHandler(base, sc.JobService, sc.ApplicationService),
		AdminHandler:   NewAdminHandler(base, sc.AdminService),
		ResumeHandler:  NewResumeHandler(base, sc.ResumeService),
		HealthHandler:  NewHealthHandler(base),
	}
}
