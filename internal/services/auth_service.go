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
	"recruitment_backend/internal/session"
	"recruitment_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	// Register создает соискателя или компанию. Администраторы здесь не создаются.
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	// Login проверяет пароль в таблице заявленной роли.
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (session.Identity, error)
}

type AuthServiceImpl struct {
	seekerRepo  repositories.JobSeekerRepository
	companyRepo repositories.CompanyRepository
	adminRepo   repositories.AdminRepository
}

func NewAuthService(
	seekerRepo repositories.JobSeekerRepository,
	companyRepo repositories.CompanyRepository,
	adminRepo repositories.AdminRepository,
) AuthService {
	return &AuthServiceImpl{
		seekerRepo:  seekerRepo,
		companyRepo: companyRepo,
		adminRepo:   adminRepo,
	}
}

// Register - регистрация соискателя или компании
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := models.Role(req.UserType)
	if !role.CanSelfRegister() {
		return nil, apperrors.ValidationError(map[string]string{"user_type": "Must be one of: seeker, company"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	email := strings.TrimSpace(req.Email)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	resp := &dto.RegisterResponse{Role: role, Email: email, Redirect: "/login"}

	switch role {
	case models.RoleSeeker:
		seeker := &models.JobSeeker{
			FullName:     req.FullName,
			Email:        email,
			PasswordHash: hash,
			Phone:        req.Phone,
			City:         req.City,
		}
		if err := s.seekerRepo.Create(tx, seeker); err != nil {
			return nil, handleRegisterError(err)
		}
		resp.ID, resp.Name = seeker.ID, seeker.FullName

	case models.RoleCompany:
		company := &models.Company{
			CompanyName:  req.CompanyName,
			Email:        email,
			PasswordHash: hash,
			Phone:        req.Phone,
			City:         req.City,
			Status:       models.CompanyStatusPending,
		}
		if req.Description != "" {
			desc := req.Description
			company.Description = &desc
		}
		if err := s.companyRepo.Create(tx, company); err != nil {
			return nil, handleRegisterError(err)
		}
		resp.ID, resp.Name = company.ID, company.CompanyName
	}

	if err := tx.Commit().Error; err != nil {
		return nil, handleRegisterError(err)
	}

	logger.CtxInfo(ctx, "Account registered", "role", role, "id", resp.ID)
	return resp, nil
}

// Login - вход по email и паролю. Любая причина отказа дает одну и ту же ошибку.
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (session.Identity, error) {
	email := strings.TrimSpace(req.Email)

	var (
		identity session.Identity
		hash     string
		err      error
	)
	switch models.Role(req.UserType) {
	case models.RoleSeeker:
		var seeker *models.JobSeeker
		if seeker, err = s.seekerRepo.FindByEmail(db, email); err == nil {
			identity = session.Identity{ActingID: seeker.ID, Role: models.RoleSeeker, Name: seeker.FullName}
			hash = seeker.PasswordHash
		}
	case models.RoleCompany:
		var company *models.Company
		if company, err = s.companyRepo.FindByEmail(db, email); err == nil {
			identity = session.Identity{ActingID: company.ID, Role: models.RoleCompany, Name: company.CompanyName}
			hash = company.PasswordHash
		}
	case models.RoleAdmin:
		var admin *models.Admin
		if admin, err = s.adminRepo.FindByEmail(db, email); err == nil {
			identity = session.Identity{ActingID: admin.ID, Role: models.RoleAdmin, Name: admin.FullName}
			hash = admin.PasswordHash
		}
	default:
		logger.CtxInfo(ctx, "Login rejected", "reason", "unknown user type")
		return session.Identity{}, apperrors.ErrInvalidCredentials
	}

	if err != nil {
		if isNotFound(err) {
			logger.CtxInfo(ctx, "Login rejected", "role", req.UserType, "reason", "unknown email")
			return session.Identity{}, apperrors.ErrInvalidCredentials
		}
		return session.Identity{}, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, hash) {
		logger.CtxInfo(ctx, "Login rejected", "role", req.UserType, "reason", "wrong password")
		return session.Identity{}, apperrors.ErrInvalidCredentials
	}
	return identity, nil
}

func handleRegisterError(err error) error {
	if errors.Is(err, repositories.ErrEmailTaken) {
		return apperrors.ErrEmailAlreadyRegistered
	}
	return apperrors.InternalError(err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, repositories.ErrSeekerNotFound) ||
		errors.Is(err, repositories.ErrCompanyNotFound) ||
		errors.Is(err, repositories.ErrAdminNotFound)
}
