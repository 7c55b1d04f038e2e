package services

import (
	"errors"

	"recruitment_backend/internal/repositories"
	"recruitment_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// handleRepoError переводит ошибки репозиториев в AppError.
func handleRepoError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, repositories.ErrCompanyNotFound) ||
		errors.Is(err, repositories.ErrJobNotFound) ||
		errors.Is(err, repositories.ErrSeekerNotFound) ||
		errors.Is(err, repositories.ErrAdminNotFound) ||
		errors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
