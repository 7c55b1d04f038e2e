package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок домена подбора персонала.
*/

// =========================================================================
// Фабрики (оборачивают ошибки репозиториев)
// =========================================================================

// ErrNotFound - ошибка "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - ошибка "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus - значение статуса не входит в перечисление (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidTransition - переход между статусами запрещен (409)
func ErrInvalidTransition(domain, message string) *AppError {
	return New(CodeInvalidTransition, domain, message, http.StatusConflict)
}

// ErrStorage - сбой хранилища файлов (500)
func ErrStorage(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "File storage error", http.StatusInternalServerError)
}

// =========================================================================
// Auth
// =========================================================================

// ErrInvalidCredentials - одно сообщение на все причины неудачного входа.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyRegistered - email уже занят в таблице этой роли.
var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"auth",
	"Email is already registered",
	http.StatusConflict,
)

// ErrLoginRequired - действие требует входа.
var ErrLoginRequired = New(
	CodeUnauthorized,
	"auth",
	"You must be logged in",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - роль не подходит для операции.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// =========================================================================
// Jobs & applications
// =========================================================================

// ErrJobNotOwned - вакансия принадлежит другой компании.
var ErrJobNotOwned = New(
	CodeForbidden,
	"job",
	"This job belongs to another company",
	http.StatusForbidden,
)

// ErrJobNotAvailable - вакансия не найдена или не опубликована.
var ErrJobNotAvailable = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrDuplicateApplication - соискатель уже откликался на вакансию.
var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

// ErrResumeAccessDenied - файл резюме не относится к вызывающему.
var ErrResumeAccessDenied = New(
	CodeForbidden,
	"resume",
	"You are not allowed to download this file",
	http.StatusForbidden,
)

// ErrResumeNotFound - файла нет в хранилище.
var ErrResumeNotFound = New(
	CodeNotFound,
	"resume",
	"File not found",
	http.StatusNotFound,
)

// =========================================================================
// Uploads
// =========================================================================

// ErrFileTooLarge - файл превышает максимальный размер.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidResumeType - расширение не из списка pdf/doc/docx.
var ErrInvalidResumeType = New(
	CodeInvalidFileType,
	"validation",
	"Unsupported file format. Use PDF, DOC or DOCX",
	http.StatusUnsupportedMediaType,
)

// ErrInvalidFilename - после очистки от имени файла ничего не осталось.
var ErrInvalidFilename = New(
	CodeValidationFailed,
	"validation",
	"Invalid file name",
	http.StatusBadRequest,
)
