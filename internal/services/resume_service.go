package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"sync"
	"time"

	"recruitment_backend/internal/auth"
	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/repositories"
	"recruitment_backend/internal/session"
	"recruitment_backend/internal/storage"
	"recruitment_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// ============================================
// RESUME SERVICE
// ============================================

type ResumeService interface {
	// Validate проверяет расширение и размер до любой записи
	Validate(file *multipart.FileHeader) error
	// Store сохраняет файл под уникальным именем и возвращает его для cv_filename
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)
	// Discard удаляет сохраненный файл, если отклик так и не записался.
	// Файл, на который ссылается хоть один отклик, не трогается.
	Discard(ctx context.Context, db *gorm.DB, name string)
	// Open открывает резюме для скачивания с проверкой прав вызывающего
	Open(ctx context.Context, db *gorm.DB, identity session.Identity, filename string) (*ResumeFile, error)
}

// ResumeFile - открытый файл резюме; Body закрывает вызывающий
type ResumeFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

type ResumeConfig struct {
	MaxSize           int64
	AllowedExtensions []string
}

func DefaultResumeConfig() *ResumeConfig {
	return &ResumeConfig{
		MaxSize:           16 * 1024 * 1024,
		AllowedExtensions: []string{"pdf", "doc", "docx"},
	}
}

var resumeContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

const maxNameAttempts = 100

var errNoFreeName = errors.New("no free resume name")

type resumeService struct {
	storage         storage.Storage
	applicationRepo repositories.ApplicationRepository
	config          *ResumeConfig
	now             func() time.Time

	// имена, которые сейчас пишутся в хранилище
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewResumeService(
	store storage.Storage,
	applicationRepo repositories.ApplicationRepository,
	config *ResumeConfig,
) ResumeService {
	if config == nil {
		config = DefaultResumeConfig()
	}
	return &resumeService{
		storage:         store,
		applicationRepo: applicationRepo,
		config:          config,
		now:             time.Now,
		pending:         make(map[string]struct{}),
	}
}

func (s *resumeService) Validate(file *multipart.FileHeader) error {
	if file == nil {
		return apperrors.ValidationError(map[string]string{"cv_file": "File is required"})
	}
	if !s.isAllowedExtension(storage.Extension(file.Filename)) {
		return apperrors.ErrInvalidResumeType
	}
	if file.Size > s.config.MaxSize {
		return apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"max_size": s.config.MaxSize})
	}
	if storage.SanitizeFilename(file.Filename) == "" {
		return apperrors.ErrInvalidFilename
	}
	return nil
}

func (s *resumeService) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := s.Validate(file); err != nil {
		return "", err
	}

	ext := storage.Extension(file.Filename)
	name := storage.SanitizeFilename(file.Filename)
	if storage.Extension(name) != ext {
		name = name + "." + ext
	}
	name, err := s.reserveName(ctx, storage.TimestampedName(s.now(), name))
	if err != nil {
		return "", apperrors.ErrStorage(err)
	}
	defer s.releaseName(name)

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	contentType := resumeContentTypes[ext]
	if mtype, err := mimetype.DetectReader(src); err == nil {
		contentType = mtype.String()
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.storage.Save(ctx, name, src, contentType); err != nil {
		return "", apperrors.ErrStorage(err)
	}

	logger.CtxInfo(ctx, "Resume stored", "file", name, "size", file.Size, "content_type", contentType)
	return name, nil
}

// reserveName подбирает свободное имя: сначала base, затем base_2, base_3...
// Имя занято, если оно уже есть в хранилище или его сейчас пишет другой запрос.
func (s *resumeService) reserveName(ctx context.Context, base string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stem, ext := base, ""
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		stem, ext = base[:i], base[i:]
	}
	for n := 1; n <= maxNameAttempts; n++ {
		name := base
		if n > 1 {
			name = stem + "_" + strconv.Itoa(n) + ext
		}
		if _, busy := s.pending[name]; busy {
			continue
		}
		exists, err := s.storage.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if !exists {
			s.pending[name] = struct{}{}
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", errNoFreeName, base)
}

func (s *resumeService) releaseName(name string) {
	s.mu.Lock()
	delete(s.pending, name)
	s.mu.Unlock()
}

func (s *resumeService) Discard(ctx context.Context, db *gorm.DB, name string) {
	if name == "" {
		return
	}
	apps, err := s.applicationRepo.FindByCVFilename(db, name)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to check resume references, keeping file", err, "file", name)
		return
	}
	if len(apps) > 0 {
		logger.CtxWarn(ctx, "Resume is referenced by an application, keeping file", "file", name)
		return
	}
	if err := s.storage.Delete(ctx, name); err != nil {
		logger.CtxWithError(ctx, "Failed to discard resume", err, "file", name)
	}
}

func (s *resumeService) Open(ctx context.Context, db *gorm.DB, identity session.Identity, filename string) (*ResumeFile, error) {
	name := storage.SanitizeFilename(filename)
	if name == "" {
		return nil, apperrors.ErrInvalidFilename
	}
	if identity.IsAnonymous() {
		return nil, apperrors.ErrLoginRequired
	}

	if !auth.HasPermission(identity.Role, auth.PermResumesReadAny) {
		apps, err := s.applicationRepo.FindByCVFilename(db, name)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if len(apps) == 0 {
			return nil, apperrors.ErrResumeNotFound
		}
		if !canReadResume(identity, apps) {
			logger.CtxWarn(ctx, "Resume access denied", "file", name)
			return nil, apperrors.ErrResumeAccessDenied
		}
	}

	body, err := s.storage.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) || errors.Is(err, storage.ErrInvalidPath) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.ErrStorage(fmt.Errorf("open %s: %w", name, err))
	}

	size, err := s.storage.GetSize(ctx, name)
	if err != nil {
		size = -1
	}

	contentType, ok := resumeContentTypes[storage.Extension(name)]
	if !ok {
		contentType = "application/octet-stream"
	}

	return &ResumeFile{Name: name, ContentType: contentType, Size: size, Body: body}, nil
}

// canReadResume: соискатель видит свои файлы, компания - файлы откликов на свои вакансии.
func canReadResume(identity session.Identity, apps []models.Application) bool {
	for _, app := range apps {
		switch {
		case identity.Role == models.RoleSeeker && auth.HasPermission(identity.Role, auth.PermResumesReadOwn):
			if app.SeekerID == identity.ActingID {
				return true
			}
		case identity.Role == models.RoleCompany && auth.HasPermission(identity.Role, auth.PermResumesReadApplicants):
			if app.Job != nil && app.Job.CompanyID == identity.ActingID {
				return true
			}
		}
	}
	return false
}

func (s *resumeService) isAllowedExtension(ext string) bool {
	if ext == "" {
		return false
	}
	for _, allowed := range s.config.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
