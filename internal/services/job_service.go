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

type JobService interface {
	// Index - страница публичного каталога и значения фильтров
	Index(ctx context.Context, db *gorm.DB, page int) (*dto.JobListPage, error)
	Search(ctx context.Context, db *gorm.DB, req *dto.SearchJobsRequest) (*dto.SearchResults, error)
	// PublicJob отдает только опубликованную вакансию
	PublicJob(ctx context.Context, db *gorm.DB, jobID uint) (*dto.JobResponse, error)
	CreateJob(ctx context.Context, db *gorm.DB, companyID uint, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	CompanyDashboard(ctx context.Context, db *gorm.DB, companyID uint) (*dto.CompanyDashboard, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	companyRepo     repositories.CompanyRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	applicationRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *JobServiceImpl) Index(ctx context.Context, db *gorm.DB, page int) (*dto.JobListPage, error) {
	if page < 1 {
		page = 1
	}

	jobs, total, err := s.jobRepo.FindPublishedPage(db, page, dto.IndexPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + dto.IndexPageSize - 1) / dto.IndexPageSize)
	// За последней страницей - 404, первая страница существует всегда.
	if page > 1 && page > totalPages {
		return nil, apperrors.ErrNotFound(errors.New("page out of range"))
	}

	cities, err := s.jobRepo.DistinctPublishedCities(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	categories, err := s.jobRepo.DistinctPublishedCategories(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListPage{
		Jobs:       dto.NewJobResponses(jobs),
		Page:       page,
		PageSize:   dto.IndexPageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Cities:     cities,
		Categories: categories,
	}, nil
}

func (s *JobServiceImpl) Search(ctx context.Context, db *gorm.DB, req *dto.SearchJobsRequest) (*dto.SearchResults, error) {
	filters := dto.SearchJobsRequest{
		City:     strings.TrimSpace(req.City),
		Category: strings.TrimSpace(req.Category),
		JobType:  strings.TrimSpace(req.JobType),
	}

	jobs, err := s.jobRepo.SearchPublished(db, repositories.JobFilter{
		City:     filters.City,
		Category: filters.Category,
		JobType:  filters.JobType,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.SearchResults{Filters: filters, Jobs: dto.NewJobResponses(jobs)}, nil
}

func (s *JobServiceImpl) PublicJob(ctx context.Context, db *gorm.DB, jobID uint) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindPublishedByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotAvailable
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// CreateJob - новая вакансия всегда уходит на модерацию
func (s *JobServiceImpl) CreateJob(ctx context.Context, db *gorm.DB, companyID uint, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByID(tx, companyID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	job := &models.Job{
		CompanyID:    company.ID,
		CategoryName: strings.TrimSpace(req.CategoryName),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		City:         strings.TrimSpace(req.City),
		JobType:      strings.TrimSpace(req.JobType),
		Requirements: req.Requirements,
		Status:       models.JobStatusPending,
	}
	if salary := strings.TrimSpace(req.Salary); salary != "" {
		job.Salary = &salary
	}

	if err := s.jobRepo.Create(tx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Company = company
	logger.CtxInfo(ctx, "Job created", "job_id", job.ID, "company_id", company.ID)

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// CompanyDashboard - все вакансии компании в любом статусе с числом откликов
func (s *JobServiceImpl) CompanyDashboard(ctx context.Context, db *gorm.DB, companyID uint) (*dto.CompanyDashboard, error) {
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	jobs, err := s.jobRepo.FindByCompany(db, companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]uint, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	counts, err := s.applicationRepo.CountByJobIDs(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := &dto.CompanyDashboard{
		Company: dto.NewCompanyResponse(company),
		Jobs:    make([]dto.CompanyJob, 0, len(jobs)),
	}
	for i := range jobs {
		jobs[i].Company = company
		out.Jobs = append(out.Jobs, dto.CompanyJob{
			JobResponse:    dto.NewJobResponse(&jobs[i]),
			ApplicantCount: counts[jobs[i].ID],
		})
	}
	return out, nil
}
