package dto

import (
	"time"

	"recruitment_backend/internal/models"
)

// IndexPageSize - размер страницы публичного каталога
const IndexPageSize = 12

// CreateJobRequest - форма новой вакансии
type CreateJobRequest struct {
	CategoryName string `form:"category_name" json:"category_name" validate:"required,max=100"`
	Title        string `form:"title" json:"title" validate:"required,max=150"`
	Description  string `form:"description" json:"description" validate:"required"`
	City         string `form:"city" json:"city" validate:"required,max=100"`
	JobType      string `form:"job_type" json:"job_type" validate:"required,max=50"`
	Salary       string `form:"salary" json:"salary,omitempty" validate:"max=100"`
	Requirements string `form:"requirements" json:"requirements" validate:"required"`
}

// SearchJobsRequest - фильтры поиска; пустой фильтр не ограничивает выборку
type SearchJobsRequest struct {
	City     string `form:"city" json:"city,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	JobType  string `form:"job_type" json:"job_type,omitempty"`
}

type JobResponse struct {
	ID           uint             `json:"id"`
	CompanyID    uint             `json:"company_id"`
	CompanyName  string           `json:"company_name,omitempty"`
	CategoryName string           `json:"category_name"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	City         string           `json:"city"`
	JobType      string           `json:"job_type"`
	Salary       *string          `json:"salary,omitempty"`
	Requirements string           `json:"requirements"`
	Status       models.JobStatus `json:"status"`
	PostedAt     time.Time        `json:"posted_at"`
}

// JobListPage - страница каталога и значения для фильтров
type JobListPage struct {
	Jobs       []JobResponse `json:"jobs"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"total_pages"`
	HasPrev    bool          `json:"has_prev"`
	HasNext    bool          `json:"has_next"`
	Cities     []string      `json:"cities"`
	Categories []string      `json:"categories"`
}

type SearchResults struct {
	Filters SearchJobsRequest `json:"filters"`
	Jobs    []JobResponse     `json:"jobs"`
}

type CompanyResponse struct {
	ID          uint                 `json:"id"`
	CompanyName string               `json:"company_name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	City        string               `json:"city"`
	Description *string              `json:"description,omitempty"`
	Status      models.CompanyStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// CompanyJob - вакансия в кабинете компании, с числом откликов
type CompanyJob struct {
	JobResponse
	ApplicantCount int64 `json:"applicant_count"`
}

type CompanyDashboard struct {
	Company CompanyResponse `json:"company"`
	Jobs    []CompanyJob    `json:"jobs"`
}

func NewJobResponse(job *models.Job) JobResponse {
	resp := JobResponse{
		ID:           job.ID,
		CompanyID:    job.CompanyID,
		CategoryName: job.CategoryName,
		Title:        job.Title,
		Description:  job.Description,
		City:         job.City,
		JobType:      job.JobType,
		Salary:       job.Salary,
		Requirements: job.Requirements,
		Status:       job.Status,
		PostedAt:     job.PostedAt,
	}
	if job.Company != nil {
		resp.CompanyName = job.Company.CompanyName
	}
	return resp
}

func NewJobResponses(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

func NewCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		City:        c.City,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}
