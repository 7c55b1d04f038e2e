package dto

import "recruitment_backend/internal/models"

// UpdateCompanyStatusRequest - решение администратора по компании
type UpdateCompanyStatusRequest struct {
	Status string `form:"status" json:"status" validate:"required,is-company-status"`
}

// UpdateJobStatusRequest - модерация вакансии
type UpdateJobStatusRequest struct {
	Status string `form:"status" json:"status" validate:"required,is-job-status"`
}

// StatusCounts - агрегаты для панели администратора
type StatusCounts struct {
	Companies    map[models.CompanyStatus]int64     `json:"companies"`
	Jobs         map[models.JobStatus]int64         `json:"jobs"`
	Applications map[models.ApplicationStatus]int64 `json:"applications"`
}

type AdminDashboard struct {
	Companies []CompanyResponse `json:"companies"`
	Jobs      []JobResponse     `json:"jobs"`
	Seekers   []SeekerResponse  `json:"seekers"`
	Counts    StatusCounts      `json:"counts"`
}
