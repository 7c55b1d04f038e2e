package dto

import (
	"mime/multipart"
	"time"

	"recruitment_backend/internal/models"
)

// ApplyRequest - multipart-форма отклика; файл резюме необязателен
type ApplyRequest struct {
	CoverLetter string                `form:"cover_letter" json:"cover_letter"`
	CVFile      *multipart.FileHeader `form:"cv_file" json:"-"`
}

// UpdateApplicationStatusRequest - решение компании по отклику
type UpdateApplicationStatusRequest struct {
	Status string `form:"status" json:"status" validate:"required,is-application-status"`
	Notes  string `form:"notes" json:"notes"`
}

// ActionResponse - ответ асинхронных действий
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SeekerApplication - отклик, каким его видит соискатель. Заметок компании здесь нет.
type SeekerApplication struct {
	ID          uint                     `json:"id"`
	Job         JobResponse              `json:"job"`
	CoverLetter *string                  `json:"cover_letter,omitempty"`
	CVFilename  *string                  `json:"cv_filename,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"applied_at"`
}

type SeekerResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

type SeekerDashboard struct {
	Seeker       SeekerResponse      `json:"seeker"`
	Applications []SeekerApplication `json:"applications"`
}

// Applicant - отклик в кабинете компании, вместе с внутренними заметками
type Applicant struct {
	ID            uint                     `json:"id"`
	Seeker        SeekerResponse           `json:"seeker"`
	CoverLetter   *string                  `json:"cover_letter,omitempty"`
	CVFilename    *string                  `json:"cv_filename,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	InternalNotes *string                  `json:"internal_notes,omitempty"`
	AppliedAt     time.Time                `json:"applied_at"`
}

type JobApplicants struct {
	Job          JobResponse `json:"job"`
	Applications []Applicant `json:"applications"`
}

func NewSeekerResponse(s *models.JobSeeker) SeekerResponse {
	return SeekerResponse{
		ID:        s.ID,
		FullName:  s.FullName,
		Email:     s.Email,
		Phone:     s.Phone,
		City:      s.City,
		CreatedAt: s.CreatedAt,
	}
}

func NewSeekerApplication(a *models.Application) SeekerApplication {
	out := SeekerApplication{
		ID:          a.ID,
		CoverLetter: a.CoverLetter,
		CVFilename:  a.CVFilename,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}
	if a.Job != nil {
		out.Job = NewJobResponse(a.Job)
	}
	return out
}

func NewApplicant(a *models.Application) Applicant {
	out := Applicant{
		ID:            a.ID,
		CoverLetter:   a.CoverLetter,
		CVFilename:    a.CVFilename,
		Status:        a.Status,
		InternalNotes: a.InternalNotes,
		AppliedAt:     a.AppliedAt,
	}
	if a.Seeker != nil {
		out.Seeker = NewSeekerResponse(a.Seeker)
	}
	return out
}
