package models

import (
	"time"

	"gorm.io/gorm"
)

// Application - отклик соискателя на вакансию. Пара (job_id, seeker_id)
// уникальна на уровне индекса, это закрывает гонку двух одновременных откликов.
type Application struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	JobID         uint              `gorm:"not null;uniqueIndex:idx_applications_job_seeker,priority:1" json:"job_id"`
	Job           *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	SeekerID      uint              `gorm:"not null;uniqueIndex:idx_applications_job_seeker,priority:2;index" json:"seeker_id"`
	Seeker        *JobSeeker        `gorm:"foreignKey:SeekerID" json:"seeker,omitempty"`
	CoverLetter   *string           `gorm:"type:text" json:"cover_letter,omitempty"`
	CVFilename    *string           `gorm:"size:255;index" json:"cv_filename,omitempty"`
	Status        ApplicationStatus `gorm:"size:50;not null;default:Pending;index" json:"status"`
	InternalNotes *string           `gorm:"type:text" json:"-"`
	AppliedAt     time.Time         `gorm:"autoCreateTime" json:"applied_at"`
}

func (Application) TableName() string { return "applications" }

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	return nil
}
