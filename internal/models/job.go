package models

import (
	"time"

	"gorm.io/gorm"
)

type Job struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyID    uint      `gorm:"not null;index" json:"company_id"`
	Company      *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	CategoryName string    `gorm:"size:100;not null;index" json:"category_name"`
	Title        string    `gorm:"size:150;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	City         string    `gorm:"size:100;not null;index" json:"city"`
	JobType      string    `gorm:"size:50;not null;index" json:"job_type"`
	Salary       *string   `gorm:"size:100" json:"salary,omitempty"`
	Requirements string    `gorm:"type:text;not null" json:"requirements"`
	Status       JobStatus `gorm:"size:50;not null;default:Pending;index" json:"status"`
	PostedAt     time.Time `gorm:"autoCreateTime;index" json:"posted_at"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

func (Job) TableName() string { return "jobs" }

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.Status == "" {
		j.Status = JobStatusPending
	}
	return nil
}
