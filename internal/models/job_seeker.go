package models

import "time"

type JobSeeker struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Email        string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	City         string    `gorm:"size:100;not null" json:"city"`
	CreatedAt    time.Time `json:"created_at"`

	Applications []Application `gorm:"foreignKey:SeekerID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

func (JobSeeker) TableName() string { return "job_seekers" }
