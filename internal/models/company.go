package models

import (
	"time"

	"gorm.io/gorm"
)

type Company struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	CompanyName  string        `gorm:"size:150;not null" json:"company_name"`
	Email        string        `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string        `gorm:"size:255;not null" json:"-"`
	Phone        string        `gorm:"size:20;not null" json:"phone"`
	City         string        `gorm:"size:100;not null" json:"city"`
	Description  *string       `gorm:"type:text" json:"description,omitempty"`
	Status       CompanyStatus `gorm:"size:50;not null;default:Pending;index" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`

	Jobs []Job `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
}

func (Company) TableName() string { return "companies" }

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = CompanyStatusPending
	}
	return nil
}
