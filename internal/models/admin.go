package models

type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:120;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}

func (Admin) TableName() string { return "admins" }
