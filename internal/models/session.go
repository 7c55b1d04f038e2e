package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session - серверное состояние сессии для хранилища в БД.
type Session struct {
	ID        string            `gorm:"primaryKey;size:36"`
	ActingID  uint              `gorm:"not null"`
	Role      Role              `gorm:"size:20;not null"`
	Values    datatypes.JSONMap `gorm:"type:json"`
	ExpiresAt time.Time         `gorm:"not null;index"`
	CreatedAt time.Time
}

func (Session) TableName() string { return "sessions" }
