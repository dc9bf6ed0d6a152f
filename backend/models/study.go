package models

import (
	"time"

	"gorm.io/gorm"
)

type StudySession struct {
	gorm.Model
	UserID          uint   `gorm:"not null;index"`
	Subject         string `gorm:"not null"`
	DurationMinutes int
	LoggedAt        time.Time
}
