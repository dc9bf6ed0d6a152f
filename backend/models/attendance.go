package models

import "gorm.io/gorm"

type AttendanceLog struct {
	gorm.Model
	UserID    uint   `gorm:"not null;index"`
	Date      string `gorm:"not null"` // YYYY-MM-DD
	EntryTime string `gorm:"not null"` // HH:MM
	ExitTime  string `gorm:"not null"` // HH:MM
	// Вычисляется сервером по рабочему окну, клиент его не задает
	ValidHours float64 `gorm:"not null"`
}

func (a *AttendanceLog) ToResponse() map[string]interface{} {
	return map[string]interface{}{
		"date":  a.Date,
		"entry": a.EntryTime,
		"exit":  a.ExitTime,
		"hours": a.ValidHours,
	}
}
