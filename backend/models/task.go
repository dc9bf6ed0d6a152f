package models

import "gorm.io/gorm"

const (
	TaskStatusPending   = "Pending"
	TaskStatusCompleted = "Completed"
)

type Task struct {
	gorm.Model
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	Priority  string `gorm:"default:Medium"` // Low, Medium, High
	Status    string `gorm:"default:Pending"`
	StartDate string // YYYY-MM-DD, опционально
	DueDate   string // YYYY-MM-DD, опционально
}

func (t *Task) ToResponse() map[string]interface{} {
	return map[string]interface{}{
		"id":         t.ID,
		"title":      t.Title,
		"priority":   t.Priority,
		"status":     t.Status,
		"start_date": t.StartDate,
		"due_date":   t.DueDate,
	}
}
