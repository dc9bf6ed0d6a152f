package models

import (
	"time"

	"gorm.io/gorm"
)

// WeeklyTaskSummary - замороженный снимок полностью прошедшей недели.
// Уникальный индекс (user_id, week_start) защищает от дублей при гонке
// двух одновременных бэкфиллов.
type WeeklyTaskSummary struct {
	gorm.Model
	UserID         uint      `gorm:"not null;uniqueIndex:idx_user_week"`
	WeekStart      time.Time `gorm:"not null;uniqueIndex:idx_user_week"`
	TotalTasks     int       `gorm:"not null;default:0"`
	CompletedTasks int       `gorm:"not null;default:0"`
}
