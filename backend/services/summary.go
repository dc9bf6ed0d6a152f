package services

import (
	"errors"
	"planner/backend/models"
	"time"

	"gorm.io/gorm"
)

// WeekSummary - одна строка недельного отчета. Persisted=false только у
// синтетической записи текущей, еще не закрытой недели.
type WeekSummary struct {
	WeekStart      string `json:"week_start"` // YYYY-MM-DD, понедельник
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
	Persisted      bool   `json:"-"`
}

// SummaryService ведет недельный реестр задач: закрытые недели хранятся
// как неизменяемые снимки, текущая неделя всегда считается на лету.
type SummaryService struct {
	DB *gorm.DB
	// Источник времени, подменяется в тестах
	Now func() time.Time
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{DB: db, Now: time.Now}
}

// WeekStart возвращает понедельник на дате t или до нее, полночь UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// ISO: понедельник - начало недели, в Go воскресенье = 0
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ComputeWeekTotals считает задачи пользователя, созданные в полуоткрытом
// интервале [weekStart, weekStart+7d). Чистое чтение без побочных эффектов.
func (s *SummaryService) ComputeWeekTotals(userID uint, weekStart time.Time) (total int64, completed int64, err error) {
	weekEnd := weekStart.AddDate(0, 0, 7)

	if err = s.DB.Model(&models.Task{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, weekStart, weekEnd).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err = s.DB.Model(&models.Task{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ? AND status = ?",
			userID, weekStart, weekEnd, models.TaskStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return total, completed, nil
}

// EnsureUpToDate дозаполняет реестр снимками всех полностью прошедших
// недель. Текущая неделя никогда не пишется - ее итоги еще меняются.
//
// Если у пользователя нет ни одного снимка, создается ровно один - за
// неделю перед текущей. Дальше в прошлое реестр не заполняется: это
// сознательная политика посева, глубокие гэпы закрывает только общий
// цикл ниже.
func (s *SummaryService) EnsureUpToDate(userID uint) error {
	currentWeekStart := WeekStart(s.Now())

	var latest models.WeeklyTaskSummary
	err := s.DB.Where("user_id = ?", userID).
		Order("week_start DESC").
		First(&latest).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		prevStart := currentWeekStart.AddDate(0, 0, -7)
		return s.createSnapshot(userID, prevStart)
	}

	cursor := WeekStart(latest.WeekStart).AddDate(0, 0, 7)
	for cursor.Before(currentWeekStart) {
		if err := s.createSnapshot(userID, cursor); err != nil {
			return err
		}
		cursor = cursor.AddDate(0, 0, 7)
	}

	return nil
}

// createSnapshot пишет один снимок недели. Нарушение уникального индекса
// (user_id, week_start) означает, что параллельный вызов уже закрыл эту
// неделю - для нас это не ошибка.
func (s *SummaryService) createSnapshot(userID uint, weekStart time.Time) error {
	total, completed, err := s.ComputeWeekTotals(userID, weekStart)
	if err != nil {
		return err
	}

	snapshot := models.WeeklyTaskSummary{
		UserID:         userID,
		WeekStart:      weekStart,
		TotalTasks:     int(total),
		CompletedTasks: int(completed),
	}
	if err := s.DB.Create(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// ListSummaries возвращает сохраненные снимки по возрастанию недели плюс
// синтетическую запись текущей недели, посчитанную на лету. Вызывающий
// обязан сначала выполнить EnsureUpToDate в той же операции.
func (s *SummaryService) ListSummaries(userID uint) ([]WeekSummary, error) {
	var rows []models.WeeklyTaskSummary
	if err := s.DB.Where("user_id = ?", userID).
		Order("week_start ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	currentWeekStart := WeekStart(s.Now())

	result := make([]WeekSummary, 0, len(rows)+1)
	for _, row := range rows {
		result = append(result, WeekSummary{
			WeekStart:      row.WeekStart.UTC().Format("2006-01-02"),
			TotalTasks:     row.TotalTasks,
			CompletedTasks: row.CompletedTasks,
			Persisted:      true,
		})
	}

	if len(rows) == 0 || !WeekStart(rows[len(rows)-1].WeekStart).Equal(currentWeekStart) {
		total, completed, err := s.ComputeWeekTotals(userID, currentWeekStart)
		if err != nil {
			return nil, err
		}
		result = append(result, WeekSummary{
			WeekStart:      currentWeekStart.Format("2006-01-02"),
			TotalTasks:     int(total),
			CompletedTasks: int(completed),
		})
	}

	return result, nil
}
