package controllers

import (
	"math"
	"planner/backend/config"
	"planner/backend/models"
	"planner/backend/services"
	"planner/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Now func() time.Time
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg, Now: time.Now}
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Per-student current-week attendance hours, under-quota count and the average
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/dashboard [get]
func (ad *AdminController) GetDashboard(c *fiber.Ctx) error {
	var users []models.User
	if err := ad.DB.Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch users")
	}

	weekStart := services.WeekStart(ad.Now()).Format("2006-01-02")

	totalStudents := len(users)
	underQuotaCount := 0
	totalWeeklyHours := 0.0

	students := make([]map[string]interface{}, 0, totalStudents)
	for _, student := range users {
		var logs []models.AttendanceLog
		if err := ad.DB.Where("user_id = ? AND date >= ?", student.ID, weekStart).
			Find(&logs).Error; err != nil {
			return utils.InternalServerError(c, "Failed to fetch attendance")
		}

		totalHours := 0.0
		for _, log := range logs {
			totalHours += log.ValidHours
		}
		totalWeeklyHours += totalHours

		if totalHours < ad.Cfg.WeeklyHoursQuota {
			underQuotaCount++
		}

		students = append(students, map[string]interface{}{
			"username":   student.Username,
			"hours":      math.Round(totalHours*100) / 100,
			"logs_count": len(logs),
		})
	}

	// Нет студентов - среднее не считаем, а возвращаем 0
	avgHours := 0.0
	if totalStudents > 0 {
		avgHours = math.Round(totalWeeklyHours/float64(totalStudents)*10) / 10
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"students":       students,
		"total_students": totalStudents,
		"under_quota":    underQuotaCount,
		"avg_hours":      avgHours,
	})
}
