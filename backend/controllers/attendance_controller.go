package controllers

import (
	"fmt"
	"math"
	"planner/backend/config"
	"planner/backend/models"
	"planner/backend/services"
	"planner/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Geofence *services.Geofence
	// Источник времени, подменяется в тестах
	Now func() time.Time
}

func NewAttendanceController(db *gorm.DB, cfg *config.Config) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Cfg:      cfg,
		Geofence: services.NewGeofence(cfg),
		Now:      time.Now,
	}
}

// CheckLocation godoc
// @Summary Geofence check
// @Description Checks whether the reported coordinates are within the campus radius
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Coordinates"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /attendance/check-location [post]
func (ac *AttendanceController) CheckLocation(c *fiber.Ctx) error {
	if _, err := utils.ExtractUserIDFromToken(c, ac.Cfg); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	status, distance := ac.Geofence.Check(input.Lat, input.Lon)
	if status == services.LocationDenied {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":   status,
			"distance": distance,
			"message":  fmt.Sprintf("Too far! (%dm)", int(distance)),
		})
	}

	return c.JSON(fiber.Map{
		"status":   status,
		"distance": distance,
		"time":     ac.Now().Format("15:04"),
		"message":  "Access Granted!",
	})
}

// GetAttendance godoc
// @Summary Current week attendance
// @Description Returns this week's attendance logs with the total of valid hours
// @Tags attendance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /attendance [get]
func (ac *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	weekStart := services.WeekStart(ac.Now()).Format("2006-01-02")

	// Даты хранятся как YYYY-MM-DD, сравнение строк совпадает с
	// хронологическим
	var logs []models.AttendanceLog
	if err := ac.DB.Where("user_id = ? AND date >= ?", userID, weekStart).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch attendance")
	}

	totalHours := 0.0
	result := make([]map[string]interface{}, 0, len(logs))
	for i := range logs {
		totalHours += logs[i].ValidHours
		result = append(result, logs[i].ToResponse())
	}

	return c.JSON(fiber.Map{
		"logs":        result,
		"total_hours": roundHours(totalHours),
	})
}

// AddAttendance godoc
// @Summary Record attendance
// @Description Records an attendance log; weekends are rejected, valid hours are computed server-side
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Attendance data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /attendance [post]
func (ac *AttendanceController) AddAttendance(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Date  string `json:"date"`
		Entry string `json:"entry"`
		Exit  string `json:"exit"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	logDate := ac.Now().UTC()
	if input.Date != "" {
		logDate, err = time.Parse("2006-01-02", input.Date)
		if err != nil {
			return utils.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		}
	}

	// Выходные не засчитываются - политика уровня записи, не калькулятора
	if logDate.Weekday() == time.Saturday || logDate.Weekday() == time.Sunday {
		return utils.BadRequest(c, "Weekends not allowed")
	}

	attendanceLog := models.AttendanceLog{
		UserID:     userID,
		Date:       logDate.Format("2006-01-02"),
		EntryTime:  input.Entry,
		ExitTime:   input.Exit,
		ValidHours: utils.ValidHours(input.Entry, input.Exit),
	}
	if err := ac.DB.Create(&attendanceLog).Error; err != nil {
		return utils.InternalServerError(c, "Could not create attendance log")
	}

	return c.JSON(attendanceLog.ToResponse())
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
