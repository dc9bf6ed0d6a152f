package controllers

import (
	"planner/backend/config"
	"planner/backend/models"
	"planner/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudyController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStudyController(db *gorm.DB, cfg *config.Config) *StudyController {
	return &StudyController{DB: db, Cfg: cfg}
}

// LogSession godoc
// @Summary Log a study session
// @Description Records a study session for the authenticated user
// @Tags study
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Session data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study [post]
func (sc *StudyController) LogSession(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Subject  string `json:"subject"`
		Duration int    `json:"duration"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Subject == "" {
		return utils.BadRequest(c, "Subject is required")
	}
	if input.Duration < 0 {
		return utils.BadRequest(c, "Duration must not be negative")
	}

	session := models.StudySession{
		UserID:          userID,
		Subject:         input.Subject,
		DurationMinutes: input.Duration,
		LoggedAt:        time.Now(),
	}
	if err := sc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Could not create study session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"subject":  session.Subject,
		"duration": session.DurationMinutes,
	})
}

// GetSessions godoc
// @Summary List study sessions
// @Description Returns authenticated user's study sessions with the total duration
// @Tags study
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study [get]
func (sc *StudyController) GetSessions(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var sessions []models.StudySession
	if err := sc.DB.Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch study sessions")
	}

	totalMinutes := 0
	result := make([]map[string]interface{}, 0, len(sessions))
	for _, session := range sessions {
		totalMinutes += session.DurationMinutes
		result = append(result, map[string]interface{}{
			"subject":   session.Subject,
			"duration":  session.DurationMinutes,
			"logged_at": session.LoggedAt.Format("2006-01-02 15:04"),
		})
	}

	return c.JSON(fiber.Map{
		"sessions":      result,
		"total_minutes": totalMinutes,
	})
}
