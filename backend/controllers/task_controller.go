package controllers

import (
	"errors"
	"planner/backend/config"
	"planner/backend/models"
	"planner/backend/services"
	"planner/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TaskController struct {
	DB        *gorm.DB
	Cfg       *config.Config
	Summaries *services.SummaryService
}

func NewTaskController(db *gorm.DB, cfg *config.Config) *TaskController {
	return &TaskController{
		DB:        db,
		Cfg:       cfg,
		Summaries: services.NewSummaryService(db),
	}
}

// GetTasks godoc
// @Summary List user's tasks
// @Description Returns authenticated user's tasks, newest first
// @Tags tasks
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [get]
func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var tasks []models.Task
	if err := tc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch tasks")
	}

	result := make([]map[string]interface{}, 0, len(tasks))
	for i := range tasks {
		result = append(result, tasks[i].ToResponse())
	}

	return c.JSON(result)
}

// CreateTask godoc
// @Summary Create a task
// @Description Creates a new task for the authenticated user
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Task data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [post]
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Title     string `json:"title"`
		Priority  string `json:"priority"`
		StartDate string `json:"start_date"`
		DueDate   string `json:"due_date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if input.Priority == "" {
		input.Priority = "Medium"
	}

	task := models.Task{
		UserID:    userID,
		Title:     input.Title,
		Priority:  input.Priority,
		Status:    models.TaskStatusPending,
		StartDate: input.StartDate,
		DueDate:   input.DueDate,
	}
	if err := tc.DB.Create(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not create task")
	}

	return c.Status(fiber.StatusCreated).JSON(task.ToResponse())
}

// ToggleTask godoc
// @Summary Toggle task status
// @Description Flips a task between Pending and Completed
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id}/toggle [put]
func (tc *TaskController) ToggleTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task ID")
	}

	// Задача должна принадлежать текущему пользователю
	var task models.Task
	if err := tc.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Task not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if task.Status == models.TaskStatusPending {
		task.Status = models.TaskStatusCompleted
	} else {
		task.Status = models.TaskStatusPending
	}

	if err := tc.DB.Save(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not update task")
	}

	return c.JSON(task.ToResponse())
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Deletes a task owned by the authenticated user
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id} [delete]
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task ID")
	}

	var task models.Task
	if err := tc.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Task not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := tc.DB.Delete(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete task")
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}

// GetWeeklySummary godoc
// @Summary Weekly task summary
// @Description Backfills missing weekly snapshots and returns the full ledger including the live current week
// @Tags tasks
// @Produce json
// @Success 200 {array} services.WeekSummary
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/weekly-summary [get]
func (tc *TaskController) GetWeeklySummary(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := tc.Summaries.EnsureUpToDate(userID); err != nil {
		return utils.InternalServerError(c, "Failed to update weekly summaries")
	}

	summaries, err := tc.Summaries.ListSummaries(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch weekly summaries")
	}

	return c.JSON(summaries)
}
