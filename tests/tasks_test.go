package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"planner/backend/services"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdTaskID float64

func testCreateTask(t *testing.T) {
	taskData := map[string]interface{}{
		"title":    "Read chapter 4",
		"priority": "High",
		"due_date": "2026-12-01",
	}
	jsonData, _ := json.Marshal(taskData)

	req := httptest.NewRequest("POST", "/api/tasks", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Read chapter 4", result["title"])
	assert.Equal(t, "High", result["priority"])
	assert.Equal(t, "Pending", result["status"])

	var ok bool
	createdTaskID, ok = result["id"].(float64)
	require.True(t, ok)
}

func testGetTasks(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/tasks", nil)
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result, 1)
	assert.Equal(t, "Read chapter 4", result[0]["title"])
}

func testToggleTask(t *testing.T) {
	url := fmt.Sprintf("/api/tasks/%d/toggle", int(createdTaskID))
	req := httptest.NewRequest("PUT", url, nil)
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Completed", result["status"])
}

func testDeleteTask(t *testing.T) {
	// Создаем отдельную задачу и удаляем ее
	taskData := map[string]interface{}{"title": "Throwaway"}
	jsonData, _ := json.Marshal(taskData)

	createReq := httptest.NewRequest("POST", "/api/tasks", bytes.NewBuffer(jsonData))
	createReq.Header.Set("Content-Type", "application/json")
	createReq.Header.Set("Authorization", jwtToken)

	createResp, err := app.Test(createReq)
	require.NoError(t, err)
	var created map[string]interface{}
	json.NewDecoder(createResp.Body).Decode(&created)
	id := int(created["id"].(float64))

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/tasks/%d", id), nil)
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "Deleted", result["message"])

	// Удаление чужого/несуществующего ID дает 404
	again := httptest.NewRequest("DELETE", fmt.Sprintf("/api/tasks/%d", id), nil)
	again.Header.Set("Authorization", jwtToken)
	resp, err = app.Test(again)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func testWeeklySummary(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/tasks/weekly-summary", nil)
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	// Посеянная прошлая неделя плюс синтетическая текущая
	require.GreaterOrEqual(t, len(result), 2)

	last := result[len(result)-1]
	currentWeekStart := services.WeekStart(time.Now()).Format("2006-01-02")
	assert.Equal(t, currentWeekStart, last["week_start"])
	// На этой неделе осталась одна задача, и она выполнена
	assert.Equal(t, float64(1), last["total_tasks"])
	assert.Equal(t, float64(1), last["completed_tasks"])
}
