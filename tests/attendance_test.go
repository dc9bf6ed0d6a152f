package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"planner/backend/services"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCheckLocationAllowed(t *testing.T) {
	body := map[string]float64{
		"lat": cfg.CampusLat,
		"lon": cfg.CampusLon,
	}
	jsonData, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/attendance/check-location", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "allowed", result["status"])
	assert.Equal(t, float64(0), result["distance"])
}

func testCheckLocationDenied(t *testing.T) {
	// Примерно километр от кампуса
	body := map[string]float64{
		"lat": cfg.CampusLat + 0.009,
		"lon": cfg.CampusLon,
	}
	jsonData, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/attendance/check-location", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "denied", result["status"])
}

func testAddAttendance(t *testing.T) {
	// Понедельник текущей недели - гарантированно будний день
	monday := services.WeekStart(time.Now()).Format("2006-01-02")

	body := map[string]string{
		"date":  monday,
		"entry": "09:00",
		"exit":  "17:00",
	}
	jsonData, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/attendance", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, monday, result["date"])
	assert.Equal(t, float64(8), result["hours"])
}

func testWeekendRejected(t *testing.T) {
	saturday := services.WeekStart(time.Now()).AddDate(0, 0, 5).Format("2006-01-02")

	body := map[string]string{
		"date":  saturday,
		"entry": "09:00",
		"exit":  "17:00",
	}
	jsonData, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/attendance", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func testGetAttendance(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/attendance", nil)
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	logs, ok := result["logs"].([]interface{})
	require.True(t, ok)
	require.Len(t, logs, 1)
	assert.Equal(t, float64(8), result["total_hours"])
}
