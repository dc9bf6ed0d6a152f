package services

import (
	"planner/backend/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGeofence() *Geofence {
	return NewGeofence(&config.Config{
		CampusLat:         40.40663934042372,
		CampusLon:         49.848206791133954,
		MaxDistanceMeters: 50,
	})
}

func TestGeofenceCheckAtCenter(t *testing.T) {
	gf := testGeofence()

	status, distance := gf.Check(gf.Lat, gf.Lon)
	assert.Equal(t, LocationAllowed, status)
	assert.InDelta(t, 0.0, distance, 1e-6)
}

func TestGeofenceCheckFarAway(t *testing.T) {
	gf := testGeofence()

	// Примерно километр к северу от кампуса
	status, distance := gf.Check(gf.Lat+0.009, gf.Lon)
	assert.Equal(t, LocationDenied, status)
	assert.Greater(t, distance, 900.0)
}
