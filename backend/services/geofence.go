package services

import (
	"math"
	"planner/backend/config"
	"planner/backend/utils"
)

const (
	LocationAllowed = "allowed"
	LocationDenied  = "denied"
)

// Geofence проверяет, что точка находится в радиусе от кампуса.
// Координаты фиксируются при создании из конфига, глобального
// состояния нет.
type Geofence struct {
	Lat               float64
	Lon               float64
	MaxDistanceMeters float64
}

func NewGeofence(cfg *config.Config) *Geofence {
	return &Geofence{
		Lat:               cfg.CampusLat,
		Lon:               cfg.CampusLon,
		MaxDistanceMeters: cfg.MaxDistanceMeters,
	}
}

// Check классифицирует точку и возвращает округленное расстояние.
// Ничего не пишет - запись посещаемости остается за вызывающим.
func (g *Geofence) Check(lat, lon float64) (status string, distance float64) {
	distance = utils.DistanceMeters(lat, lon, g.Lat, g.Lon)
	distance = math.Round(distance*100) / 100

	if distance <= g.MaxDistanceMeters {
		return LocationAllowed, distance
	}
	return LocationDenied, distance
}
