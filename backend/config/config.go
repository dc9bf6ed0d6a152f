package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// Геозона кампуса для чекина посещаемости
	CampusLat         float64
	CampusLon         float64
	MaxDistanceMeters float64

	// Недельная квота часов для admin-дашборда
	WeeklyHoursQuota float64
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "planner"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		CampusLat:         getEnvFloat("CAMPUS_LAT", 40.40663934042372),
		CampusLon:         getEnvFloat("CAMPUS_LON", 49.848206791133954),
		MaxDistanceMeters: getEnvFloat("MAX_DISTANCE_METERS", 50),

		WeeklyHoursQuota: getEnvFloat("WEEKLY_HOURS_QUOTA", 15),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid value for %s, using default %v", key, defaultValue)
		return defaultValue
	}
	return parsed
}
