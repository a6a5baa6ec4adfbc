package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/color-picker/api/api"
	"github.com/color-picker/api/colors"
	"github.com/color-picker/api/datastore"
	"github.com/color-picker/api/models"
	"github.com/color-picker/api/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := api.Config{
		HTTPPort:        getEnv("HTTP_PORT", ":8080"),
		JwtSecret:       getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtDomain:       getEnv("JWT_DOMAIN", ""),
		SessionDuration: getEnvInt("SESSION_DURATION", 86400), // 1 day
		SweepInterval:   getEnvInt("SWEEP_INTERVAL", 300),     // 5 minutes
		AllowedOrigins:  getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:         getEnvBool("DEV_MODE", true),
		DefaultColor:    getEnvColor("DEFAULT_COLOR", "#ffffff"),
	}

	sessionRepo, sessionRepoErr := datastore.NewSessionMemory()
	if sessionRepoErr != nil {
		log.Fatalf("Failed to create session repository: %v", sessionRepoErr)
	}

	app := &api.Application{
		Config:      config,
		SessionRepo: sessionRepo,
	}

	// Start scheduler for expired session cleanup
	sweeper := scheduler.NewScheduler(sessionRepo, time.Duration(config.SweepInterval)*time.Second)
	sweeper.Start()

	mux := http.NewServeMux()

	fmt.Println("Color Picker API Starting...")
	if err := app.Serve(mux, sweeper.Stop); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}

// getEnvColor reads a hex color, falling back to white when it does not parse
func getEnvColor(key, defaultValue string) models.HSV {
	value := getEnv(key, defaultValue)
	hsv, err := colors.ToHSV(models.RepHex, value)
	if err != nil {
		log.Printf("Ignoring %s: %v", key, err)
		return colors.DefaultHSV
	}
	return hsv
}
