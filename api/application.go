package api

import (
	"github.com/color-picker/api/datastore"
	"github.com/color-picker/api/models"
)

type Config struct {
	HTTPPort        string
	JwtSecret       string
	JwtDomain       string
	SessionDuration int // seconds
	SweepInterval   int // seconds
	AllowedOrigins  []string
	DevMode         bool
	DefaultColor    models.HSV
}

type Application struct {
	Config      Config
	SessionRepo datastore.SessionRepository
}
