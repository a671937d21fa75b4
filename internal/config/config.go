package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Face       FaceConfig
	Attendance AttendanceConfig
	Storage    StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	Timezone    string
	FrontendURL string
}

// FaceConfig tunes the face match engine. The threshold is the
// false-accept/false-reject tradeoff and varies with camera quality,
// so it is configuration rather than a constant.
type FaceConfig struct {
	MatchThreshold float64
}

// AttendanceConfig controls the daily auto-sign-out sweep.
type AttendanceConfig struct {
	SignOutCutoff string // "HH:MM", local time
	SweepInterval time.Duration
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ems"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		Timezone:    getEnv("APP_TIMEZONE", "Local"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	threshold, err := strconv.ParseFloat(getEnv("FACE_MATCH_THRESHOLD", "0.45"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_MATCH_THRESHOLD: %w", err)
	}
	config.Face = FaceConfig{MatchThreshold: threshold}

	sweepInterval, err := time.ParseDuration(getEnv("ATTENDANCE_SWEEP_INTERVAL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SWEEP_INTERVAL: %w", err)
	}
	config.Attendance = AttendanceConfig{
		SignOutCutoff: getEnv("ATTENDANCE_SIGNOUT_CUTOFF", "18:00"),
		SweepInterval: sweepInterval,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Face.MatchThreshold <= 0 || c.Face.MatchThreshold > 2 {
		return fmt.Errorf("FACE_MATCH_THRESHOLD must be in (0, 2]")
	}
	if _, _, err := c.Attendance.CutoffClock(); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// CutoffClock parses the sign-out cutoff into hour and minute.
func (a AttendanceConfig) CutoffClock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", a.SignOutCutoff)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ATTENDANCE_SIGNOUT_CUTOFF: %w", err)
	}
	return t.Hour(), t.Minute(), nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
