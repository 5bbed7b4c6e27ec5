package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	RateLimit  RateLimitConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// RateLimitConfig holds the transport-layer request limiter settings
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// AttendanceConfig holds the calendar business rules
type AttendanceConfig struct {
	WeeklyOffDay  time.Weekday
	WeekdayHours  float64
	SaturdayHours float64
	LeavesAllowed int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Rate limit configuration
	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	rateWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	config.RateLimit = RateLimitConfig{
		Limit:  rateLimit,
		Window: rateWindow,
	}

	// Attendance policy configuration
	offDay, err := parseWeekday(getEnv("WEEKLY_OFF_DAY", "Sunday"))
	if err != nil {
		return nil, err
	}
	weekdayHours, err := strconv.ParseFloat(getEnv("WEEKDAY_EXPECTED_HOURS", "8.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WEEKDAY_EXPECTED_HOURS: %w", err)
	}
	saturdayHours, err := strconv.ParseFloat(getEnv("SATURDAY_EXPECTED_HOURS", "4.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SATURDAY_EXPECTED_HOURS: %w", err)
	}
	leavesAllowed, err := strconv.Atoi(getEnv("LEAVES_ALLOWED", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVES_ALLOWED: %w", err)
	}
	config.Attendance = AttendanceConfig{
		WeeklyOffDay:  offDay,
		WeekdayHours:  weekdayHours,
		SaturdayHours: saturdayHours,
		LeavesAllowed: leavesAllowed,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
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

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("invalid WEEKLY_OFF_DAY: %q", s)
	}
	return day, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
