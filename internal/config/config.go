package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	Quiz        QuizConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// QuizConfig holds quiz scoring and display settings
type QuizConfig struct {
	CorrectPoints   int
	IncorrectPoints int
	MaxLength       int
	OriginGlyph     string
	TargetGlyph     string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vokabel"),
			User:     getEnv("DB_USER", "vokabel"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	var err error
	if cfg.Quiz, err = loadQuizConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadQuizConfig() (QuizConfig, error) {
	cfg := QuizConfig{
		OriginGlyph: getEnv("ORIGIN_GLYPH", "🇬🇧"),
		TargetGlyph: getEnv("TARGET_GLYPH", "🇩🇪"),
	}

	var err error
	if cfg.CorrectPoints, err = getEnvInt("QUIZ_CORRECT_PTS", 10); err != nil {
		return cfg, err
	}
	if cfg.IncorrectPoints, err = getEnvInt("QUIZ_INCORRECT_PTS", 0); err != nil {
		return cfg, err
	}
	if cfg.MaxLength, err = getEnvInt("QUIZ_MAX_LENGTH", 20); err != nil {
		return cfg, err
	}

	if cfg.CorrectPoints <= 0 {
		return cfg, fmt.Errorf("QUIZ_CORRECT_PTS must be positive")
	}
	if cfg.IncorrectPoints > 0 {
		return cfg, fmt.Errorf("QUIZ_INCORRECT_PTS cannot be positive")
	}
	if cfg.MaxLength <= 0 {
		return cfg, fmt.Errorf("QUIZ_MAX_LENGTH must be positive")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
