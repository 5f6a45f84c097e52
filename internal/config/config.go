package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Postgres Config (опциональный архив журнала аудита)
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Simulation Config
	TickInterval             time.Duration `env:"SIM_TICK_INTERVAL" envDefault:"5s"`
	SpawnProbability         float64       `env:"SIM_SPAWN_PROBABILITY" envDefault:"0.10"`
	ResolveProbability       float64       `env:"SIM_RESOLVE_PROBABILITY" envDefault:"0.50"`
	FlipProbability          float64       `env:"SIM_FLIP_PROBABILITY" envDefault:"0.05"`
	FalsePositiveProbability float64       `env:"SIM_FALSE_POSITIVE_PROBABILITY" envDefault:"0.02"`

	// Audit Config: какие типы сущностей попадают в журнал аудита
	AuditEntityTypes []string `env:"AUDIT_ENTITY_TYPES" envDefault:"Alerta,Cámara"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		WebhookURL:               os.Getenv("WEBHOOK_URL"),
		WebhookSecret:            os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:           getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:        getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:         getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		TickInterval:             getEnvAsDuration("SIM_TICK_INTERVAL", 5*time.Second),
		SpawnProbability:         getEnvAsFloat("SIM_SPAWN_PROBABILITY", 0.10),
		ResolveProbability:       getEnvAsFloat("SIM_RESOLVE_PROBABILITY", 0.50),
		FlipProbability:          getEnvAsFloat("SIM_FLIP_PROBABILITY", 0.05),
		FalsePositiveProbability: getEnvAsFloat("SIM_FALSE_POSITIVE_PROBABILITY", 0.02),
		AuditEntityTypes:         getEnvAsList("AUDIT_ENTITY_TYPES", []string{"Alerta", "Cámara"}),
		APIKeys:                  getEnvAsList("API_KEYS", nil),
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает значение переменной окружения как список через запятую
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	items := strings.Split(value, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
