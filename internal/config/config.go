package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/coastal_verification_system/internal/models"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Базовые веса слоев; должны суммироваться в 1.0 ± 1e-6
	LayerWeights map[models.LayerName]float64

	// Пороги классификации композитного score
	ApproveThreshold float64
	ReviewThreshold  float64

	// Evaluation Coordinator
	LayerTimeout        time.Duration
	LayerMaxRetries     int
	RetryBaseDelay      time.Duration
	MaxConcurrentLayers int

	// Review Queue
	ClaimTTL time.Duration

	// Health tracker
	HealthWindowSize  int
	DegradedErrorRate float64
	DownErrorRate     float64

	// Notification Config
	NotifyURL        string
	NotifySecret     string
	NotifyTimeout    time.Duration
	NotifyMaxRetries int
	NotifyBaseDelay  time.Duration

	// Ticket Config
	TicketURL     string
	TicketTimeout time.Duration

	// Внешние источники данных для слоев
	GeofenceURL        string
	WeatherURL         string
	TextClassifierURL  string
	ImageClassifierURL string
	CredibilityURL     string

	// API Keys for authentication
	APIKeys []string
}

// defaultLayerWeights — таблица весов по умолчанию
func defaultLayerWeights() map[models.LayerName]float64 {
	return map[models.LayerName]float64{
		models.LayerGeofence: 0.20,
		models.LayerWeather:  0.25,
		models.LayerText:     0.25,
		models.LayerImage:    0.20,
		models.LayerReporter: 0.10,
	}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		ApproveThreshold:    getEnvAsFloat("APPROVE_THRESHOLD", 75),
		ReviewThreshold:     getEnvAsFloat("REVIEW_THRESHOLD", 40),
		LayerTimeout:        getEnvAsDuration("LAYER_TIMEOUT", 5*time.Second),
		LayerMaxRetries:     getEnvAsInt("LAYER_MAX_RETRIES", 2),
		RetryBaseDelay:      getEnvAsDuration("RETRY_BASE_DELAY", 500*time.Millisecond),
		MaxConcurrentLayers: getEnvAsInt("MAX_CONCURRENT_LAYERS", 5),
		ClaimTTL:            getEnvAsDuration("CLAIM_TTL", 10*time.Minute),
		HealthWindowSize:    getEnvAsInt("HEALTH_WINDOW_SIZE", 50),
		DegradedErrorRate:   getEnvAsFloat("DEGRADED_ERROR_RATE", 0.1),
		DownErrorRate:       getEnvAsFloat("DOWN_ERROR_RATE", 0.5),
		NotifyURL:           os.Getenv("NOTIFY_URL"),
		NotifySecret:        os.Getenv("NOTIFY_SECRET"),
		NotifyTimeout:       getEnvAsDuration("NOTIFY_TIMEOUT", 5*time.Second),
		NotifyMaxRetries:    getEnvAsInt("NOTIFY_MAX_RETRIES", 3),
		NotifyBaseDelay:     getEnvAsDuration("NOTIFY_BASE_DELAY", 1*time.Second),
		TicketURL:           os.Getenv("TICKET_URL"),
		TicketTimeout:       getEnvAsDuration("TICKET_TIMEOUT", 5*time.Second),
		GeofenceURL:         os.Getenv("GEOFENCE_URL"),
		WeatherURL:          os.Getenv("WEATHER_URL"),
		TextClassifierURL:   os.Getenv("TEXT_CLASSIFIER_URL"),
		ImageClassifierURL:  os.Getenv("IMAGE_CLASSIFIER_URL"),
		CredibilityURL:      os.Getenv("CREDIBILITY_URL"),
	}

	weights, err := parseLayerWeights(os.Getenv("LAYER_WEIGHTS"))
	if err != nil {
		return nil, err
	}
	cfg.LayerWeights = weights

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет инварианты конфигурации на старте
func (c *Config) validate() error {
	sum := 0.0
	for layer, w := range c.LayerWeights {
		if w < 0 {
			return fmt.Errorf("layer weight for %q must be non-negative, got %f", layer, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("layer weights must sum to 1.0, got %f", sum)
	}

	if c.ReviewThreshold >= c.ApproveThreshold {
		return fmt.Errorf("REVIEW_THRESHOLD (%f) must be below APPROVE_THRESHOLD (%f)", c.ReviewThreshold, c.ApproveThreshold)
	}
	return nil
}

// parseLayerWeights разбирает строку вида "geofence:0.20,weather:0.25,...".
// Пустая строка дает таблицу по умолчанию.
func parseLayerWeights(raw string) (map[models.LayerName]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultLayerWeights(), nil
	}

	known := map[models.LayerName]bool{}
	for _, l := range models.AllLayers() {
		known[l] = true
	}

	weights := make(map[models.LayerName]float64)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid LAYER_WEIGHTS entry %q, expected name:weight", pair)
		}
		name := models.LayerName(strings.TrimSpace(parts[0]))
		if !known[name] {
			return nil, fmt.Errorf("unknown layer %q in LAYER_WEIGHTS", name)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for layer %q: %w", name, err)
		}
		weights[name] = value
	}
	return weights, nil
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
