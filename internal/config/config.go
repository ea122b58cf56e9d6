package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MonitoredLocation - точка, для которой периодически запрашивается погода
type MonitoredLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Weather Provider Config
	OpenWeatherAPIKey string        `env:"OPENWEATHER_API_KEY"`
	WeatherTimeout    time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`
	RefreshInterval   time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`
	RetryInterval     time.Duration `env:"RETRY_INTERVAL" envDefault:"1m"`
	// Режим симуляции: детерминированная генерация погоды вместо живого API.
	// Никогда не смешивается с реальными данными.
	SimulationMode bool  `env:"SIMULATION_MODE" envDefault:"false"`
	SimulationSeed int64 `env:"SIMULATION_SEED" envDefault:"1"`

	// Verification Config
	GridCellSizeDeg   float64 `env:"GRID_CELL_SIZE_DEG" envDefault:"0.1"`
	MinReportCount    int     `env:"MIN_REPORT_COUNT" envDefault:"3"`
	MinConfidence     float64 `env:"MIN_CONFIDENCE" envDefault:"0.6"`
	VarianceThreshold float64 `env:"VARIANCE_THRESHOLD" envDefault:"9"`

	// Evacuation Config
	TravelSpeedKmh float64 `env:"TRAVEL_SPEED_KMH" envDefault:"40"`
	SafetyWeight   float64 `env:"SAFETY_WEIGHT" envDefault:"0.6"`
	CapacityWeight float64 `env:"CAPACITY_WEIGHT" envDefault:"0.4"`
	TopShelters    int     `env:"TOP_SHELTERS" envDefault:"3"`

	// Risk / Allocation Config
	RiskAlertThreshold float64 `env:"RISK_ALERT_THRESHOLD" envDefault:"0.5"`
	ZonePopulation     int     `env:"ZONE_POPULATION" envDefault:"50000"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Отслеживаемые локации
	Locations []MonitoredLocation
}

// defaultLocations - крупные города Индии (север, юг, восток, запад, центр)
var defaultLocations = []MonitoredLocation{
	{Name: "Delhi", Latitude: 28.6139, Longitude: 77.2090},
	{Name: "Chandigarh", Latitude: 30.7333, Longitude: 76.7794},
	{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	{Name: "Ahmedabad", Latitude: 23.0225, Longitude: 72.5714},
	{Name: "Kolkata", Latitude: 22.5726, Longitude: 88.3639},
	{Name: "Guwahati", Latitude: 26.1445, Longitude: 91.7362},
	{Name: "Bengaluru", Latitude: 12.9716, Longitude: 77.5946},
	{Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707},
	{Name: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867},
	{Name: "Bhopal", Latitude: 23.2599, Longitude: 77.4126},
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		OpenWeatherAPIKey:      os.Getenv("OPENWEATHER_API_KEY"),
		WeatherTimeout:         getEnvAsDuration("WEATHER_TIMEOUT", 10*time.Second),
		RefreshInterval:        getEnvAsDuration("REFRESH_INTERVAL", 5*time.Minute),
		RetryInterval:          getEnvAsDuration("RETRY_INTERVAL", time.Minute),
		SimulationMode:         getEnvAsBool("SIMULATION_MODE", false),
		SimulationSeed:         int64(getEnvAsInt("SIMULATION_SEED", 1)),
		GridCellSizeDeg:        getEnvAsFloat("GRID_CELL_SIZE_DEG", 0.1),
		MinReportCount:         getEnvAsInt("MIN_REPORT_COUNT", 3),
		MinConfidence:          getEnvAsFloat("MIN_CONFIDENCE", 0.6),
		VarianceThreshold:      getEnvAsFloat("VARIANCE_THRESHOLD", 9),
		TravelSpeedKmh:         getEnvAsFloat("TRAVEL_SPEED_KMH", 40),
		SafetyWeight:           getEnvAsFloat("SAFETY_WEIGHT", 0.6),
		CapacityWeight:         getEnvAsFloat("CAPACITY_WEIGHT", 0.4),
		TopShelters:            getEnvAsInt("TOP_SHELTERS", 3),
		RiskAlertThreshold:     getEnvAsFloat("RISK_ALERT_THRESHOLD", 0.5),
		ZonePopulation:         getEnvAsInt("ZONE_POPULATION", 50000),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		Locations:              defaultLocations,
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	// Загрузка отслеживаемых локаций в формате "Name:lat:lon;Name:lat:lon"
	if locationsStr := os.Getenv("MONITORED_LOCATIONS"); locationsStr != "" {
		locations, err := parseLocations(locationsStr)
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора MONITORED_LOCATIONS: %w", err)
		}
		cfg.Locations = locations
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if !cfg.SimulationMode && cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required unless SIMULATION_MODE is enabled")
	}

	return cfg, nil
}

// parseLocations разбирает список локаций из строки окружения
func parseLocations(s string) ([]MonitoredLocation, error) {
	parts := strings.Split(s, ";")
	locations := make([]MonitoredLocation, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("некорректная локация %q, ожидается Name:lat:lon", part)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("некорректная широта в %q: %w", part, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("некорректная долгота в %q: %w", part, err)
		}
		locations = append(locations, MonitoredLocation{
			Name:      strings.TrimSpace(fields[0]),
			Latitude:  lat,
			Longitude: lon,
		})
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("список локаций пуст")
	}
	return locations, nil
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

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
