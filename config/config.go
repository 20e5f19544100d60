package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	LogMode   string
	ClientURL string

	FirebaseCredentials string
	OpenAIAPIKey        string
	MapsAPIKey          string

	MLBaseURL        string
	MLConnectTimeout time.Duration
	MLReadTimeout    time.Duration

	AnalysisWorkers int
	AnalysisTimeout time.Duration
	PersistTimeout  time.Duration

	ReanalysisSchedule string
	MLHealthSchedule   string
}

// Load reads .env (if any) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}

	return Config{
		Port:      getEnv("PORT", "8080"),
		LogMode:   getEnv("LOG_MODE", "development"),
		ClientURL: getEnv("CLIENT_URL", ""),

		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		MapsAPIKey:          getEnv("MAPS_CREDENTIALS", ""),

		MLBaseURL:        strings.TrimRight(getEnv("ML_API_URL", "http://localhost:8000"), "/"),
		MLConnectTimeout: getEnvDuration("ML_CONNECT_TIMEOUT", 5*time.Second),
		MLReadTimeout:    getEnvDuration("ML_READ_TIMEOUT", 30*time.Second),

		AnalysisWorkers: getEnvInt("ANALYSIS_WORKERS", 8),
		AnalysisTimeout: getEnvDuration("ANALYSIS_TIMEOUT", 0),
		PersistTimeout:  getEnvDuration("PERSIST_TIMEOUT", 10*time.Second),

		ReanalysisSchedule: getEnv("REANALYSIS_SCHEDULE", ""),
		MLHealthSchedule:   getEnv("ML_HEALTH_SCHEDULE", "*/1 * * * *"),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvDuration accepts Go duration strings ("30s") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
