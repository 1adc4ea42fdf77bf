package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	InputCSVPath  string
	OutputCSVPath string

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogLevel      string

	FractionPrepass  bool
	ExtractLocations bool
	PrintReport      bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		InputCSVPath:  getEnv("INPUT_CSV", "./data/listings.csv"),
		OutputCSVPath: getEnv("OUTPUT_CSV", "./output/processed_listings.csv"),

		LogFile:       getEnv("LOG_FILE", "data_cleaning.log"),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 5),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),

		FractionPrepass:  getEnvBool("FRACTION_PREPASS", true),
		ExtractLocations: getEnvBool("EXTRACT_LOCATIONS", false),
		PrintReport:      getEnvBool("PRINT_REPORT", true),
	}
}

// Debug reports whether debug-level logging is requested.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
