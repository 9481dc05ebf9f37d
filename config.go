package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"lg/fitness-tracker-api/fitcalc"
)

// config is read from the environment (after .env is loaded).
type config struct {
	DBURL               string
	Port                string
	AllowedOrigins      []string
	CalorieAdjustment   float64
	FallbackActivity    fitcalc.ActivityLevel
	ExerciseCatalogPath string
	LogLevel            string
	LogFormatJSON       bool
	LogFile             string
}

func loadConfig() (*config, error) {
	cfg := &config{
		DBURL:               os.Getenv("DB_URL"),
		Port:                getEnv("PORT", "3000"),
		AllowedOrigins:      splitList(getEnv("ALLOWED_ORIGINS", "*")),
		FallbackActivity:    fitcalc.ActivityLevel(getEnv("FALLBACK_ACTIVITY_LEVEL", string(fitcalc.Moderate))),
		ExerciseCatalogPath: os.Getenv("EXERCISE_CATALOG_PATH"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFile:             os.Getenv("LOG_FILE"),
	}
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	adj, err := strconv.ParseFloat(getEnv("CALORIE_ADJUSTMENT", "500"), 64)
	if err != nil || adj < 0 {
		return nil, fmt.Errorf("CALORIE_ADJUSTMENT must be a non-negative number")
	}
	cfg.CalorieAdjustment = adj

	if !fitcalc.ValidActivityLevel(cfg.FallbackActivity) {
		return nil, fmt.Errorf("FALLBACK_ACTIVITY_LEVEL %q is not a known activity level", cfg.FallbackActivity)
	}

	cfg.LogFormatJSON, _ = strconv.ParseBool(getEnv("LOG_FORMAT_JSON", "false"))
	return cfg, nil
}

// calculator builds the fitcalc.Calculator for the configured tunables.
func (c *config) calculator() fitcalc.Calculator {
	return fitcalc.Calculator{
		CalorieAdjustment: c.CalorieAdjustment,
		FallbackActivity:  c.FallbackActivity,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
