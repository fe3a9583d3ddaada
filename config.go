package main

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// appConfig is read once at startup from the environment (after .env).
type appConfig struct {
	DBURL          string
	ListenAddr     string
	CORSOrigins    []string
	RateLimitRPS   int
	RateLimitBurst int
}

func loadConfig() appConfig {
	cfg := appConfig{
		DBURL:          strings.TrimSpace(os.Getenv("DB_URL")),
		ListenAddr:     strings.TrimSpace(os.Getenv("LISTEN_ADDR")),
		CORSOrigins:    envList("CORS_ALLOWED_ORIGINS"),
		RateLimitRPS:   envInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 20),
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "localhost:3000"
	}
	if cfg.DBURL == "" {
		log.Println("WARNING: DB_URL is not set")
	}
	if len(cfg.CORSOrigins) == 0 {
		log.Println("WARNING: CORS_ALLOWED_ORIGINS is empty, cross-origin requests will be rejected")
	}
	return cfg
}

// envInt reads an int env var with a default value. Unparseable values fall
// back to the default with a warning.
func envInt(key string, defaultVal int) int {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("WARNING: %s=%q is not an integer, using %d", key, s, defaultVal)
		return defaultVal
	}
	return v
}

// envList splits a comma-separated env var, dropping blanks.
func envList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
