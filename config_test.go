package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/fittrack")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	want := appConfig{
		DBURL:          "postgres://localhost/fittrack",
		ListenAddr:     "localhost:3000",
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}
	if diff := cmp.Diff(want, loadConfig()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://db/fittrack")
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	want := appConfig{
		DBURL:          "postgres://db/fittrack",
		ListenAddr:     ":8080",
		CORSOrigins:    []string{"https://a.example.com", "https://b.example.com"},
		RateLimitRPS:   0,
		RateLimitBurst: 20,
	}
	if diff := cmp.Diff(want, loadConfig()); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
