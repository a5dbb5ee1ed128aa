package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	PostgresDSN   string
	SweepInterval time.Duration

	EnableExpirySweep   bool
	EnableResultArchive bool
	EnableExpiryEvents  bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "podium"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	sweepInterval := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("SWEEP_INTERVAL_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			sweepInterval = time.Duration(seconds) * time.Second
		}
	}

	return Config{
		ServiceName:   service,
		HTTPPort:      port,
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		SweepInterval: sweepInterval,

		EnableExpirySweep:   envBool("ENABLE_EXPIRY_SWEEP", true),
		EnableResultArchive: envBool("ENABLE_RESULT_ARCHIVE", true),
		EnableExpiryEvents:  envBool("ENABLE_EXPIRY_EVENTS", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
