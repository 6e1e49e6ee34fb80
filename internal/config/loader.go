package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the reservation service.
type Config struct {
	HTTPPort          int
	SQLiteDSN         string
	RoomsPath         string
	TimetableSeedPath string
	ChatLambdaURL     string
	ChatTimeout       time.Duration
}

// Load parses configuration values from the current process environment.
//
// The loader applies sensible defaults for optional fields while validating
// the rest and reporting localized error messages for bad entries. The chat
// relay URL is optional; the relay reports itself unconfigured when absent.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:    8000,
		SQLiteDSN:   "file:reservation.db",
		ChatTimeout: 30 * time.Second,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("RESERVATION_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "RESERVATION_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("RESERVATION_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if roomsPath := strings.TrimSpace(os.Getenv("RESERVATION_ROOMS_PATH")); roomsPath != "" {
		cfg.RoomsPath = roomsPath
	}

	if seedPath := strings.TrimSpace(os.Getenv("RESERVATION_TIMETABLE_PATH")); seedPath != "" {
		cfg.TimetableSeedPath = seedPath
	}

	if lambdaURL := strings.TrimSpace(os.Getenv("RESERVATION_CHAT_LAMBDA_URL")); lambdaURL != "" {
		cfg.ChatLambdaURL = lambdaURL
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("RESERVATION_CHAT_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "RESERVATION_CHAT_TIMEOUT")
		} else {
			cfg.ChatTimeout = timeout
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("환경 변수 값이 올바르지 않습니다: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
