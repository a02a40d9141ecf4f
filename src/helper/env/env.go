package env

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// GetString extracts a String value from the given environment variable
func GetString(name string, defaultValue ...string) string {
	value := os.Getenv(name)
	if value == "" && len(defaultValue) > 0 {
		value = defaultValue[0]
	}
	return value
}

// MustGetString extracts a String value from the given environment variable
// It panics if the environment variable is not present
func MustGetString(name string) string {
	value := os.Getenv(name)
	if value == "" {
		panic(fmt.Sprintf("%s can't be empty", name))
	}
	return value
}

// GetInt extracts an Int value from the given environment variable
func GetInt(name string, defaultValue ...int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil && len(defaultValue) > 0 {
		value = defaultValue[0]
	}
	return value
}

// GetInt64 extracts an Int64 value from the given environment variable
func GetInt64(name string, defaultValue ...int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(name), 10, 64)
	if err != nil && len(defaultValue) > 0 {
		value = defaultValue[0]
	}
	return value
}

// GetBool extracts a Bool value from the given environment variable
func GetBool(name string, defaultValue ...bool) bool {
	value, err := strconv.ParseBool(os.Getenv(name))
	if err != nil && len(defaultValue) > 0 {
		value = defaultValue[0]
	}
	return value
}

// GetList splits a comma separated environment variable, dropping blank items.
// The default is used when the variable is unset or holds no items.
func GetList(name string, defaultValue ...string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(name), ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	if len(items) == 0 && len(defaultValue) > 0 {
		return append([]string(nil), defaultValue...)
	}
	return items
}

// GetLogLevel parses a slog level name ("debug", "info", "warn", "error", with
// optional offsets such as "warn+2"). An unset variable gives the default; an
// unknown value gives the default together with the parse error.
func GetLogLevel(name string, defaultValue slog.Level) (slog.Level, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return defaultValue, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultValue, fmt.Errorf("env.GetLogLevel - %s=%q: %w", name, value, err)
	}
	return level, nil
}
