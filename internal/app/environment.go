package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oneevent/oneevent-api/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// GetEnvAsStringOrDefault returns def when the variable is unset or blank.
func GetEnvAsStringOrDefault(name, def string) string {
	if s := strings.TrimSpace(os.Getenv(name)); s != "" {
		return s
	}
	return def
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	return mustParseInt(ctx, name, MustGetEnvAsString(ctx, name))
}

// GetEnvAsIntOrDefault returns def when the variable is unset or blank, and panics when it is set
// to something that is not an integer.
func GetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	s := GetEnvAsStringOrDefault(name, "")
	if s == "" {
		return def
	}
	return mustParseInt(ctx, name, s)
}

func mustParseInt(ctx context.Context, name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	return mustParseDuration(ctx, name, MustGetEnvAsString(ctx, name))
}

// GetEnvAsDurationOrDefault returns def when the variable is unset or blank.
func GetEnvAsDurationOrDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	s := GetEnvAsStringOrDefault(name, "")
	if s == "" {
		return def
	}
	return mustParseDuration(ctx, name, s)
}

func mustParseDuration(ctx context.Context, name, s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// MustGetEnvAsStrings splits a comma-separated variable, trimming each entry and dropping empty ones.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	var values []string
	for _, v := range strings.Split(MustGetEnvAsString(ctx, name), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
