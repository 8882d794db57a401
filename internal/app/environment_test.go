package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oneevent/oneevent-api/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnvAsStrings(t *testing.T) {
	t.Setenv("AUTH_DRIVERS", " auth0, ,jwt_secret ")
	assert.Equal(t, []string{"auth0", "jwt_secret"}, MustGetEnvAsStrings(testContext(), "AUTH_DRIVERS"))

	t.Setenv("AUTH_DRIVERS", "")
	assert.Empty(t, MustGetEnvAsStrings(testContext(), "AUTH_DRIVERS"))
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("LLM_DRIVER", "  ")
	assert.Equal(t, "null", GetEnvAsStringOrDefault("LLM_DRIVER", "null"))

	t.Setenv("EXTRACTION_RATE_PER_MINUTE", "")
	assert.Equal(t, 10, GetEnvAsIntOrDefault(testContext(), "EXTRACTION_RATE_PER_MINUTE", 10))

	t.Setenv("EXTRACTION_RATE_PER_MINUTE", "3")
	assert.Equal(t, 3, GetEnvAsIntOrDefault(testContext(), "EXTRACTION_RATE_PER_MINUTE", 10))

	t.Setenv("FETCH_TIMEOUT", "15s")
	assert.Equal(t, 15*time.Second, GetEnvAsDurationOrDefault(testContext(), "FETCH_TIMEOUT", 0))
}

func TestMustGetEnv_Panics(t *testing.T) {
	t.Setenv("PORT", "eighty")
	assert.Panics(t, func() { MustGetEnvAsInt(testContext(), "PORT") })

	t.Setenv("HTTP_TLS_DISABLED", "yes")
	assert.Panics(t, func() { MustGetEnvAsBoolean(testContext(), "HTTP_TLS_DISABLED") })

	assert.Panics(t, func() { MustGetEnvAsString(testContext(), "ONEEVENT_UNSET_VARIABLE") })
}
