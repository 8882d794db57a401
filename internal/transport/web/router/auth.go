package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/oneevent/oneevent-api/internal/domain"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method string
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeMessage(w, http.StatusUnauthorized, err.Error())
					return
				}

				logger := domain.LoggerFromContext(r.Context()).With("user_id", result.UserID)
				ctx := domain.ContextWithLogger(r.Context(), logger)
				ctx = domain.ContextWithUserID(ctx, result.UserID)
				logger.DebugContext(ctx, "request authenticated", "method", result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens, sent as "Bearer auth0|<token>".
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, errors.New("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: "auth0",
		}, nil
	}, nil
}

// NewJWTSecretValidator creates a validator for HS256 tokens signed with a shared secret, as issued
// by hosted identity providers. It handles every bearer token not claimed by another validator, so
// it must be registered last.
func NewJWTSecretValidator(secret, issuer, audience string) (AuthValidator, error) {
	if secret == "" {
		return nil, errors.New("empty JWT secret")
	}

	keyFunc := func(context.Context) (interface{}, error) {
		return []byte(secret), nil
	}
	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		issuer,
		[]string{audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		if strings.HasPrefix(r.Header.Get("Authorization"), auth0AuthHeaderPrefix) {
			return nil, nil
		}

		raw, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
		if err != nil {
			return nil, errors.New("malformed authorization header")
		}
		if raw == "" {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), raw)
		if err != nil {
			return nil, errors.New("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: "jwt_secret",
		}, nil
	}, nil
}
