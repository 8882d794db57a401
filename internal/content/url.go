package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// NormalizeURL turns admin input into an absolute http(s) URL. Input without a scheme is
// assumed to be https.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty URL", domain.ErrInvalidURL)
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme [%s]", domain.ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host", domain.ErrInvalidURL)
	}
	parsed.Scheme = scheme

	return parsed.String(), nil
}
