package datasources

import (
	"context"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// PageFetcher retrieves the content behind a normalized URL in a single attempt.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (domain.PageContent, error)
}

// FallbackPageFetcher tries Primary and, on any failure, Fallback. The primary failure is
// logged and only the fallback error is returned.
type FallbackPageFetcher struct {
	Primary  PageFetcher
	Fallback PageFetcher
}

var _ PageFetcher = FallbackPageFetcher{}

func (f FallbackPageFetcher) FetchPage(ctx context.Context, url string) (domain.PageContent, error) {
	page, err := f.Primary.FetchPage(ctx, url)
	if err == nil {
		return page, nil
	}

	domain.LoggerFromContext(ctx).WarnContext(ctx, "scraping service failed, falling back to direct fetch",
		"error", err, "url", url)

	return f.Fallback.FetchPage(ctx, url)
}
