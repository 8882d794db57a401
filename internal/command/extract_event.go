package command

import (
	"context"
	"time"

	"github.com/oneevent/oneevent-api/internal/content"
	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type ExtractEventRequest struct {
	URL string
}

// ExtractEvent turns a news URL into validated event fields: fetch, clean, prompt the language
// model, then parse and validate its answer. Every failure is a *domain.ExtractionError naming
// the stage it happened in. Nothing is retried.
type ExtractEvent struct {
	Fetcher datasources.PageFetcher
	Model   datasources.LanguageModel
	Now     func() time.Time
}

func NewExtractEvent(fetcher datasources.PageFetcher, model datasources.LanguageModel) *ExtractEvent {
	return &ExtractEvent{
		Fetcher: fetcher,
		Model:   model,
		Now:     time.Now,
	}
}

func (c *ExtractEvent) Execute(ctx context.Context, req ExtractEventRequest) (domain.ExtractedEvent, error) {
	logger := domain.LoggerFromContext(ctx)

	url, err := content.NormalizeURL(req.URL)
	if err != nil {
		return domain.ExtractedEvent{}, &domain.ExtractionError{Stage: domain.StageFetch, Err: err}
	}

	started := time.Now()
	page, err := c.Fetcher.FetchPage(ctx, url)
	if err != nil {
		return domain.ExtractedEvent{}, &domain.ExtractionError{Stage: domain.StageFetch, Err: err}
	}
	logger.DebugContext(ctx, "fetched page",
		"url", url, "fetcher", page.Fetcher, "markdown", page.IsMarkdown,
		"bytes", len(page.Body), "duration", time.Since(started))

	cleaned, err := content.Clean(page.Body, page.IsMarkdown)
	if err != nil {
		return domain.ExtractedEvent{}, &domain.ExtractionError{Stage: domain.StageContent, Err: err}
	}

	started = time.Now()
	output, err := c.Model.Complete(ctx, domain.BuildExtractionPrompt(cleaned))
	if err != nil {
		return domain.ExtractedEvent{}, &domain.ExtractionError{Stage: domain.StageModel, Err: err}
	}
	logger.DebugContext(ctx, "model completed", "url", url, "duration", time.Since(started))

	payload, raw, err := domain.ParseModelOutput(output)
	if err != nil {
		logger.WarnContext(ctx, "model output could not be parsed", "url", url, "error", err, "raw", output)
		return domain.ExtractedEvent{}, &domain.ExtractionError{Stage: domain.StageParse, Err: err}
	}

	fields, err := domain.EventFieldsFromPayload(payload, c.Now())
	if err != nil {
		return domain.ExtractedEvent{}, &domain.ExtractionError{Stage: domain.StageValidation, Err: err}
	}

	return domain.ExtractedEvent{
		SourceURL:  url,
		Fields:     fields,
		RawPayload: raw,
	}, nil
}
