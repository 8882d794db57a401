// Command extract-event runs the extraction pipeline against a single article URL.
//
// With -dry-run the extracted event is printed as JSON and nothing is stored.
// Otherwise a draft is recorded in MySQL, rejected with the failure reason if
// extraction fails.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oneevent/oneevent-api/internal/app"
	"github.com/oneevent/oneevent-api/internal/command"
	"github.com/oneevent/oneevent-api/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	url := flag.String("url", "", "article URL to extract an event from")
	dryRun := flag.Bool("dry-run", false, "print the extracted event instead of storing a draft")
	flag.Parse()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	// stdout carries the extracted JSON.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if *url == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(ctx, *url, *dryRun); err != nil {
		logger.ErrorContext(ctx, "event extraction failed",
			"error", err,
			"stage", domain.ExtractionStageOf(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, url string, dryRun bool) error {
	extractEvent, err := app.SetupExtractEvent(ctx)
	if err != nil {
		return fmt.Errorf("setting up extraction: %w", err)
	}

	if dryRun {
		extracted, err := extractEvent.Execute(ctx, command.ExtractEventRequest{URL: url})
		if err != nil {
			var parseErr *domain.ParseError
			if errors.As(err, &parseErr) {
				fmt.Fprintln(os.Stderr, parseErr.Raw)
			}
			return err
		}
		return printJSON(extracted)
	}

	repo, err := app.SetupRepository(ctx)
	if err != nil {
		return err
	}

	draft, err := command.NewExtractDraft(extractEvent, repo, repo).
		Execute(ctx, command.ExtractDraftRequest{URL: url})
	if err != nil {
		if draft.ID != "" {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "recorded rejected draft", "draft_id", draft.ID)
		}
		return err
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "recorded draft", "draft_id", draft.ID)
	return printJSON(draft)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
