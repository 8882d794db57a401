package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by storage when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	ErrInvalidURL          = errors.New("invalid URL")
	ErrInsufficientContent = errors.New("insufficient content")
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidPreferences  = errors.New("invalid preferences")

	ErrInvalidDraftStatus      = errors.New("invalid draft status")
	ErrDraftNotEditable        = errors.New("draft is not editable")
	ErrInvalidStatusTransition = errors.New("invalid draft status transition")
)

// FetchErrorKind classifies why a page could not be retrieved.
type FetchErrorKind string

const (
	FetchErrorBlocked          FetchErrorKind = "blocked"
	FetchErrorNotFound         FetchErrorKind = "not_found"
	FetchErrorRateLimited      FetchErrorKind = "rate_limited"
	FetchErrorUpstream         FetchErrorKind = "upstream"
	FetchErrorNetwork          FetchErrorKind = "network"
	FetchErrorEmptyBody        FetchErrorKind = "empty_body"
	FetchErrorUnexpectedStatus FetchErrorKind = "unexpected_status"
)

// FetchError is a classified content retrieval failure with a message an admin can act on.
type FetchError struct {
	Kind       FetchErrorKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	var msg string
	switch e.Kind {
	case FetchErrorBlocked:
		msg = "the site blocked the request (403); try the scraping service or paste the content manually"
	case FetchErrorNotFound:
		msg = "the page was not found (404); check the URL"
	case FetchErrorRateLimited:
		msg = "the site is rate limiting requests (429); wait a few minutes and try again"
	case FetchErrorUpstream:
		msg = fmt.Sprintf("the site returned a server error (%d); try again later", e.StatusCode)
	case FetchErrorNetwork:
		msg = "the site could not be reached; check the URL and your connection"
	case FetchErrorEmptyBody:
		msg = "the site returned an empty page"
	default:
		msg = fmt.Sprintf("the site returned an unexpected status (%d)", e.StatusCode)
	}

	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %s: %v", e.URL, msg, e.Err)
	}
	return fmt.Sprintf("fetching %s: %s", e.URL, msg)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchErrorKindForStatus maps a non-success HTTP status to a fetch error kind.
func FetchErrorKindForStatus(status int) FetchErrorKind {
	switch {
	case status == 403:
		return FetchErrorBlocked
	case status == 404:
		return FetchErrorNotFound
	case status == 429:
		return FetchErrorRateLimited
	case status >= 500:
		return FetchErrorUpstream
	default:
		return FetchErrorUnexpectedStatus
	}
}

// ParseError means the model output held no parseable JSON object. Raw keeps the output for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model output is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError lists every violation of the event contract found in one pass.
type ValidationError struct {
	MissingFields   []string
	CategoryInvalid bool
	InvalidCategory string
	InvalidDate     string
}

func (e *ValidationError) HasViolations() bool {
	return len(e.MissingFields) > 0 || e.CategoryInvalid || e.InvalidDate != ""
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", ")))
	}
	if e.CategoryInvalid {
		allowed := make([]string, 0, len(ValidCategories))
		for _, c := range ValidCategories {
			allowed = append(allowed, string(c))
		}
		parts = append(parts, fmt.Sprintf("invalid category [%s], allowed: %s",
			e.InvalidCategory, strings.Join(allowed, ", ")))
	}
	if e.InvalidDate != "" {
		parts = append(parts, fmt.Sprintf("invalid date [%s], expected YYYY-MM-DD", e.InvalidDate))
	}
	return strings.Join(parts, "; ")
}

// Is lets callers test for each violation kind with errors.Is.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrMissingFields:
		return len(e.MissingFields) > 0
	case ErrInvalidCategory:
		return e.CategoryInvalid
	case ErrInvalidDate:
		return e.InvalidDate != ""
	default:
		return false
	}
}

// ExtractionStage names the pipeline step an extraction failed in.
type ExtractionStage string

const (
	StageFetch      ExtractionStage = "fetch"
	StageContent    ExtractionStage = "content"
	StageModel      ExtractionStage = "model"
	StageParse      ExtractionStage = "parse"
	StageValidation ExtractionStage = "validation"
)

// ExtractionError tags a pipeline failure with its stage.
type ExtractionError struct {
	Stage ExtractionStage
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed at %s stage: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ExtractionStageOf returns the stage of an extraction failure, or "" if err is not one.
func ExtractionStageOf(err error) ExtractionStage {
	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr.Stage
	}
	return ""
}
