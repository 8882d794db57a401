package datasources

import (
	"context"
	"errors"
)

// LanguageModel sends a single user-role prompt to a hosted model and returns its raw text.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var ErrLanguageModelNotConfigured = errors.New("no language model configured")

// NullLanguageModel is used when no LLM driver is configured; every call fails.
type NullLanguageModel struct{}

var _ LanguageModel = NullLanguageModel{}

func (NullLanguageModel) Complete(_ context.Context, _ string) (string, error) {
	return "", ErrLanguageModelNotConfigured
}
