package content

import (
	"fmt"
	"strings"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// ImplicationsFormatter personalises an event's base implications text for one reader.
type ImplicationsFormatter struct {
	careerCategories map[domain.CareerField]domain.Category
}

func NewImplicationsFormatter(config domain.RelevanceConfig) ImplicationsFormatter {
	return ImplicationsFormatter{careerCategories: config.CareerCategories}
}

var riskSentences = map[domain.RiskTolerance]string{
	domain.RiskToleranceLow:    "There is no need to act quickly; it is fine to watch how this develops before changing anything.",
	domain.RiskToleranceMedium: "It may be worth reviewing your plans, without rushing into decisions.",
	domain.RiskToleranceHigh:   "If you are comfortable with some risk, this could be a moment to look for opportunities.",
}

// FormatImplications returns the event's what_this_means text followed by a paragraph that
// relates it to the reader's career and risk tolerance. The result is Markdown.
func (f ImplicationsFormatter) FormatImplications(event domain.Event, profile domain.UserProfile) string {
	base := strings.TrimSpace(event.WhatThisMeans)

	var sentences []string
	if category, ok := f.careerCategories[profile.CareerField]; ok && category == event.Category {
		sentences = append(sentences, fmt.Sprintf(
			"Because you work in %s, this is likely to reach your job directly.", profile.CareerField))
	}
	if sentence, ok := riskSentences[profile.RiskTolerance]; ok {
		sentences = append(sentences, sentence)
	}

	if len(sentences) == 0 {
		return base
	}
	personal := "**For you:** " + strings.Join(sentences, " ")
	if base == "" {
		return personal
	}
	return base + "\n\n" + personal
}
