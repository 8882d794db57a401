package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ExtractedEvent is the validated result of running a page through the language model.
type ExtractedEvent struct {
	SourceURL  string          `json:"source_url"`
	Fields     EventFields     `json:"fields"`
	RawPayload json.RawMessage `json:"raw_payload"`
}

const extractionPromptTemplate = `You are an editor turning a news article into a short structured briefing.

Read the article below and respond with ONLY a JSON object, no commentary and no code fences, with exactly these keys:

{
  "title": "A short, neutral headline",
  "date": "The date the event happened as YYYY-MM-DD, or an empty string if unknown",
  "category": "One of: %s",
  "what_happened": "Two or three sentences describing the facts",
  "why_people_care": "Why this matters to ordinary people",
  "what_this_means": "Practical implications for the reader",
  "what_likely_does_not_change": "What stays the same despite the news, or null"
}

Article:
%s`

// BuildExtractionPrompt renders the single user-role prompt sent to the language model.
func BuildExtractionPrompt(content string) string {
	categories := make([]string, 0, len(ValidCategories))
	for _, c := range ValidCategories {
		categories = append(categories, string(c))
	}
	return fmt.Sprintf(extractionPromptTemplate, strings.Join(categories, ", "), content)
}

// ParseModelOutput recovers the JSON object from a model completion. Markdown code fences are
// stripped; if the remainder is not a bare object the span from the first '{' to the last '}'
// is tried. Failures are returned as *ParseError carrying the raw output.
func ParseModelOutput(raw string) (map[string]any, json.RawMessage, error) {
	candidate, err := jsonObjectCandidate(raw)
	if err != nil {
		return nil, nil, &ParseError{Raw: raw, Err: err}
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, nil, &ParseError{Raw: raw, Err: err}
	}
	if payload == nil {
		return nil, nil, &ParseError{Raw: raw, Err: errors.New("JSON value is null, expected an object")}
	}

	return payload, json.RawMessage(candidate), nil
}

func jsonObjectCandidate(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))

	if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		return cleaned, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return "", errors.New("no JSON object found in output")
	}
	return cleaned[start : end+1], nil
}

// EventFieldsFromPayload converts a parsed model payload into event fields and validates them.
// A missing or blank date becomes the calendar date of now; every other violation is collected
// into a single *ValidationError.
func EventFieldsFromPayload(payload map[string]any, now time.Time) (EventFields, error) {
	fields := EventFields{
		Title:         payloadString(payload, "title"),
		Date:          strings.TrimSpace(payloadString(payload, "date")),
		Category:      Category(payloadString(payload, "category")),
		WhatHappened:  payloadString(payload, "what_happened"),
		WhyPeopleCare: payloadString(payload, "why_people_care"),
		WhatThisMeans: payloadString(payload, "what_this_means"),
	}
	if notChange := strings.TrimSpace(payloadString(payload, "what_likely_does_not_change")); notChange != "" {
		fields.WhatLikelyDoesNotChange = &notChange
	}
	if fields.Date == "" {
		fields.Date = now.Format(DateLayout)
	}

	if err := ValidateEventFields(fields); err != nil {
		return fields, err
	}
	return fields, nil
}

// payloadString reads a key as text. Absent keys and JSON null read as "", other scalars are
// formatted so a present non-string value still counts as present.
func payloadString(payload map[string]any, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64, bool:
		return fmt.Sprint(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
