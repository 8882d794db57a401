package app

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oneevent/oneevent-api/internal/command"
	"github.com/oneevent/oneevent-api/internal/domain"
)

// DefaultExtractionsPerMinute bounds how many extractions one admin can start per minute.
const DefaultExtractionsPerMinute = 10

func DefaultSelectEventsConfig() command.SelectEventsConfig {
	return command.SelectEventsConfig{
		Relevance: domain.DefaultRelevanceConfig(),
		MinScore:  domain.DefaultMinRelevanceScore,
	}
}

func DefaultEventConfig() command.EventConfig {
	return command.EventConfig{
		Lifetime: command.DefaultEventLifetime,
	}
}

type selectEventsFile struct {
	MinScore  *int                   `yaml:"min_score"`
	Relevance domain.RelevanceConfig `yaml:"relevance"`
}

// LoadSelectEventsConfig reads a YAML file that overrides the default selection config. Keys left
// out of the file keep their default values; mapping entries are merged into the defaults.
func LoadSelectEventsConfig(path string) (command.SelectEventsConfig, error) {
	config := DefaultSelectEventsConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return command.SelectEventsConfig{}, fmt.Errorf("reading relevance config: %w", err)
	}

	file := selectEventsFile{Relevance: config.Relevance}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return command.SelectEventsConfig{}, fmt.Errorf("parsing relevance config: %w", err)
	}

	config.Relevance = file.Relevance
	if file.MinScore != nil {
		config.MinScore = *file.MinScore
	}
	if err := validateSelectEventsConfig(config); err != nil {
		return command.SelectEventsConfig{}, err
	}
	return config, nil
}

func validateSelectEventsConfig(config command.SelectEventsConfig) error {
	if config.MinScore < 0 || config.MinScore > domain.MaxRelevanceScore {
		return fmt.Errorf("min_score [%d] must be between 0 and %d", config.MinScore, domain.MaxRelevanceScore)
	}
	for interest, categories := range config.Relevance.InterestCategories {
		if !interest.IsValid() {
			return fmt.Errorf("unknown interest [%s] in interest_categories", interest)
		}
		for _, category := range categories {
			if !category.IsValid() {
				return fmt.Errorf("unknown category [%s] for interest [%s]", category, interest)
			}
		}
	}
	for career, category := range config.Relevance.CareerCategories {
		if !career.IsValid() {
			return fmt.Errorf("unknown career field [%s] in career_categories", career)
		}
		if !category.IsValid() {
			return fmt.Errorf("unknown category [%s] for career field [%s]", category, career)
		}
	}
	return nil
}
