package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneevent/oneevent-api/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relevance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSelectEventsConfig(t *testing.T) {
	path := writeConfigFile(t, `
min_score: 30
relevance:
  interest_match_points: 35
  cap_interest_subtotal: true
  career_categories:
    other: science
`)

	config, err := LoadSelectEventsConfig(path)
	require.NoError(t, err)

	defaults := domain.DefaultRelevanceConfig()
	assert.Equal(t, 30, config.MinScore)
	assert.Equal(t, 35, config.Relevance.InterestMatchPoints)
	assert.True(t, config.Relevance.CapInterestSubtotal)
	assert.Equal(t, defaults.CareerMatchPoints, config.Relevance.CareerMatchPoints)
	assert.Equal(t, domain.CategoryScience, config.Relevance.CareerCategories[domain.CareerOther])
	assert.Equal(t, domain.CategoryEconomy, config.Relevance.CareerCategories[domain.CareerFinance])
}

func TestLoadSelectEventsConfig_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{name: "unknown_key", content: "min_scor: 30\n"},
		{name: "min_score_out_of_range", content: "min_score: 101\n"},
		{name: "unknown_category", content: "relevance:\n  career_categories:\n    finance: sports\n"},
		{name: "unknown_interest", content: "relevance:\n  interest_categories:\n    sports: [social]\n"},
		{name: "not_yaml", content: "min_score: [\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSelectEventsConfig(writeConfigFile(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadSelectEventsConfig_MissingFile(t *testing.T) {
	_, err := LoadSelectEventsConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
