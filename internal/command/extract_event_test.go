package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oneevent/oneevent-api/internal/datasources/mocks"
	"github.com/oneevent/oneevent-api/internal/domain"
)

const articleText = "The central bank kept its main interest rate unchanged on Sunday, " +
	"citing steady inflation and a resilient labour market across the country."

func articlePage(url string) domain.PageContent {
	return domain.PageContent{
		URL:     url,
		Body:    "<html><body><nav>Menu</nav><article><p>" + articleText + "</p><script>track()</script></article></body></html>",
		Fetcher: "direct",
	}
}

const validModelOutput = "```json\n" + `{
  "title": "Central bank holds rates",
  "date": "",
  "category": "economy",
  "what_happened": "The bank kept rates unchanged.",
  "why_people_care": "Mortgages depend on it.",
  "what_this_means": "Borrowing costs stay put.",
  "what_likely_does_not_change": null
}` + "\n```"

func TestExtractEvent_Execute(t *testing.T) {
	fetcher := mocks.NewMockPageFetcher(t)
	model := mocks.NewMockLanguageModel(t)

	fetcher.EXPECT().FetchPage(mock.Anything, "https://example.com/news").Return(articlePage("https://example.com/news"), nil)
	model.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, articleText) &&
				!strings.Contains(prompt, "track()") &&
				!strings.Contains(prompt, "Menu")
		})).
		Return(validModelOutput, nil)

	cmd := NewExtractEvent(fetcher, model)
	cmd.Now = fixedNow

	got, err := cmd.Execute(testContext(), ExtractEventRequest{URL: " example.com/news "})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/news", got.SourceURL)
	assert.Equal(t, "Central bank holds rates", got.Fields.Title)
	assert.Equal(t, "2025-03-10", got.Fields.Date)
	assert.Equal(t, domain.CategoryEconomy, got.Fields.Category)
	assert.Nil(t, got.Fields.WhatLikelyDoesNotChange)
	assert.Contains(t, string(got.RawPayload), `"category": "economy"`)
}

func TestExtractEvent_Execute_Failures(t *testing.T) {
	const url = "https://example.com/news"

	cases := []struct {
		name      string
		input     string
		setup     func(fetcher *mocks.MockPageFetcher, model *mocks.MockLanguageModel)
		wantStage domain.ExtractionStage
		wantIs    []error
	}{
		{
			name:      "invalid_url",
			input:     "ftp://example.com/file",
			setup:     func(*mocks.MockPageFetcher, *mocks.MockLanguageModel) {},
			wantStage: domain.StageFetch,
			wantIs:    []error{domain.ErrInvalidURL},
		},
		{
			name:  "fetch_failure",
			input: url,
			setup: func(fetcher *mocks.MockPageFetcher, _ *mocks.MockLanguageModel) {
				fetcher.EXPECT().FetchPage(mock.Anything, url).
					Return(domain.PageContent{}, &domain.FetchError{Kind: domain.FetchErrorBlocked, URL: url, StatusCode: 403})
			},
			wantStage: domain.StageFetch,
		},
		{
			name:  "insufficient_content_skips_model",
			input: url,
			setup: func(fetcher *mocks.MockPageFetcher, _ *mocks.MockLanguageModel) {
				fetcher.EXPECT().FetchPage(mock.Anything, url).
					Return(domain.PageContent{URL: url, Body: "<article>Subscribe now</article>"}, nil)
			},
			wantStage: domain.StageContent,
			wantIs:    []error{domain.ErrInsufficientContent},
		},
		{
			name:  "model_failure",
			input: url,
			setup: func(fetcher *mocks.MockPageFetcher, model *mocks.MockLanguageModel) {
				fetcher.EXPECT().FetchPage(mock.Anything, url).Return(articlePage(url), nil)
				model.EXPECT().Complete(mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))
			},
			wantStage: domain.StageModel,
		},
		{
			name:  "unparseable_output",
			input: url,
			setup: func(fetcher *mocks.MockPageFetcher, model *mocks.MockLanguageModel) {
				fetcher.EXPECT().FetchPage(mock.Anything, url).Return(articlePage(url), nil)
				model.EXPECT().Complete(mock.Anything, mock.Anything).Return("Sorry, I can't do that.", nil)
			},
			wantStage: domain.StageParse,
		},
		{
			name:  "invalid_payload",
			input: url,
			setup: func(fetcher *mocks.MockPageFetcher, model *mocks.MockLanguageModel) {
				fetcher.EXPECT().FetchPage(mock.Anything, url).Return(articlePage(url), nil)
				model.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(`{"title":"T","category":"sports","what_happened":"a","what_this_means":"c"}`, nil)
			},
			wantStage: domain.StageValidation,
			wantIs:    []error{domain.ErrMissingFields, domain.ErrInvalidCategory},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockPageFetcher(t)
			model := mocks.NewMockLanguageModel(t)
			tc.setup(fetcher, model)

			cmd := NewExtractEvent(fetcher, model)
			cmd.Now = fixedNow

			_, err := cmd.Execute(testContext(), ExtractEventRequest{URL: tc.input})

			require.Error(t, err)
			assert.Equal(t, tc.wantStage, domain.ExtractionStageOf(err))
			for _, target := range tc.wantIs {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestExtractEvent_Execute_ParseErrorKeepsRawOutput(t *testing.T) {
	const url = "https://example.com/news"
	fetcher := mocks.NewMockPageFetcher(t)
	model := mocks.NewMockLanguageModel(t)

	fetcher.EXPECT().FetchPage(mock.Anything, url).Return(articlePage(url), nil)
	model.EXPECT().Complete(mock.Anything, mock.Anything).Return("{not json}", nil)

	_, err := NewExtractEvent(fetcher, model).Execute(testContext(), ExtractEventRequest{URL: url})

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "{not json}", parseErr.Raw)
}
