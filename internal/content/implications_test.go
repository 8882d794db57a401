package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneevent/oneevent-api/internal/domain"
)

func TestImplicationsFormatter_FormatImplications(t *testing.T) {
	formatter := NewImplicationsFormatter(domain.DefaultRelevanceConfig())
	event := domain.Event{Category: domain.CategoryEconomy, WhatThisMeans: "Loans get cheaper."}

	cases := []struct {
		name    string
		profile domain.UserProfile
		want    string
	}{
		{
			name:    "no_personal_signal",
			profile: domain.UserProfile{CareerField: domain.CareerOther},
			want:    "Loans get cheaper.",
		},
		{
			name:    "career_match_and_risk",
			profile: domain.UserProfile{CareerField: domain.CareerFinance, RiskTolerance: domain.RiskToleranceHigh},
			want: "Loans get cheaper.\n\n**For you:** Because you work in finance, this is likely to reach your job directly. " +
				"If you are comfortable with some risk, this could be a moment to look for opportunities.",
		},
		{
			name:    "risk_only",
			profile: domain.UserProfile{CareerField: domain.CareerHealthcare, RiskTolerance: domain.RiskToleranceLow},
			want:    "Loans get cheaper.\n\n**For you:** There is no need to act quickly; it is fine to watch how this develops before changing anything.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatter.FormatImplications(event, tc.profile))
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	got, err := RenderMarkdown("**Bold** <script>alert(1)</script> [x](javascript:alert(1))")

	assert.NoError(t, err)
	assert.Contains(t, got, "<strong>Bold</strong>")
	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "javascript:")
}
