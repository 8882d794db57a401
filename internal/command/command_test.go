package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/oneevent/oneevent-api/internal/domain"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func fixedNow() time.Time {
	return testNow
}

func fixedID(id string) func() string {
	return func() string { return id }
}

func validFields() domain.EventFields {
	return domain.EventFields{
		Title:         "Central bank holds rates",
		Date:          "2025-03-09",
		Category:      domain.CategoryEconomy,
		WhatHappened:  "The bank kept rates unchanged.",
		WhyPeopleCare: "Mortgages depend on it.",
		WhatThisMeans: "Borrowing costs stay put.",
	}
}
