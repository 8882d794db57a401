package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.ActiveEventLister
	CacheMaxAge     time.Duration
	Now             func() time.Time
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	feed := &feeds.Feed{
		Title:       "One Event",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Events currently in the feed, newest first",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     now,
	}

	events, err := c.Lister.ListActiveEvents(ctx, now)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch events for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, e := range events {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          e.ID,
			IsPermaLink: "false",
			Title:       e.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/events/" + e.ID},
			Description: e.WhatHappened,
			Content:     e.WhatThisMeans,
			Created:     e.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
