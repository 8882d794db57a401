package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oneevent/oneevent-api/internal/datasources/mocks"
	"github.com/oneevent/oneevent-api/internal/domain"
)

func TestCreateEvent_Execute(t *testing.T) {
	inserter := mocks.NewMockEventInserter(t)
	inserter.EXPECT().
		InsertEvent(mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
			return e.ID == "e1" && e.CreatedAt.Equal(testNow) && e.ExpiresAt.Equal(testNow.Add(DefaultEventLifetime))
		})).
		Return(nil)

	cmd := NewCreateEvent(inserter, EventConfig{Lifetime: DefaultEventLifetime})
	cmd.Now = fixedNow
	cmd.NewID = fixedID("e1")

	fields := validFields()
	fields.Date = ""
	fields.Title = "  Central bank holds rates  "

	event, err := cmd.Execute(testContext(), CreateEventRequest{Fields: fields})

	require.NoError(t, err)
	assert.Equal(t, "Central bank holds rates", event.Title)
	assert.Equal(t, "2025-03-10", event.Date)
	assert.Nil(t, event.WhatLikelyDoesNotChange)
}

func TestCreateEvent_Execute_Failures(t *testing.T) {
	cases := []struct {
		name      string
		fields    func() domain.EventFields
		insertErr error
		wantIs    []error
	}{
		{
			name: "blank_required_field",
			fields: func() domain.EventFields {
				f := validFields()
				f.WhyPeopleCare = "   "
				return f
			},
			wantIs: []error{domain.ErrMissingFields},
		},
		{
			name: "unknown_category",
			fields: func() domain.EventFields {
				f := validFields()
				f.Category = "Economy"
				return f
			},
			wantIs: []error{domain.ErrInvalidCategory},
		},
		{
			name: "malformed_date",
			fields: func() domain.EventFields {
				f := validFields()
				f.Date = "09/03/2025"
				return f
			},
			wantIs: []error{domain.ErrInvalidDate},
		},
		{
			name:      "store_error",
			fields:    validFields,
			insertErr: errors.New("db down"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inserter := mocks.NewMockEventInserter(t)
			if tc.insertErr != nil {
				inserter.EXPECT().InsertEvent(mock.Anything, mock.Anything).Return(tc.insertErr)
			}

			_, err := NewCreateEvent(inserter, EventConfig{Lifetime: DefaultEventLifetime}).
				Execute(testContext(), CreateEventRequest{Fields: tc.fields()})

			require.Error(t, err)
			for _, target := range tc.wantIs {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}
