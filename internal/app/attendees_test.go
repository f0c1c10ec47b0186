package app_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmatarekx/EventPlanner/internal/app"
)

func TestAttendeesLoad(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/events/{id}/attendees", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"event_id":"7","event_title":"Launch","attendees":[{"email":"a@b.co","role":"attendee","response":"Going"},{"email":"c@d.co","role":"attendee","response":"No Response"}],"total_attendees":2,"response_summary":{"Going":1,"Maybe":0,"Not Going":0,"No Response":1}}`))
	})

	ctrl := app.NewAttendeesController(newEventClient(t, router), &recordingNav{}, "7", time.Second)
	defer ctrl.Close()

	ctrl.Activate(context.Background())

	assert.Equal(t, "Launch", ctrl.EventTitle)
	require.Len(t, ctrl.Attendees, 2)
	assert.Equal(t, 2, ctrl.TotalAttendees)
	assert.Equal(t, 1, ctrl.ResponseSummary.Going)
	assert.Equal(t, 1, ctrl.ResponseSummary.NoResponse)
	assert.Empty(t, ctrl.Message)
}

func TestAttendeesDefaultSummaryWhenOmitted(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/events/{id}/attendees", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"event_id":"7","event_title":"Launch","attendees":[],"total_attendees":0}`))
	})

	ctrl := app.NewAttendeesController(newEventClient(t, router), &recordingNav{}, "7", time.Second)
	defer ctrl.Close()

	ctrl.Activate(context.Background())

	assert.Zero(t, ctrl.ResponseSummary.Going)
	assert.Zero(t, ctrl.ResponseSummary.Maybe)
	assert.Zero(t, ctrl.ResponseSummary.NotGoing)
	assert.Zero(t, ctrl.ResponseSummary.NoResponse)
}

func TestAttendeesForbiddenRedirectsAfterDelay(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/events/{id}/attendees", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"Only the event organizer can view attendee responses"}`))
	})

	nav := &recordingNav{}
	ctrl := app.NewAttendeesController(newEventClient(t, router), nav, "7", 100*time.Millisecond)
	defer ctrl.Close()

	ctrl.Activate(context.Background())

	assert.Equal(t, "Only the event organizer can view attendee responses", ctrl.CurrentMessage())
	assert.Empty(t, nav.Paths(), "redirect must wait for the delay")
	assert.Eventually(t, func() bool {
		paths := nav.Paths()
		return len(paths) == 1 && paths[0] == app.RouteEvents
	}, time.Second, 5*time.Millisecond)
}

func TestAttendeesOtherErrorsDoNotRedirect(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/events/{id}/attendees", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Event not found"}`))
	})

	nav := &recordingNav{}
	ctrl := app.NewAttendeesController(newEventClient(t, router), nav, "7", 10*time.Millisecond)
	defer ctrl.Close()

	ctrl.Activate(context.Background())

	assert.Equal(t, "Event not found", ctrl.CurrentMessage())
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, nav.Paths())
}

func TestAttendeesCloseCancelsRedirect(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/events/{id}/attendees", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"Only the event organizer can view attendee responses"}`))
	})

	nav := &recordingNav{}
	ctrl := app.NewAttendeesController(newEventClient(t, router), nav, "7", 100*time.Millisecond)

	ctrl.Activate(context.Background())
	ctrl.Close()

	time.Sleep(250 * time.Millisecond)
	assert.Empty(t, nav.Paths(), "no navigation after teardown")
}

func TestAttendeesRedirectsWithoutEventID(t *testing.T) {
	nav := &recordingNav{}
	ctrl := app.NewAttendeesController(newEventClient(t, chi.NewRouter()), nav, "", time.Second)
	defer ctrl.Close()

	ctrl.Activate(context.Background())
	assert.Equal(t, []string{app.RouteEvents}, nav.Paths())
}
