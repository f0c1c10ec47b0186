package app_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmatarekx/EventPlanner/internal/app"
	"github.com/salmatarekx/EventPlanner/internal/models"
)

func TestLoadToleratesMyEventsFailure(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/events/my-events", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Server Error"}`))
	})
	router.Get("/events/invited", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":2,"title":"Offsite"}]`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, time.Second)
	defer ctrl.Close()

	ctrl.Load(context.Background())

	assert.Equal(t, "Error loading organized events", ctrl.Message)
	require.Len(t, ctrl.InvitedEvents, 1)
	assert.Equal(t, "Offsite", ctrl.InvitedEvents[0].Title)
}

func TestLoadToleratesInvitedFailure(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/events/my-events", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"Standup"}]`))
	})
	router.Get("/events/invited", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Server Error"}`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, time.Second)
	defer ctrl.Close()

	ctrl.Load(context.Background())

	// The invited failure is silent and does not disturb the other listing.
	assert.Empty(t, ctrl.Message)
	require.Len(t, ctrl.OrganizedEvents, 1)
	assert.Empty(t, ctrl.InvitedEvents)
}

func TestCreateEventRequiresAllFields(t *testing.T) {
	var calls int64
	router := chi.NewRouter()
	router.Post("/events/create", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{"message":"Event created successfully","event_id":1}`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, time.Second)
	defer ctrl.Close()

	ctrl.Title = "Launch"
	ctrl.Description = "Product launch"
	// date, time, location left blank
	ctrl.CreateEvent(context.Background())

	assert.Equal(t, "Please fill all fields.", ctrl.Message)
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestCreateEventReloadsAndClearsMessage(t *testing.T) {
	var loads int64
	router := chi.NewRouter()
	router.Post("/events/create", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Event created successfully","event_id":9}`))
	})
	router.Get("/events/my-events", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&loads, 1)
		w.Write([]byte(`[{"id":9,"title":"Launch"}]`))
	})
	router.Get("/events/invited", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, 100*time.Millisecond)
	defer ctrl.Close()

	ctrl.ShowCreateForm = true
	ctrl.Title, ctrl.Description, ctrl.Date, ctrl.Time, ctrl.Location = "Launch", "Product launch", "2026-09-10", "18:00", "HQ"
	ctrl.CreateEvent(context.Background())

	assert.Equal(t, "Event created successfully", ctrl.CurrentMessage())
	assert.False(t, ctrl.ShowCreateForm)
	assert.Empty(t, ctrl.Title)
	assert.Equal(t, int64(1), atomic.LoadInt64(&loads))
	require.Len(t, ctrl.OrganizedEvents, 1)

	assert.Eventually(t, func() bool {
		return ctrl.CurrentMessage() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestDeleteEventRequiresConfirmation(t *testing.T) {
	var deletes int64
	router := chi.NewRouter()
	router.Delete("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&deletes, 1)
		w.Write([]byte(`{"message":"Event deleted successfully"}`))
	})
	router.Get("/events/my-events", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	router.Get("/events/invited", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, time.Second)
	defer ctrl.Close()

	ctrl.Confirm = func(string) bool { return false }
	ctrl.DeleteEvent(context.Background(), "3")
	assert.Zero(t, atomic.LoadInt64(&deletes))
	assert.Empty(t, ctrl.Message)

	ctrl.Confirm = func(string) bool { return true }
	ctrl.DeleteEvent(context.Background(), "3")
	assert.Equal(t, int64(1), atomic.LoadInt64(&deletes))
	assert.Equal(t, "Event deleted successfully", ctrl.CurrentMessage())
}

func TestDeleteEventReloadsOnSuccess(t *testing.T) {
	var loads int64
	router := chi.NewRouter()
	router.Delete("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Event deleted successfully"}`))
	})
	router.Get("/events/my-events", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&loads, 1)
		w.Write([]byte(`[]`))
	})
	router.Get("/events/invited", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, time.Second)
	defer ctrl.Close()

	ctrl.Confirm = func(string) bool { return true }
	ctrl.DeleteEvent(context.Background(), "3")

	assert.Equal(t, int64(1), atomic.LoadInt64(&loads))
}

func TestRespondRejectsUnknownValue(t *testing.T) {
	var calls int64
	router := chi.NewRouter()
	router.Post("/events/{id}/respond", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{"message":"ok"}`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, time.Second)
	defer ctrl.Close()

	ctrl.RespondToEvent(context.Background(), "3", models.Response("Definitely"))
	assert.Zero(t, atomic.LoadInt64(&calls))

	ctrl.RespondToEvent(context.Background(), "3", models.NoResponse)
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestRespondSurfacesServerDetail(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/events/{id}/respond", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Organizers do not need to respond. They are automatically marked as attending."}`))
	})

	ctrl := app.NewEventsController(newEventClient(t, router), &recordingNav{}, time.Second)
	defer ctrl.Close()

	ctrl.RespondToEvent(context.Background(), "3", models.Going)
	assert.Equal(t, "Organizers do not need to respond. They are automatically marked as attending.", ctrl.CurrentMessage())
}

func TestNavigationHelpers(t *testing.T) {
	nav := &recordingNav{}
	ctrl := app.NewEventsController(newEventClient(t, chi.NewRouter()), nav, time.Second)
	defer ctrl.Close()

	ctrl.GoToInvite("4")
	ctrl.GoToAttendees("4")
	ctrl.GoToSearch()

	assert.Equal(t, []string{"/events/invite/4", "/events/attendees/4", "/events/search"}, nav.Paths())
}
