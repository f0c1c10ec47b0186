package app

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/salmatarekx/EventPlanner/internal/api"
	"github.com/salmatarekx/EventPlanner/internal/models"
)

// AttendeesController drives the organizer-only attendee listing. Data is
// loaded once on activation; there is no refresh.
type AttendeesController struct {
	Events *api.EventClient
	Nav    Navigator

	RedirectDelay time.Duration

	EventID         string
	EventTitle      string
	Attendees       []models.Attendee
	ResponseSummary models.ResponseSummary
	TotalAttendees  int
	Loading         bool
	Message         string

	mu     sync.Mutex
	timers *scheduler
}

func NewAttendeesController(events *api.EventClient, nav Navigator, eventID string, redirectDelay time.Duration) *AttendeesController {
	return &AttendeesController{
		Events:        events,
		Nav:           nav,
		RedirectDelay: redirectDelay,
		EventID:       eventID,
		timers:        newScheduler(),
	}
}

func (c *AttendeesController) Activate(ctx context.Context) {
	if c.EventID == "" {
		c.Nav.Navigate(RouteEvents)
		return
	}
	c.Load(ctx)
}

// Load fetches the attendee report. A 403 means the caller is not the
// organizer: the server's message is shown and the user is sent back to the
// event list after a delay. Every other failure just shows the message.
func (c *AttendeesController) Load(ctx context.Context) {
	c.mu.Lock()
	c.Loading = true
	c.Message = ""
	c.mu.Unlock()

	report, err := c.Events.Attendees(ctx, c.EventID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Error loading attendees")
		if api.StatusCode(err) == http.StatusForbidden {
			c.timers.After(c.RedirectDelay, func() {
				c.Nav.Navigate(RouteEvents)
			})
		}
		return
	}

	if report.EventTitle != "" {
		c.EventTitle = report.EventTitle
	} else {
		c.EventTitle = "Unknown Event"
	}
	c.Attendees = report.Attendees
	c.ResponseSummary = report.ResponseSummary
	c.TotalAttendees = report.TotalAttendees
}

func (c *AttendeesController) CurrentMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Message
}

func (c *AttendeesController) Close() {
	c.timers.Close()
}
