package app

import (
	"context"
	"sync"
	"time"

	"github.com/salmatarekx/EventPlanner/internal/api"
	"github.com/salmatarekx/EventPlanner/internal/models"
)

// EventsController drives the event list screen: the two event listings,
// the inline creation form, deletion, and per-event responses. Every
// mutation re-fetches both listings on success.
type EventsController struct {
	Events *api.EventClient
	Nav    Navigator

	// Confirm gates destructive actions. The terminal frontend prompts;
	// tests stub it.
	Confirm func(prompt string) bool

	MessageTTL time.Duration

	OrganizedEvents []models.Event
	InvitedEvents   []models.Event
	Loading         bool
	Message         string
	ShowCreateForm  bool

	Title       string
	Description string
	Date        string
	Time        string
	Location    string

	mu     sync.Mutex
	timers *scheduler
}

func NewEventsController(events *api.EventClient, nav Navigator, messageTTL time.Duration) *EventsController {
	return &EventsController{
		Events:     events,
		Nav:        nav,
		Confirm:    func(string) bool { return false },
		MessageTTL: messageTTL,
		timers:     newScheduler(),
	}
}

func (c *EventsController) Activate(ctx context.Context) {
	c.Load(ctx)
}

// Load fetches the organized and invited listings concurrently. The two
// requests are independent: a my-events failure surfaces a message, an
// invited failure is silent, and neither blocks the other's result.
func (c *EventsController) Load(ctx context.Context) {
	c.mu.Lock()
	c.Loading = true
	c.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		events, err := c.Events.MyEvents(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		c.Loading = false
		if err != nil {
			c.Message = "Error loading organized events"
			return
		}
		c.OrganizedEvents = events
	}()

	go func() {
		defer wg.Done()
		events, err := c.Events.InvitedEvents(ctx)
		if err != nil {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		c.InvitedEvents = events
	}()

	wg.Wait()
}

func (c *EventsController) ToggleCreateForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowCreateForm = !c.ShowCreateForm
	if !c.ShowCreateForm {
		c.resetForm()
	}
}

func (c *EventsController) CreateEvent(ctx context.Context) {
	c.mu.Lock()
	if c.Title == "" || c.Description == "" || c.Date == "" || c.Time == "" || c.Location == "" {
		c.Message = "Please fill all fields."
		c.mu.Unlock()
		return
	}
	event := models.EventCreate{
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date,
		Time:        c.Time,
		Location:    c.Location,
	}
	c.Loading = true
	c.mu.Unlock()

	result, err := c.Events.Create(ctx, event)

	c.mu.Lock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Error creating event")
		c.mu.Unlock()
		return
	}
	if result.Message != "" {
		c.Message = result.Message
	} else {
		c.Message = "Event created successfully!"
	}
	c.resetForm()
	c.ShowCreateForm = false
	c.mu.Unlock()

	c.Load(ctx)
	c.clearMessageLater()
}

func (c *EventsController) resetForm() {
	c.Title = ""
	c.Description = ""
	c.Date = ""
	c.Time = ""
	c.Location = ""
}

// DeleteEvent deletes an event after the user affirms the confirmation
// prompt. Without the affirmation no request is issued.
func (c *EventsController) DeleteEvent(ctx context.Context, eventID string) {
	if !c.Confirm("Are you sure you want to delete this event?") {
		return
	}

	c.mu.Lock()
	c.Loading = true
	c.mu.Unlock()

	result, err := c.Events.Delete(ctx, eventID)

	c.mu.Lock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Error deleting event")
		c.mu.Unlock()
		return
	}
	if result.Message != "" {
		c.Message = result.Message
	} else {
		c.Message = "Event deleted successfully!"
	}
	c.mu.Unlock()

	c.Load(ctx)
	c.clearMessageLater()
}

func (c *EventsController) RespondToEvent(ctx context.Context, eventID string, response models.Response) {
	if !response.Settable() {
		c.mu.Lock()
		c.Message = "Invalid response. Must be one of: Going, Maybe, Not Going"
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.Loading = true
	c.mu.Unlock()

	result, err := c.Events.Respond(ctx, eventID, response)

	c.mu.Lock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Error recording response")
		c.mu.Unlock()
		return
	}
	if result.Message != "" {
		c.Message = result.Message
	} else {
		c.Message = "Response recorded successfully!"
	}
	c.mu.Unlock()

	c.Load(ctx)
	c.clearMessageLater()
}

func (c *EventsController) GoToInvite(eventID string) {
	c.Nav.Navigate(InvitePath(eventID))
}

func (c *EventsController) GoToAttendees(eventID string) {
	c.Nav.Navigate(AttendeesPath(eventID))
}

func (c *EventsController) GoToSearch() {
	c.Nav.Navigate(RouteSearch)
}

func (c *EventsController) clearMessageLater() {
	c.timers.After(c.MessageTTL, func() {
		c.mu.Lock()
		c.Message = ""
		c.mu.Unlock()
	})
}

// CurrentMessage returns the transient message, synchronized against timer
// clears.
func (c *EventsController) CurrentMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Message
}

func (c *EventsController) Close() {
	c.timers.Close()
}
