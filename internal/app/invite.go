package app

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/salmatarekx/EventPlanner/internal/api"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InviteController drives the invite screen for a single event.
type InviteController struct {
	Events *api.EventClient
	Nav    Navigator

	MessageTTL time.Duration

	EventID string
	Email   string
	Message string
	Loading bool

	mu     sync.Mutex
	timers *scheduler
}

func NewInviteController(events *api.EventClient, nav Navigator, eventID string, messageTTL time.Duration) *InviteController {
	return &InviteController{
		Events:     events,
		Nav:        nav,
		MessageTTL: messageTTL,
		EventID:    eventID,
		timers:     newScheduler(),
	}
}

// Activate redirects to the event list when the route carried no event id.
func (c *InviteController) Activate(ctx context.Context) {
	if c.EventID == "" {
		c.Nav.Navigate(RouteEvents)
	}
}

// Invite validates the email locally and submits the invitation. On failure
// the field keeps its value so the user can correct it.
func (c *InviteController) Invite(ctx context.Context) {
	c.mu.Lock()
	if c.Email == "" {
		c.Message = "Please enter an email address."
		c.mu.Unlock()
		return
	}
	if !emailPattern.MatchString(c.Email) {
		c.Message = "Please enter a valid email address."
		c.mu.Unlock()
		return
	}
	email := c.Email
	c.Loading = true
	c.mu.Unlock()

	result, err := c.Events.Invite(ctx, c.EventID, email)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Error inviting user")
		return
	}
	if result.Message != "" {
		c.Message = result.Message
	} else {
		c.Message = "User invited successfully!"
	}
	c.Email = ""
	c.timers.After(c.MessageTTL, func() {
		c.mu.Lock()
		c.Message = ""
		c.mu.Unlock()
	})
}

func (c *InviteController) CurrentMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Message
}

func (c *InviteController) Close() {
	c.timers.Close()
}
