package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/salmatarekx/EventPlanner/internal/logger"
	"github.com/salmatarekx/EventPlanner/internal/models"
	"github.com/salmatarekx/EventPlanner/internal/session"
)

// EventClient talks to the event endpoints. The bearer token is read from
// the session store immediately before every request, so a login in the same
// process is picked up without rebuilding the client.
type EventClient struct {
	BaseURL string
	Client  *http.Client
	Logger  *logger.Logger
	Session session.Store
}

func NewEventClient(baseURL string, client *http.Client, log *logger.Logger, store session.Store) *EventClient {
	return &EventClient{
		BaseURL: trimBase(baseURL),
		Client:  client,
		Logger:  log,
		Session: store,
	}
}

func (c *EventClient) token(ctx context.Context) string {
	token, err := c.Session.Get(ctx)
	if err != nil {
		c.Logger.Error("SESSION", fmt.Sprintf("Failed to read token: %v", err))
		return ""
	}
	return token
}

func (c *EventClient) Create(ctx context.Context, event models.EventCreate) (*models.CreateEventResult, error) {
	var result models.CreateEventResult
	err := doJSON(ctx, c.Client, c.Logger, http.MethodPost, c.BaseURL+"/create", c.token(ctx), event, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MyEvents lists events the caller organizes.
func (c *EventClient) MyEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := doJSON(ctx, c.Client, c.Logger, http.MethodGet, c.BaseURL+"/my-events", c.token(ctx), nil, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// InvitedEvents lists events the caller was invited to.
func (c *EventClient) InvitedEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := doJSON(ctx, c.Client, c.Logger, http.MethodGet, c.BaseURL+"/invited", c.token(ctx), nil, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// AllUserEvents lists the union of organized and invited events. No screen
// uses it today; the capability matches the server surface.
func (c *EventClient) AllUserEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := doJSON(ctx, c.Client, c.Logger, http.MethodGet, c.BaseURL+"/me", c.token(ctx), nil, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (c *EventClient) Invite(ctx context.Context, eventID, email string) (*models.InviteResult, error) {
	var result models.InviteResult
	err := doJSON(ctx, c.Client, c.Logger, http.MethodPost, c.BaseURL+"/invite", c.token(ctx),
		models.InviteRequest{EventID: eventID, Email: email}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *EventClient) Delete(ctx context.Context, eventID string) (*models.DeleteResult, error) {
	var result models.DeleteResult
	url := fmt.Sprintf("%s/%s", c.BaseURL, eventID)
	err := doJSON(ctx, c.Client, c.Logger, http.MethodDelete, url, c.token(ctx), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *EventClient) Respond(ctx context.Context, eventID string, response models.Response) (*models.RespondResult, error) {
	var result models.RespondResult
	url := fmt.Sprintf("%s/%s/respond", c.BaseURL, eventID)
	err := doJSON(ctx, c.Client, c.Logger, http.MethodPost, url, c.token(ctx),
		models.RespondRequest{Response: response}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Search issues a filtered listing. Blank criteria are omitted from the
// query string, never sent as empty values.
func (c *EventClient) Search(ctx context.Context, filter models.SearchFilter) (*models.SearchResult, error) {
	params := url.Values{}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		params.Set("keyword", keyword)
	}
	if startDate := strings.TrimSpace(filter.StartDate); startDate != "" {
		params.Set("start_date", startDate)
	}
	if endDate := strings.TrimSpace(filter.EndDate); endDate != "" {
		params.Set("end_date", endDate)
	}
	if role := strings.TrimSpace(filter.Role); role != "" {
		params.Set("role", role)
	}

	searchURL := c.BaseURL + "/search"
	if encoded := params.Encode(); encoded != "" {
		searchURL += "?" + encoded
	}

	var result models.SearchResult
	err := doJSON(ctx, c.Client, c.Logger, http.MethodGet, searchURL, c.token(ctx), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Attendees returns the attendee listing for an event. The server rejects
// non-organizers with a 403.
func (c *EventClient) Attendees(ctx context.Context, eventID string) (*models.AttendeeReport, error) {
	var report models.AttendeeReport
	url := fmt.Sprintf("%s/%s/attendees", c.BaseURL, eventID)
	err := doJSON(ctx, c.Client, c.Logger, http.MethodGet, url, c.token(ctx), nil, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
