package app

import (
	"context"
	"strings"
	"sync"

	"github.com/salmatarekx/EventPlanner/internal/api"
	"github.com/salmatarekx/EventPlanner/internal/models"
)

// SearchController drives the search screen. It never searches on
// activation; the user supplies at least one criterion first.
type SearchController struct {
	Events *api.EventClient

	Keyword string
	Date    string
	EndDate string
	Role    string

	Loading        bool
	Message        string
	Results        []models.Event
	FiltersApplied map[string]string

	mu sync.Mutex
}

func NewSearchController(events *api.EventClient) *SearchController {
	return &SearchController{Events: events}
}

func (c *SearchController) Activate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Message = ""
	c.Results = nil
}

// Search validates that at least one criterion is present, then issues a
// single request. Zero results produce a "no events found" message; any
// result clears prior messages.
func (c *SearchController) Search(ctx context.Context) {
	c.mu.Lock()
	filter := models.SearchFilter{
		Keyword:   strings.TrimSpace(c.Keyword),
		StartDate: strings.TrimSpace(c.Date),
		EndDate:   strings.TrimSpace(c.EndDate),
		Role:      strings.TrimSpace(c.Role),
	}
	if filter.Empty() {
		c.Message = "Please enter at least one search criterion (keyword, date, or role)."
		c.Results = nil
		c.mu.Unlock()
		return
	}
	c.Loading = true
	c.Message = ""
	c.mu.Unlock()

	result, err := c.Events.Search(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Error searching events")
		c.Results = nil
		return
	}

	c.Results = result.Results
	c.FiltersApplied = result.FiltersApplied
	if len(c.Results) == 0 {
		c.Message = "No events found matching your search criteria."
	} else {
		c.Message = ""
	}
}

// ClearFilters resets the criteria, message, and results together.
func (c *SearchController) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Keyword = ""
	c.Date = ""
	c.EndDate = ""
	c.Role = ""
	c.Message = ""
	c.Results = nil
	c.FiltersApplied = nil
}

func (c *SearchController) Close() {}
