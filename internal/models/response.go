package models

import "strings"

// Response is an attendance response. The three settable values are sent to
// the server; NoResponse only ever comes back in attendee listings.
type Response string

const (
	Going      Response = "Going"
	Maybe      Response = "Maybe"
	NotGoing   Response = "Not Going"
	NoResponse Response = "No Response"
)

// Settable reports whether the response may be submitted to the server.
func (r Response) Settable() bool {
	switch r {
	case Going, Maybe, NotGoing:
		return true
	}
	return false
}

// BadgeClass returns the display-badge key for a response value,
// e.g. "response-not-going". Empty responses have no badge.
func BadgeClass(response string) string {
	if response == "" {
		return ""
	}
	return "response-" + strings.ReplaceAll(strings.ToLower(response), " ", "-")
}

type RespondRequest struct {
	Response Response `json:"response"`
}

type RespondResult struct {
	Message   string   `json:"message"`
	EventID   string   `json:"event_id"`
	Response  Response `json:"response"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}
