package models

// Attendee is one entry in an organizer's attendee listing.
type Attendee struct {
	Email             string `json:"email"`
	Role              string `json:"role"`
	Response          string `json:"response"`
	ResponseUpdatedAt string `json:"response_updated_at,omitempty"`
}

// ResponseSummary counts attendees per canonical response value. The zero
// value is the required default when the server omits the summary.
type ResponseSummary struct {
	Going      int `json:"Going"`
	Maybe      int `json:"Maybe"`
	NotGoing   int `json:"Not Going"`
	NoResponse int `json:"No Response"`
}

type AttendeeReport struct {
	EventID         string          `json:"event_id"`
	EventTitle      string          `json:"event_title"`
	Attendees       []Attendee      `json:"attendees"`
	TotalAttendees  int             `json:"total_attendees"`
	ResponseSummary ResponseSummary `json:"response_summary"`
}
