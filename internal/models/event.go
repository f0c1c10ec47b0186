package models

// Event is the per-caller projection the server returns from every listing
// endpoint. user_role and user_response are computed server-side for the
// requesting user.
type Event struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Organizer    string `json:"organizer"`
	IsOrganizer  bool   `json:"is_organizer"`
	UserRole     string `json:"user_role"`
	UserResponse string `json:"user_response,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type EventCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
}

type CreateEventResult struct {
	Message string `json:"message"`
	EventID int64  `json:"event_id"`
}

type InviteRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

type InviteResult struct {
	Message string `json:"message"`
}

type DeleteResult struct {
	Message string `json:"message"`
}
