package app

// Client-visible route paths.
const (
	RouteHome      = "/"
	RouteSignup    = "/signup"
	RouteLogin     = "/login"
	RouteEvents    = "/events"
	RouteInvite    = "/events/invite/:id"
	RouteSearch    = "/events/search"
	RouteAttendees = "/events/attendees/:id"
)

// Navigator moves the user to another screen. The terminal frontend prints
// the destination; tests record it.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

// InvitePath builds the concrete invite route for an event.
func InvitePath(eventID string) string {
	return "/events/invite/" + eventID
}

// AttendeesPath builds the concrete attendees route for an event.
func AttendeesPath(eventID string) string {
	return "/events/attendees/" + eventID
}
