package app

import "strings"

// Screen names resolved by the router.
const (
	ScreenHome      = "home"
	ScreenSignup    = "signup"
	ScreenLogin     = "login"
	ScreenEvents    = "events"
	ScreenInvite    = "invite"
	ScreenSearch    = "search"
	ScreenAttendees = "attendees"
)

type route struct {
	pattern string
	screen  string
}

// Match is a resolved route: the screen to activate plus any path
// parameters, e.g. the event id of /events/invite/:id.
type Match struct {
	Screen string
	Params map[string]string
}

// Router maps URL-style paths to screens. Path segments starting with ':'
// capture a parameter.
type Router struct {
	routes []route
}

func NewRouter() *Router {
	return &Router{routes: []route{
		{RouteHome, ScreenHome},
		{RouteSignup, ScreenSignup},
		{RouteLogin, ScreenLogin},
		{RouteEvents, ScreenEvents},
		{RouteInvite, ScreenInvite},
		{RouteSearch, ScreenSearch},
		{RouteAttendees, ScreenAttendees},
	}}
}

// Resolve matches a path against the route table. The second return is
// false when no route matches.
func (r *Router) Resolve(path string) (Match, bool) {
	segments := splitPath(path)
	for _, rt := range r.routes {
		if params, ok := matchPattern(splitPath(rt.pattern), segments); ok {
			return Match{Screen: rt.screen, Params: params}, true
		}
	}
	return Match{}, false
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchPattern(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	params := make(map[string]string)
	for i, part := range pattern {
		if strings.HasPrefix(part, ":") {
			params[strings.TrimPrefix(part, ":")] = segments[i]
			continue
		}
		if part != segments[i] {
			return nil, false
		}
	}
	return params, true
}
