package app

// HomeController is the static landing screen.
type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// Links returns the screens reachable from home.
func (c *HomeController) Links() []string {
	return []string{RouteSignup, RouteLogin}
}

func (c *HomeController) Close() {}
