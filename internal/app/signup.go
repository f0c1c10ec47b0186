package app

import (
	"context"
	"sync"
	"time"

	"github.com/salmatarekx/EventPlanner/internal/api"
)

// SignupController drives the signup screen. Success navigates to the login
// screen after a short delay; it never authenticates the new account.
type SignupController struct {
	Auth *api.AuthClient
	Nav  Navigator

	NavigateDelay time.Duration

	Email    string
	Password string
	Message  string
	Loading  bool

	mu     sync.Mutex
	timers *scheduler
}

func NewSignupController(auth *api.AuthClient, nav Navigator, navigateDelay time.Duration) *SignupController {
	return &SignupController{
		Auth:          auth,
		Nav:           nav,
		NavigateDelay: navigateDelay,
		timers:        newScheduler(),
	}
}

func (c *SignupController) Signup(ctx context.Context) {
	c.mu.Lock()
	if c.Email == "" || c.Password == "" {
		c.Message = "Please enter email and password."
		c.mu.Unlock()
		return
	}
	email, password := c.Email, c.Password
	c.Loading = true
	c.mu.Unlock()

	result, err := c.Auth.Signup(ctx, email, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Error occurred")
		return
	}
	if result.Message != "" {
		c.Message = result.Message
	} else {
		c.Message = "User registered successfully"
	}
	c.timers.After(c.NavigateDelay, func() {
		c.Nav.Navigate(RouteLogin)
	})
}

func (c *SignupController) CurrentMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Message
}

func (c *SignupController) Close() {
	c.timers.Close()
}
