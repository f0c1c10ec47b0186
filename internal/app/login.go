package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/salmatarekx/EventPlanner/internal/api"
	"github.com/salmatarekx/EventPlanner/internal/session"
)

// LoginController drives the login screen. A successful login persists the
// returned token and navigates to the event list after a short delay; a
// failed login clears any previously stored token.
type LoginController struct {
	Auth    *api.AuthClient
	Session session.Store
	Nav     Navigator

	// Clipboard receives the raw token for the copy affordance. The
	// terminal frontend prints it; tests capture it.
	Clipboard func(token string) error

	NavigateDelay time.Duration

	Email        string
	Password     string
	ShowPassword bool
	Message      string
	Loading      bool

	mu     sync.Mutex
	timers *scheduler
}

func NewLoginController(auth *api.AuthClient, store session.Store, nav Navigator, navigateDelay time.Duration) *LoginController {
	return &LoginController{
		Auth:          auth,
		Session:       store,
		Nav:           nav,
		Clipboard:     func(string) error { return nil },
		NavigateDelay: navigateDelay,
		timers:        newScheduler(),
	}
}

func (c *LoginController) Login(ctx context.Context) {
	c.mu.Lock()
	if c.Email == "" || c.Password == "" {
		c.Message = "Please enter email and password."
		c.mu.Unlock()
		return
	}
	email, password := c.Email, c.Password
	c.Loading = true
	c.mu.Unlock()

	result, err := c.Auth.Login(ctx, email, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.Loading = false
	if err != nil {
		c.Message = api.Detail(err, "Invalid credentials")
		// A failed login must not leave a stale token behind.
		if clearErr := c.Session.Clear(ctx); clearErr != nil {
			c.Message = fmt.Sprintf("%s (failed to clear session: %v)", c.Message, clearErr)
		}
		return
	}

	if result.Message != "" {
		c.Message = result.Message
	} else {
		c.Message = "Login successful"
	}
	if result.AccessToken != "" {
		if err := c.Session.Set(ctx, result.AccessToken); err != nil {
			c.Message = fmt.Sprintf("Login succeeded but saving the session failed: %v", err)
			return
		}
	}
	c.timers.After(c.NavigateDelay, func() {
		c.Nav.Navigate(RouteEvents)
	})
}

func (c *LoginController) TogglePasswordVisibility() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowPassword = !c.ShowPassword
}

// CopyToken hands the stored raw token to the clipboard hook. Demo
// convenience, not a security feature.
func (c *LoginController) CopyToken(ctx context.Context) {
	token, err := c.Session.Get(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil || token == "" {
		c.Message = "No token stored."
		return
	}
	if err := c.Clipboard(token); err != nil {
		c.Message = "Failed to copy token."
		return
	}
	c.Message = "Token copied to clipboard."
}

func (c *LoginController) CurrentMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Message
}

func (c *LoginController) Close() {
	c.timers.Close()
}
