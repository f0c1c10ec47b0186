package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/salmatarekx/EventPlanner/internal/api"
	"github.com/salmatarekx/EventPlanner/internal/app"
	"github.com/salmatarekx/EventPlanner/internal/config"
	"github.com/salmatarekx/EventPlanner/internal/logger"
	"github.com/salmatarekx/EventPlanner/internal/models"
	"github.com/salmatarekx/EventPlanner/internal/session"
)

func main() {
	_ = godotenv.Load() // Loads .env file if present

	log := logger.NewQuietLogger()
	defer log.Close()

	cfg := config.Load()

	store, err := buildSessionStore(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	authClient := api.NewAuthClient(cfg.API.AuthBaseURL, httpClient, log)
	eventClient := api.NewEventClient(cfg.API.BaseURL, httpClient, log, store)

	cli := &CLI{
		cfg:    cfg,
		log:    log,
		store:  store,
		auth:   authClient,
		events: eventClient,
		router: app.NewRouter(),
		stdin:  bufio.NewReader(os.Stdin),
	}

	if err := cli.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildSessionStore(cfg *config.Config, log *logger.Logger) (session.Store, error) {
	if cfg.Session.Backend == "redis" {
		client, err := session.InitializeRedis(cfg.Redis.Addr)
		if err != nil {
			return nil, err
		}
		log.LogSession("INIT", "Using Redis session store at "+cfg.Redis.Addr)
		return session.NewRedisStore(client, cfg.Redis.Key), nil
	}
	log.LogSession("INIT", "Using file session store at "+cfg.Session.Path)
	return session.NewFileStore(cfg.Session.Path), nil
}

// CLI translates subcommands into route paths and drives one screen per
// invocation.
type CLI struct {
	cfg    *config.Config
	log    *logger.Logger
	store  session.Store
	auth   *api.AuthClient
	events *api.EventClient
	router *app.Router
	stdin  *bufio.Reader
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	path, rest := commandPath(args)

	// Session-only commands have no screen.
	switch path {
	case "logout":
		if err := c.store.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		return c.whoami(ctx)
	case "token":
		return c.showToken(ctx)
	}

	// A parameterized route reached without its id still activates the
	// screen; the controller redirects back to the event list.
	switch path {
	case "/events/invite":
		return c.invite(ctx, "", nil)
	case "/events/attendees":
		return c.attendees(ctx, "")
	}

	match, ok := c.router.Resolve(path)
	if !ok {
		c.usage()
		return fmt.Errorf("unknown command %q", strings.Join(args, " "))
	}
	c.log.LogRoute(path, "Screen activated")

	switch match.Screen {
	case app.ScreenHome:
		return c.home()
	case app.ScreenSignup:
		return c.signup(ctx, rest)
	case app.ScreenLogin:
		return c.login(ctx, rest)
	case app.ScreenEvents:
		return c.eventsScreen(ctx, rest)
	case app.ScreenInvite:
		return c.invite(ctx, match.Params["id"], rest)
	case app.ScreenSearch:
		return c.search(ctx, rest)
	case app.ScreenAttendees:
		return c.attendees(ctx, match.Params["id"])
	}
	return fmt.Errorf("unhandled screen %q", match.Screen)
}

// commandPath maps a subcommand to its client route. The remaining args are
// the screen's inputs.
func commandPath(args []string) (string, []string) {
	if len(args) == 0 {
		return app.RouteHome, nil
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "signup":
		return app.RouteSignup, rest
	case "login":
		return app.RouteLogin, rest
	case "events", "create", "delete", "respond":
		return app.RouteEvents, args
	case "invite":
		if len(rest) > 0 {
			return app.InvitePath(rest[0]), rest[1:]
		}
		return "/events/invite", nil
	case "search":
		return app.RouteSearch, rest
	case "attendees":
		if len(rest) > 0 {
			return app.AttendeesPath(rest[0]), rest[1:]
		}
		return "/events/attendees", nil
	default:
		return cmd, rest
	}
}

func (c *CLI) navigator() app.Navigator {
	return app.NavigatorFunc(func(path string) {
		fmt.Println(color.CyanString("→ %s", path))
	})
}

func (c *CLI) home() error {
	ctrl := app.NewHomeController()
	defer ctrl.Close()

	fmt.Println(color.New(color.Bold).Sprint("EventPlanner"))
	fmt.Println("Plan events, invite attendees, track responses.")
	for _, link := range ctrl.Links() {
		fmt.Println("  " + link)
	}
	c.usage()
	return nil
}

func (c *CLI) usage() {
	fmt.Println(`
Usage:
  eventplanner signup EMAIL PASSWORD
  eventplanner login EMAIL PASSWORD
  eventplanner logout | whoami | token
  eventplanner events
  eventplanner create TITLE DESCRIPTION DATE TIME LOCATION
  eventplanner delete EVENT_ID [--yes]
  eventplanner respond EVENT_ID "Going"|"Maybe"|"Not Going"
  eventplanner invite EVENT_ID EMAIL
  eventplanner search [--keyword K] [--date YYYY-MM-DD] [--end-date YYYY-MM-DD] [--role R]
  eventplanner attendees EVENT_ID`)
}

func (c *CLI) signup(ctx context.Context, args []string) error {
	ctrl := app.NewSignupController(c.auth, c.navigator(), c.cfg.UI.NavigateDelay)
	defer ctrl.Close()

	if len(args) >= 1 {
		ctrl.Email = args[0]
	}
	if len(args) >= 2 {
		ctrl.Password = args[1]
	}
	ctrl.Signup(ctx)
	fmt.Println(ctrl.CurrentMessage())
	return nil
}

func (c *CLI) login(ctx context.Context, args []string) error {
	ctrl := app.NewLoginController(c.auth, c.store, c.navigator(), c.cfg.UI.NavigateDelay)
	defer ctrl.Close()

	if len(args) >= 1 {
		ctrl.Email = args[0]
	}
	if len(args) >= 2 {
		ctrl.Password = args[1]
	}
	ctrl.Login(ctx)
	fmt.Println(ctrl.CurrentMessage())
	return nil
}

func (c *CLI) whoami(ctx context.Context) error {
	token, err := c.store.Get(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Println("Not logged in.")
		return nil
	}
	subject, err := session.Subject(token)
	if err != nil {
		return err
	}
	fmt.Println(subject)
	return nil
}

func (c *CLI) showToken(ctx context.Context) error {
	ctrl := app.NewLoginController(c.auth, c.store, c.navigator(), c.cfg.UI.NavigateDelay)
	defer ctrl.Close()

	ctrl.Clipboard = func(token string) error {
		fmt.Println(token)
		return nil
	}
	ctrl.CopyToken(ctx)
	return nil
}

func (c *CLI) eventsScreen(ctx context.Context, args []string) error {
	ctrl := app.NewEventsController(c.events, c.navigator(), c.cfg.UI.MessageTTL)
	defer ctrl.Close()
	ctrl.Confirm = c.confirm

	if len(args) == 0 || args[0] == "events" {
		ctrl.Load(ctx)
		c.renderEvents(ctrl)
		return nil
	}

	switch args[0] {
	case "create":
		if len(args) < 6 {
			return fmt.Errorf("create needs TITLE DESCRIPTION DATE TIME LOCATION")
		}
		ctrl.Title, ctrl.Description, ctrl.Date, ctrl.Time, ctrl.Location = args[1], args[2], args[3], args[4], args[5]
		ctrl.CreateEvent(ctx)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("delete needs EVENT_ID")
		}
		if len(args) > 2 && args[2] == "--yes" {
			ctrl.Confirm = func(string) bool { return true }
		}
		ctrl.DeleteEvent(ctx, args[1])
	case "respond":
		if len(args) < 3 {
			return fmt.Errorf("respond needs EVENT_ID RESPONSE")
		}
		ctrl.RespondToEvent(ctx, args[1], models.Response(args[2]))
	}

	if msg := ctrl.CurrentMessage(); msg != "" {
		fmt.Println(msg)
	}
	c.renderEvents(ctrl)
	return nil
}

func (c *CLI) confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N] ")
	line, err := c.stdin.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (c *CLI) renderEvents(ctrl *app.EventsController) {
	fmt.Println(color.New(color.Bold).Sprint("My Events"))
	if len(ctrl.OrganizedEvents) == 0 {
		fmt.Println("  (none)")
	}
	for _, event := range ctrl.OrganizedEvents {
		fmt.Printf("  #%d %s — %s %s @ %s\n", event.ID, event.Title, event.Date, event.Time, event.Location)
	}

	fmt.Println(color.New(color.Bold).Sprint("Invited Events"))
	if len(ctrl.InvitedEvents) == 0 {
		fmt.Println("  (none)")
	}
	for _, event := range ctrl.InvitedEvents {
		fmt.Printf("  #%d %s — %s %s @ %s %s\n",
			event.ID, event.Title, event.Date, event.Time, event.Location, renderBadge(event.UserResponse))
	}
}

func (c *CLI) invite(ctx context.Context, eventID string, args []string) error {
	ctrl := app.NewInviteController(c.events, c.navigator(), eventID, c.cfg.UI.MessageTTL)
	defer ctrl.Close()

	ctrl.Activate(ctx)
	if ctrl.EventID == "" {
		return nil
	}
	if len(args) >= 1 {
		ctrl.Email = args[0]
	}
	ctrl.Invite(ctx)
	fmt.Println(ctrl.CurrentMessage())
	return nil
}

func (c *CLI) search(ctx context.Context, args []string) error {
	ctrl := app.NewSearchController(c.events)
	defer ctrl.Close()

	ctrl.Activate(ctx)
	for i := 0; i+1 < len(args); i += 2 {
		switch args[i] {
		case "--keyword":
			ctrl.Keyword = args[i+1]
		case "--date":
			ctrl.Date = args[i+1]
		case "--end-date":
			ctrl.EndDate = args[i+1]
		case "--role":
			ctrl.Role = args[i+1]
		}
	}
	ctrl.Search(ctx)

	if ctrl.Message != "" {
		fmt.Println(ctrl.Message)
	}
	for _, event := range ctrl.Results {
		fmt.Printf("  #%d %s — %s %s @ %s (%s)\n",
			event.ID, event.Title, event.Date, event.Time, event.Location, event.UserRole)
	}
	if len(ctrl.FiltersApplied) > 0 {
		fmt.Println(color.New(color.Faint).Sprintf("filters: %v", ctrl.FiltersApplied))
	}
	return nil
}

func (c *CLI) attendees(ctx context.Context, eventID string) error {
	ctrl := app.NewAttendeesController(c.events, c.navigator(), eventID, c.cfg.UI.RedirectDelay)
	defer ctrl.Close()

	ctrl.Activate(ctx)
	if msg := ctrl.CurrentMessage(); msg != "" {
		fmt.Println(msg)
		return nil
	}

	fmt.Println(color.New(color.Bold).Sprint(ctrl.EventTitle))
	for _, attendee := range ctrl.Attendees {
		fmt.Printf("  %-30s %-10s %s\n", attendee.Email, attendee.Role, renderBadge(attendee.Response))
	}
	summary := ctrl.ResponseSummary
	fmt.Printf("Total: %d  %s %d  %s %d  %s %d  %s %d\n",
		ctrl.TotalAttendees,
		renderBadge(string(models.Going)), summary.Going,
		renderBadge(string(models.Maybe)), summary.Maybe,
		renderBadge(string(models.NotGoing)), summary.NotGoing,
		renderBadge(string(models.NoResponse)), summary.NoResponse)
	return nil
}

// renderBadge colors a response value the way the web UI keys badge
// classes off it.
func renderBadge(response string) string {
	switch models.BadgeClass(response) {
	case "response-going":
		return color.GreenString("[%s]", response)
	case "response-maybe":
		return color.YellowString("[%s]", response)
	case "response-not-going":
		return color.RedString("[%s]", response)
	case "":
		return ""
	default:
		return color.WhiteString("[%s]", response)
	}
}
