// ABOUTME: Admin CLI for the Atrium creator platform back office
// ABOUTME: Session-gated commands over the REST API with cached list screens

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/atriumhq/atrium-console/internal/api"
	"github.com/atriumhq/atrium-console/internal/config"
	"github.com/atriumhq/atrium-console/internal/console"
	"github.com/atriumhq/atrium-console/internal/query"
	"github.com/atriumhq/atrium-console/internal/session"
	"github.com/atriumhq/atrium-console/internal/view"
)

const banner = `
         _          _
   __ _ | |_  _ __ (_) _   _  _ __ ___
  / _' || __|| '__|| || | | || '_ ' _ \
 | (_| || |_ | |   | || |_| || | | | | |
  \__,_| \__||_|   |_| \__,_||_| |_| |_|
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}

	a, err := newApp()
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	switch cmd {
	case "login":
		err = a.cmdLogin(args)
	case "logout":
		err = a.cmdLogout()
	case "whoami":
		err = a.cmdWhoami()
	case "users":
		err = a.cmdUsers(args)
	case "creators":
		err = a.cmdCreators(args)
	case "reports":
		err = a.cmdReports(args)
	case "announcements":
		err = a.cmdAnnouncements(args)
	case "plans":
		err = a.cmdPlans(args)
	case "subscriptions", "subs":
		err = a.cmdSubscriptions(args)
	case "stats":
		err = a.cmdStats()
	case "blocks":
		err = a.cmdBlocks(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %s\n", renderError(err))
		os.Exit(1)
	}
}

// renderError prefers the backend's own message for HTTP errors and
// collapses transport failures into a retryable hint.
func renderError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Sprintf("request failed, try again (%v)", urlErr.Err)
	}
	return err.Error()
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: atrium-admin <command> [args]")
	fmt.Println()
	yellow.Println("Session:")
	fmt.Println("  login <username> [password]       Log in (prompts for password if omitted)")
	fmt.Println("  logout                            Log out and clear the stored session")
	fmt.Println("  whoami                            Show the logged-in operator")
	fmt.Println()
	yellow.Println("Moderation:")
	fmt.Println("  users [--search <term>]           List users")
	fmt.Println("  users ban <id>                    Ban a user")
	fmt.Println("  users unban <id>                  Lift a ban")
	fmt.Println("  users delete <id>                 Delete a user account")
	fmt.Println("  creators                          List pending creator applications")
	fmt.Println("  creators approve <id> [notes]     Approve an application")
	fmt.Println("  creators reject <id> [notes]      Reject an application")
	fmt.Println("  reports [--status <s>] [--search <term>]")
	fmt.Println("                                    List reports (pending|resolved|dismissed)")
	fmt.Println("  reports resolve <id>              Mark a report resolved")
	fmt.Println("  reports dismiss <id>              Dismiss a report")
	fmt.Println()
	yellow.Println("Platform:")
	fmt.Println("  announcements                     List announcements")
	fmt.Println("  announcements create --title <t> [--body <md>] [--publish]")
	fmt.Println("  announcements preview <id>        Render an announcement body as HTML")
	fmt.Println("  announcements delete <id>         Delete an announcement")
	fmt.Println("  plans                             List subscription plans")
	fmt.Println("  subscriptions                     List user subscriptions")
	fmt.Println("  subscriptions cancel <id>         Cancel a subscription")
	fmt.Println("  stats                             Show the analytics dashboard")
	fmt.Println("  blocks status <user> <target>     Show whether user has blocked target")
	fmt.Println("  blocks add <user> <target>        Create a block")
	fmt.Println("  blocks remove <user> <target>     Remove a block")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  ATRIUM_API_URL        Backend base URL (default: http://localhost:8000)")
	fmt.Println("  ATRIUM_KEYRING        Session database path")
	fmt.Println("  ATRIUM_CONFIG         Config file path")
	fmt.Println()
}

// app bundles the wired console: config, session store, API client, and the
// query cache the list screens share.
type app struct {
	cfg     *config.Config
	keyring *session.SQLiteKeyring
	store   *session.Store
	client  *api.Client
	cache   *query.Cache
}

func newApp() (*app, error) {
	cfg, err := config.Load(os.Getenv("ATRIUM_CONFIG"))
	if err != nil {
		return nil, err
	}
	slog.SetDefault(setupLogger(cfg.Logging))

	keyring, err := session.NewSQLiteKeyring(cfg.Keyring.Path)
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}

	var auth session.Authenticator
	if cfg.Auth.Mode == "dev" {
		auth, err = session.NewDevAuthenticator([]byte(cfg.Auth.JWTSecret))
		if err != nil {
			keyring.Close()
			return nil, err
		}
	} else {
		auth = session.NewRemoteAuthenticator(cfg.Server.BaseURL, nil)
	}

	store := session.NewStore(keyring, auth, nil)
	if err := store.Initialize(); err != nil {
		keyring.Close()
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	return &app{
		cfg:     cfg,
		keyring: keyring,
		store:   store,
		client:  api.New(cfg.Server.BaseURL, store, nil),
		cache:   query.New(),
	}, nil
}

func (a *app) Close() {
	a.keyring.Close()
}

// setupLogger maps the logging config onto a slog handler writing to stderr
// so log lines never interleave with table output.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// ctx bounds one command invocation by the configured request timeout.
func (a *app) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.Server.RequestTimeout)
}

// requireAuth gates resource commands on a live session.
func (a *app) requireAuth() error {
	if !a.store.State().Authenticated {
		return fmt.Errorf("not logged in (run 'atrium-admin login <username>')")
	}
	return nil
}

func (a *app) cmdLogin(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: login <username> [password]")
	}
	username := args[0]

	var password string
	if len(args) >= 2 {
		password = args[1]
	} else {
		fmt.Print("Password: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("reading password: %w", scanner.Err())
		}
		password = strings.TrimSpace(scanner.Text())
	}

	ctx, cancel := a.ctx()
	defer cancel()

	ok, err := a.store.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("invalid username or password")
	}

	state := a.store.State()
	color.Green("✓ Logged in as %s (%s)\n", state.User.Username, state.User.Role)
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.store.Logout(); err != nil {
		return err
	}
	color.Green("✓ Logged out\n")
	return nil
}

func (a *app) cmdWhoami() error {
	state := a.store.State()
	if !state.Authenticated {
		fmt.Println("Not logged in")
		return nil
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Operator")
	cyan.Println("  --------")
	fmt.Printf("  Username:  %s\n", state.User.Username)
	fmt.Printf("  Role:      %s\n", state.User.Role)
	fmt.Printf("  Email:     %s\n", state.User.Email)
	fmt.Println()
	return nil
}

// usersPage is the cached list screen behind every users subcommand.
func (a *app) usersPage() *console.Page[api.User] {
	return console.NewPage(a.cache, "users", a.client.ListUsers, func(u api.User) []string {
		return []string{u.Username, u.Email}
	})
}

func (a *app) cmdUsers(args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	subcmd := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "--") {
		subcmd = args[0]
		args = args[1:]
	}

	page := a.usersPage()
	ctx, cancel := a.ctx()
	defer cancel()

	switch subcmd {
	case "list", "ls":
		page.SetSearch(flagValue(args, "--search", "-s"))
		users, err := page.Items(ctx)
		if err != nil {
			return err
		}
		return printUsers(users)
	case "ban":
		if len(args) < 1 {
			return fmt.Errorf("usage: users ban <id>")
		}
		id := args[0]
		if err := page.Mutate(ctx, func(ctx context.Context) error {
			return a.client.BanUser(ctx, id)
		}); err != nil {
			return err
		}
		color.Green("✓ Banned user: %s\n", id)
		return nil
	case "unban":
		if len(args) < 1 {
			return fmt.Errorf("usage: users unban <id>")
		}
		id := args[0]
		if err := page.Mutate(ctx, func(ctx context.Context) error {
			return a.client.UnbanUser(ctx, id)
		}); err != nil {
			return err
		}
		color.Green("✓ Unbanned user: %s\n", id)
		return nil
	case "delete", "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: users delete <id>")
		}
		id := args[0]
		if err := page.Mutate(ctx, func(ctx context.Context) error {
			return a.client.DeleteUser(ctx, id)
		}); err != nil {
			return err
		}
		color.Green("✓ Deleted user: %s\n", id)
		return nil
	default:
		return fmt.Errorf("unknown users subcommand: %s (use list, ban, unban, delete)", subcmd)
	}
}

func printUsers(users []api.User) error {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Users")
	cyan.Println("  -----")

	if len(users) == 0 {
		fmt.Println("  (no matching users)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tUSERNAME\tEMAIL\tROLE\tSTATUS\tJOINED")
	fmt.Fprintln(w, "  --\t--------\t-----\t----\t------\t------")
	for _, u := range users {
		status := "active"
		if u.Banned {
			status = "banned"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, truncate(u.Email, 28), u.Role, status,
			u.CreatedAt.Format("Jan 02 2006"))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) creatorsPage() *console.Page[api.CreatorApplication] {
	return console.NewPage(a.cache, "creators", a.client.PendingCreators, func(c api.CreatorApplication) []string {
		return []string{c.Username, c.DisplayName, c.Category}
	})
}

func (a *app) cmdCreators(args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	page := a.creatorsPage()
	ctx, cancel := a.ctx()
	defer cancel()

	switch subcmd {
	case "list", "ls":
		apps, err := page.Items(ctx)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan)
		fmt.Println()
		cyan.Println("  Pending Creator Applications")
		cyan.Println("  ----------------------------")
		if len(apps) == 0 {
			fmt.Println("  (none pending)")
			fmt.Println()
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tUSERNAME\tDISPLAY NAME\tCATEGORY\tSUBMITTED")
		fmt.Fprintln(w, "  --\t--------\t------------\t--------\t---------")
		for _, c := range apps {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				c.ID, c.Username, truncate(c.DisplayName, 24), c.Category,
				c.SubmittedAt.Format("Jan 02 15:04"))
		}
		w.Flush()
		fmt.Println()
		return nil
	case "approve", "reject":
		if len(args) < 1 {
			return fmt.Errorf("usage: creators %s <id> [notes]", subcmd)
		}
		id := args[0]
		notes := strings.Join(args[1:], " ")
		approved := subcmd == "approve"

		if err := page.Mutate(ctx, func(ctx context.Context) error {
			return a.client.ApproveCreator(ctx, id, approved, notes)
		}); err != nil {
			return err
		}
		if approved {
			color.Green("✓ Approved application: %s\n", id)
		} else {
			color.Yellow("✓ Rejected application: %s\n", id)
		}
		return nil
	default:
		return fmt.Errorf("unknown creators subcommand: %s (use list, approve, reject)", subcmd)
	}
}

func (a *app) reportsPage() *console.Page[api.Report] {
	return console.NewPage(a.cache, "reports", a.client.ListReports, func(r api.Report) []string {
		return []string{r.Reason, r.Category, r.ReporterID, r.ReportedID}
	})
}

func (a *app) cmdReports(args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	subcmd := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "--") {
		subcmd = args[0]
		args = args[1:]
	}

	page := a.reportsPage()
	ctx, cancel := a.ctx()
	defer cancel()

	switch subcmd {
	case "list", "ls":
		status := flagValue(args, "--status", "")
		if status != "" && status != "all" && !api.ReportStatus(status).Valid() {
			return fmt.Errorf("invalid status %q (use pending, resolved, dismissed)", status)
		}
		page.SetFilter("status", view.FieldEquals(func(r api.Report) string {
			return string(r.Status)
		}, status))
		page.SetSearch(flagValue(args, "--search", "-s"))

		reports, err := page.Items(ctx)
		if err != nil {
			return err
		}
		return printReports(reports)
	case "resolve", "dismiss":
		if len(args) < 1 {
			return fmt.Errorf("usage: reports %s <id>", subcmd)
		}
		id := args[0]
		status := api.ReportResolved
		if subcmd == "dismiss" {
			status = api.ReportDismissed
		}

		if err := page.Mutate(ctx, func(ctx context.Context) error {
			_, err := a.client.UpdateReportStatus(ctx, id, status)
			return err
		}); err != nil {
			return err
		}
		color.Green("✓ Report %s marked %s\n", id, status)
		return nil
	case "delete", "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: reports delete <id>")
		}
		id := args[0]
		if err := page.Mutate(ctx, func(ctx context.Context) error {
			return a.client.DeleteReport(ctx, id)
		}); err != nil {
			return err
		}
		color.Green("✓ Deleted report: %s\n", id)
		return nil
	default:
		return fmt.Errorf("unknown reports subcommand: %s (use list, resolve, dismiss, delete)", subcmd)
	}
}

func printReports(reports []api.Report) error {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Reports")
	cyan.Println("  -------")

	if len(reports) == 0 {
		fmt.Println("  (no matching reports)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tSTATUS\tCATEGORY\tREPORTER\tREPORTED\tREASON")
	fmt.Fprintln(w, "  --\t------\t--------\t--------\t--------\t------")
	for _, r := range reports {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Status, r.Category, r.ReporterID, r.ReportedID,
			truncate(r.Reason, 36))
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) announcementsPage() *console.Page[api.Announcement] {
	return console.NewPage(a.cache, "announcements", a.client.ListAnnouncements, func(an api.Announcement) []string {
		return []string{an.Title, an.Body}
	})
}

func (a *app) cmdAnnouncements(args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	subcmd := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "--") {
		subcmd = args[0]
		args = args[1:]
	}

	page := a.announcementsPage()
	ctx, cancel := a.ctx()
	defer cancel()

	switch subcmd {
	case "list", "ls":
		page.SetSearch(flagValue(args, "--search", "-s"))
		announcements, err := page.Items(ctx)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan)
		fmt.Println()
		cyan.Println("  Announcements")
		cyan.Println("  -------------")
		if len(announcements) == 0 {
			fmt.Println("  (no matching announcements)")
			fmt.Println()
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tTITLE\tPUBLISHED\tUPDATED")
		fmt.Fprintln(w, "  --\t-----\t---------\t-------")
		for _, an := range announcements {
			published := "draft"
			if an.Published {
				published = "published"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				an.ID, truncate(an.Title, 36), published,
				an.UpdatedAt.Format("Jan 02 15:04"))
		}
		w.Flush()
		fmt.Println()
		return nil
	case "create":
		title := flagValue(args, "--title", "-t")
		if title == "" {
			return fmt.Errorf("usage: announcements create --title <t> [--body <markdown>] [--publish]")
		}
		input := api.AnnouncementInput{
			Title:     title,
			Body:      flagValue(args, "--body", "-b"),
			Published: hasFlag(args, "--publish"),
		}

		var created *api.Announcement
		if err := page.Mutate(ctx, func(ctx context.Context) error {
			var err error
			created, err = a.client.CreateAnnouncement(ctx, input)
			return err
		}); err != nil {
			return err
		}
		color.Green("✓ Created announcement: %s\n", created.ID)
		return nil
	case "preview":
		if len(args) < 1 {
			return fmt.Errorf("usage: announcements preview <id>")
		}
		id := args[0]

		announcements, err := page.Items(ctx)
		if err != nil {
			return err
		}
		for _, an := range announcements {
			if an.ID != id {
				continue
			}
			html, err := console.PreviewHTML(an.Body)
			if err != nil {
				return fmt.Errorf("rendering preview: %w", err)
			}
			cyan := color.New(color.FgCyan)
			fmt.Println()
			cyan.Printf("  %s\n", an.Title)
			fmt.Println()
			fmt.Println(html)
			return nil
		}
		return fmt.Errorf("announcement %s not found", id)
	case "delete", "rm":
		if len(args) < 1 {
			return fmt.Errorf("usage: announcements delete <id>")
		}
		id := args[0]
		if err := page.Mutate(ctx, func(ctx context.Context) error {
			return a.client.DeleteAnnouncement(ctx, id)
		}); err != nil {
			return err
		}
		color.Green("✓ Deleted announcement: %s\n", id)
		return nil
	default:
		return fmt.Errorf("unknown announcements subcommand: %s (use list, create, preview, delete)", subcmd)
	}
}

func (a *app) cmdPlans(args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	ctx, cancel := a.ctx()
	defer cancel()

	plans, err := a.client.ListPlans(ctx)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Subscription Plans")
	cyan.Println("  ------------------")
	if len(plans) == 0 {
		fmt.Println("  (no plans)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tTIER\tPRICE\tINTERVAL\tACTIVE")
	fmt.Fprintln(w, "  --\t----\t----\t-----\t--------\t------")
	for _, p := range plans {
		fmt.Fprintf(w, "  %s\t%s\t%s\t$%.2f\t%s\t%t\n",
			p.ID, p.Name, p.Tier, float64(p.PriceCents)/100, p.Interval, p.Active)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) subscriptionsPage() *console.Page[api.UserSubscription] {
	return console.NewPage(a.cache, "subscriptions", a.client.ListSubscriptions, nil)
}

func (a *app) cmdSubscriptions(args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	page := a.subscriptionsPage()
	ctx, cancel := a.ctx()
	defer cancel()

	switch subcmd {
	case "list", "ls":
		subs, err := page.Items(ctx)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan)
		fmt.Println()
		cyan.Println("  Subscriptions")
		cyan.Println("  -------------")
		if len(subs) == 0 {
			fmt.Println("  (no subscriptions)")
			fmt.Println()
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tUSER\tPLAN\tSTATUS\tSTARTED")
		fmt.Fprintln(w, "  --\t----\t----\t------\t-------")
		for _, s := range subs {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				s.ID, s.UserID, s.PlanID, s.Status,
				s.StartedAt.Format("Jan 02 2006"))
		}
		w.Flush()
		fmt.Println()
		return nil
	case "cancel":
		if len(args) < 1 {
			return fmt.Errorf("usage: subscriptions cancel <id>")
		}
		id := args[0]
		if err := page.Mutate(ctx, func(ctx context.Context) error {
			return a.client.CancelSubscription(ctx, id)
		}); err != nil {
			return err
		}
		color.Green("✓ Cancelled subscription: %s\n", id)
		return nil
	default:
		return fmt.Errorf("unknown subscriptions subcommand: %s (use list, cancel)", subcmd)
	}
}

func (a *app) cmdStats() error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	ctx, cancel := a.ctx()
	defer cancel()

	stats, err := query.Lookup(ctx, a.cache, "analytics:dashboard", func(ctx context.Context) (*api.DashboardStats, error) {
		return a.client.GetDashboardStats(ctx)
	})
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	cyan.Println("  Dashboard")
	cyan.Println("  ---------")
	fmt.Printf("  Users:            %d total", stats.TotalUsers)
	green.Printf("  %d active", stats.ActiveUsers)
	if stats.BannedUsers > 0 {
		color.Red("  %d banned", stats.BannedUsers)
	}
	fmt.Println()
	fmt.Printf("  Creators:         %d", stats.TotalCreators)
	if stats.PendingCreators > 0 {
		yellow.Printf("  (%d applications pending)", stats.PendingCreators)
	}
	fmt.Println()
	fmt.Printf("  Reports:          %d total", stats.TotalReports)
	if stats.PendingReports > 0 {
		yellow.Printf("  %d pending", stats.PendingReports)
	}
	fmt.Println()

	if len(stats.ReportsByCategory) > 0 {
		fmt.Println()
		cyan.Println("  Reports by category")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for category, count := range stats.ReportsByCategory {
			fmt.Fprintf(w, "    %s\t%d\n", category, count)
		}
		w.Flush()
	}

	if len(stats.SignupsByDay) > 0 {
		fmt.Println()
		cyan.Println("  Signups this week")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, point := range stats.SignupsByDay {
			fmt.Fprintf(w, "    %s\t%d\n", point.Date, point.Count)
		}
		w.Flush()
	}

	fmt.Println()
	return nil
}

func (a *app) cmdBlocks(args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if len(args) < 1 {
		return fmt.Errorf("usage: blocks <status|add|remove> <user> <target>")
	}
	subcmd := args[0]
	args = args[1:]

	if len(args) < 2 {
		return fmt.Errorf("usage: blocks %s <user> <target>", subcmd)
	}
	userID, targetID := args[0], args[1]

	ctx, cancel := a.ctx()
	defer cancel()

	switch subcmd {
	case "status":
		status, err := a.client.GetBlockStatus(ctx, userID, targetID)
		if err != nil {
			return err
		}
		if status.Blocked {
			color.Yellow("%s has blocked %s\n", userID, targetID)
		} else {
			fmt.Printf("%s has not blocked %s\n", userID, targetID)
		}
		return nil
	case "add":
		if err := a.client.Block(ctx, userID, targetID); err != nil {
			return err
		}
		color.Green("✓ %s now blocks %s\n", userID, targetID)
		return nil
	case "remove", "rm":
		if err := a.client.Unblock(ctx, userID, targetID); err != nil {
			return err
		}
		color.Green("✓ %s no longer blocks %s\n", userID, targetID)
		return nil
	default:
		return fmt.Errorf("unknown blocks subcommand: %s (use status, add, remove)", subcmd)
	}
}

// flagValue scans args for "--flag value" (or the short alias) and returns
// the value, empty when absent.
func flagValue(args []string, long, short string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == long || (short != "" && args[i] == short) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
