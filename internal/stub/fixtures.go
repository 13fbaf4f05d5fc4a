// ABOUTME: Seeded fixture data for the stub backend
// ABOUTME: Small but representative: banned users, pending creators, mixed report states

package stub

import (
	"time"

	"github.com/atriumhq/atrium-console/internal/api"
)

// seed populates the fixture state. IDs are stable so CLI walkthroughs and
// tests can reference them.
func (s *Server) seed() {
	now := time.Now().UTC()

	s.users = []api.User{
		{ID: "u-1001", Username: "ada", Email: "ada@example.com", Role: "creator", CreatedAt: now.AddDate(0, -6, 0)},
		{ID: "u-1002", Username: "grace", Email: "grace@example.com", Role: "user", CreatedAt: now.AddDate(0, -3, 0)},
		{ID: "u-1003", Username: "edsger", Email: "edsger@example.com", Role: "user", Banned: true, CreatedAt: now.AddDate(0, -2, 0)},
		{ID: "u-1004", Username: "barbara", Email: "barbara@example.com", Role: "creator", CreatedAt: now.AddDate(0, -1, 0)},
		{ID: "u-1005", Username: "donald", Email: "donald@example.com", Role: "user", CreatedAt: now.AddDate(0, 0, -5)},
	}

	s.creators = []api.CreatorApplication{
		{ID: "c-2001", UserID: "u-1002", Username: "grace", DisplayName: "Grace Codes", Category: "programming", Bio: "Compiler walkthroughs and live debugging.", Status: "pending", SubmittedAt: now.AddDate(0, 0, -4)},
		{ID: "c-2002", UserID: "u-1005", Username: "donald", DisplayName: "The Art of Streaming", Category: "education", Bio: "Long-form algorithm deep dives.", Status: "pending", SubmittedAt: now.AddDate(0, 0, -2)},
	}

	// Statuses deliberately pending/resolved/pending for filter walkthroughs
	s.reports = []api.Report{
		{ID: "r-3001", ReporterID: "u-1001", ReportedID: "u-1003", Category: "spam", Reason: "repeated link spam in comments", Status: api.ReportPending, CreatedAt: now.AddDate(0, 0, -3)},
		{ID: "r-3002", ReporterID: "u-1002", ReportedID: "u-1003", Category: "harassment", Reason: "abusive replies", Status: api.ReportResolved, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "r-3003", ReporterID: "u-1004", ReportedID: "u-1005", Category: "spam", Reason: "bot activity", Status: api.ReportPending, CreatedAt: now.AddDate(0, 0, -1)},
	}

	s.announcements = []api.Announcement{
		{ID: "a-4001", Title: "Scheduled maintenance", Body: "The platform will be **read-only** on Saturday from 02:00 to 04:00 UTC.", Published: true, CreatedAt: now.AddDate(0, 0, -7), UpdatedAt: now.AddDate(0, 0, -7)},
		{ID: "a-4002", Title: "New creator payouts", Body: "Payout schedules move to _weekly_ starting next month.", Published: false, CreatedAt: now.AddDate(0, 0, -1), UpdatedAt: now.AddDate(0, 0, -1)},
	}

	s.plans = []api.SubscriptionPlan{
		{ID: "p-5001", Name: "Supporter", Tier: "basic", PriceCents: 499, Interval: "month", Active: true},
		{ID: "p-5002", Name: "Patron", Tier: "premium", PriceCents: 1499, Interval: "month", Active: true},
	}

	s.subscriptions = []api.UserSubscription{
		{ID: "s-6001", UserID: "u-1002", PlanID: "p-5001", Status: "active", StartedAt: now.AddDate(0, -2, 0)},
		{ID: "s-6002", UserID: "u-1005", PlanID: "p-5002", Status: "active", StartedAt: now.AddDate(0, -1, 0)},
	}

	s.blocks = map[string]map[string]bool{
		"u-1001": {"u-1003": true},
	}
}
