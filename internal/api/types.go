// ABOUTME: Resource record types exchanged with the Atrium backend
// ABOUTME: The backend owns these shapes; the client holds transient copies only

package api

import (
	"errors"
	"time"
)

// User is a platform account as the admin API reports it.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created_at"`
}

// UserUpdate carries the mutable user fields for PUT /user/{id}.
type UserUpdate struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// CreatorApplication is a pending request to become a creator.
type CreatorApplication struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Category    string    `json:"category"`
	Bio         string    `json:"bio"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ReportStatus is the triage state of an abuse report.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

// ErrInvalidReportStatus is returned for status values outside the enum.
var ErrInvalidReportStatus = errors.New("invalid report status")

// Valid reports whether s is one of the known triage states.
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

// Report is an abuse report filed by one user against another.
type Report struct {
	ID         string       `json:"id"`
	ReporterID string       `json:"reporter_id"`
	ReportedID string       `json:"reported_id"`
	Category   string       `json:"category"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Announcement is an operator-authored platform notice. Body is markdown.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnnouncementInput carries the writable announcement fields.
type AnnouncementInput struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// SubscriptionPlan is a purchasable membership tier.
type SubscriptionPlan struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tier       string `json:"tier"`
	PriceCents int64  `json:"price_cents"`
	Interval   string `json:"interval"`
	Active     bool   `json:"active"`
}

// PlanInput carries the writable plan fields.
type PlanInput struct {
	Name       string `json:"name"`
	Tier       string `json:"tier"`
	PriceCents int64  `json:"price_cents"`
	Interval   string `json:"interval"`
	Active     bool   `json:"active"`
}

// UserSubscription is one user's active or cancelled plan membership.
type UserSubscription struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	PlanID      string     `json:"plan_id"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// TimePoint is one bucket of a time series.
type TimePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardStats is the aggregate the dashboard renders.
type DashboardStats struct {
	TotalUsers        int            `json:"total_users"`
	ActiveUsers       int            `json:"active_users"`
	BannedUsers       int            `json:"banned_users"`
	TotalCreators     int            `json:"total_creators"`
	PendingCreators   int            `json:"pending_creators"`
	TotalReports      int            `json:"total_reports"`
	PendingReports    int            `json:"pending_reports"`
	SignupsByDay      []TimePoint    `json:"signups_by_day"`
	ReportsByCategory map[string]int `json:"reports_by_category"`
}

// UserStats is the per-user aggregate breakdown.
type UserStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Banned      int `json:"banned"`
	NewThisWeek int `json:"new_this_week"`
}

// ReportStats is the report triage aggregate breakdown.
type ReportStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Resolved  int `json:"resolved"`
	Dismissed int `json:"dismissed"`
}

// BlockStatus is the relationship between two identities.
type BlockStatus struct {
	Blocked bool `json:"blocked"`
}
