// ABOUTME: Round-trip tests driving the stub backend through the real API client
// ABOUTME: Covers auth enforcement, fixture reads, and mutate-then-refetch behavior

package stub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atriumhq/atrium-console/internal/api"
	"github.com/atriumhq/atrium-console/internal/session"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

// newTestClient logs into a fresh stub and returns an authenticated client.
func newTestClient(t *testing.T) (*api.Client, *httptest.Server) {
	t.Helper()

	secret := []byte("test-secret")
	ts := httptest.NewServer(New(secret).Handler())
	t.Cleanup(ts.Close)

	auth := session.NewRemoteAuthenticator(ts.URL, nil)
	result, err := auth.Authenticate(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	return api.New(ts.URL, staticToken(result.Token), nil), ts
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	ts := httptest.NewServer(New([]byte("test-secret")).Handler())
	defer ts.Close()

	auth := session.NewRemoteAuthenticator(ts.URL, nil)
	_, err := auth.Authenticate(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
}

func TestRequireAuth(t *testing.T) {
	ts := httptest.NewServer(New([]byte("test-secret")).Handler())
	defer ts.Close()

	tests := []struct {
		name   string
		tokens api.TokenSource
	}{
		{"no token", nil},
		{"garbage token", staticToken("not-a-jwt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := api.New(ts.URL, tt.tokens, nil)
			_, err := client.ListUsers(context.Background())

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		})
	}
}

func TestUsers_BanUnbanRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)

	require.NoError(t, client.BanUser(ctx, "u-1001"))

	u, err := client.GetUser(ctx, "u-1001")
	require.NoError(t, err)
	assert.True(t, u.Banned)

	require.NoError(t, client.UnbanUser(ctx, "u-1001"))

	u, err = client.GetUser(ctx, "u-1001")
	require.NoError(t, err)
	assert.False(t, u.Banned)
}

func TestUsers_DeleteRemovesUser(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DeleteUser(ctx, "u-1005"))

	_, err := client.GetUser(ctx, "u-1005")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestUsers_UpdatePartialFields(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	updated, err := client.UpdateUser(ctx, "u-1002", api.UserUpdate{Email: "grace@newhost.com"})
	require.NoError(t, err)

	assert.Equal(t, "grace@newhost.com", updated.Email)
	assert.Equal(t, "grace", updated.Username, "unset fields keep their values")
}

func TestCreators_ApprovePromotesUser(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	pending, err := client.PendingCreators(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, client.ApproveCreator(ctx, "c-2001", true, "looks good"))

	pending, err = client.PendingCreators(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	u, err := client.GetUser(ctx, "u-1002")
	require.NoError(t, err)
	assert.Equal(t, "creator", u.Role)
}

func TestCreators_RejectLeavesRoleAlone(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.ApproveCreator(ctx, "c-2002", false, ""))

	pending, err := client.PendingCreators(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	u, err := client.GetUser(ctx, "u-1005")
	require.NoError(t, err)
	assert.Equal(t, "user", u.Role)
}

func TestReports_UpdateStatusVisibleOnRefetch(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	reports, err := client.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	pending := 0
	for _, r := range reports {
		if r.Status == api.ReportPending {
			pending++
		}
	}
	assert.Equal(t, 2, pending)

	updated, err := client.UpdateReportStatus(ctx, "r-3001", api.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, api.ReportResolved, updated.Status)

	reports, err = client.ListReports(ctx)
	require.NoError(t, err)
	pending = 0
	for _, r := range reports {
		if r.Status == api.ReportPending {
			pending++
		}
	}
	assert.Equal(t, 1, pending)
}

func TestAnnouncements_CRUD(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateAnnouncement(ctx, api.AnnouncementInput{
		Title: "Welcome week", Body: "See the **schedule**.", Published: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := client.ListAnnouncements(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	updated, err := client.UpdateAnnouncement(ctx, created.ID, api.AnnouncementInput{
		Title: "Welcome week", Body: "Schedule moved.", Published: false,
	})
	require.NoError(t, err)
	assert.False(t, updated.Published)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	require.NoError(t, client.DeleteAnnouncement(ctx, created.ID))

	list, err = client.ListAnnouncements(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestAnnouncements_CreateRequiresTitle(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.CreateAnnouncement(context.Background(), api.AnnouncementInput{Body: "no title"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "title")
}

func TestAnalytics_DashboardReflectsFixtures(t *testing.T) {
	client, _ := newTestClient(t)

	stats, err := client.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 1, stats.BannedUsers)
	assert.Equal(t, 4, stats.ActiveUsers)
	assert.Equal(t, 2, stats.TotalCreators)
	assert.Equal(t, 2, stats.PendingCreators)
	assert.Equal(t, 3, stats.TotalReports)
	assert.Equal(t, 2, stats.PendingReports)
	assert.Equal(t, 2, stats.ReportsByCategory["spam"])
	assert.Equal(t, 1, stats.ReportsByCategory["harassment"])
}

func TestAnalytics_ReportStatsTrackUpdates(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.UpdateReportStatus(ctx, "r-3003", api.ReportDismissed)
	require.NoError(t, err)

	stats, err := client.GetReportStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 1, stats.Dismissed)
}

func TestSubscriptions_CancelIsNotRepeatable(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.CancelSubscription(ctx, "s-6001"))

	subs, err := client.ListSubscriptions(ctx)
	require.NoError(t, err)
	for _, sub := range subs {
		if sub.ID == "s-6001" {
			assert.Equal(t, "cancelled", sub.Status)
			assert.NotNil(t, sub.CancelledAt)
		}
	}

	err = client.CancelSubscription(ctx, "s-6001")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestPlans_CreateUpdateDelete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	plan, err := client.CreatePlan(ctx, api.PlanInput{
		Name: "Founder", Tier: "premium", PriceCents: 4999, Interval: "year", Active: true,
	})
	require.NoError(t, err)

	updated, err := client.UpdatePlan(ctx, plan.ID, api.PlanInput{
		Name: "Founder", Tier: "premium", PriceCents: 4999, Interval: "year", Active: false,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	require.NoError(t, client.DeletePlan(ctx, plan.ID))

	plans, err := client.ListPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestBlocks_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	status, err := client.GetBlockStatus(ctx, "u-1001", "u-1003")
	require.NoError(t, err)
	assert.True(t, status.Blocked, "seeded block should be visible")

	require.NoError(t, client.Block(ctx, "u-1002", "u-1004"))

	status, err = client.GetBlockStatus(ctx, "u-1002", "u-1004")
	require.NoError(t, err)
	assert.True(t, status.Blocked)

	blocked, err := client.BlockedUsers(ctx, "u-1002")
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "u-1004", blocked[0].ID)

	require.NoError(t, client.Unblock(ctx, "u-1002", "u-1004"))

	status, err = client.GetBlockStatus(ctx, "u-1002", "u-1004")
	require.NoError(t, err)
	assert.False(t, status.Blocked)
}

func TestUserReports_MatchesEitherSide(t *testing.T) {
	client, _ := newTestClient(t)

	reports, err := client.UserReports(context.Background(), "u-1003")
	require.NoError(t, err)
	assert.Len(t, reports, 2, "u-1003 is the reported party on two fixtures")
}

func TestNotFound_SurfacesMessage(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetReport(context.Background(), "r-9999")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "r-9999")
	assert.False(t, errors.Is(err, context.Canceled))
}
