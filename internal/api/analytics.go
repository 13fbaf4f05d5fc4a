// ABOUTME: Analytics aggregates for the dashboard
// ABOUTME: Counts, time series, and category breakdowns computed server-side

package api

import (
	"context"
	"net/http"
)

// GetDashboardStats fetches the aggregate the dashboard renders.
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetUserStats fetches the user aggregate breakdown.
func (c *Client) GetUserStats(ctx context.Context) (*UserStats, error) {
	var stats UserStats
	if err := c.do(ctx, http.MethodGet, "/analytics/users", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetReportStats fetches the report triage aggregate breakdown.
func (c *Client) GetReportStats(ctx context.Context) (*ReportStats, error) {
	var stats ReportStats
	if err := c.do(ctx, http.MethodGet, "/analytics/reports", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
