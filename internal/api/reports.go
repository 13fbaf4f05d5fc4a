// ABOUTME: Abuse report operations against the admin API
// ABOUTME: List, fetch, triage status updates, and deletion

package api

import (
	"context"
	"fmt"
	"net/http"
)

// updateReportRequest is the JSON body for a status change.
type updateReportRequest struct {
	Status ReportStatus `json:"status"`
}

// ListReports returns all abuse reports.
func (c *Client) ListReports(ctx context.Context) ([]Report, error) {
	var reports []Report
	if err := c.do(ctx, http.MethodGet, "/reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches one report by ID.
func (c *Client) GetReport(ctx context.Context, id string) (*Report, error) {
	var report Report
	if err := c.do(ctx, http.MethodGet, "/report/"+id, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReportStatus moves a report to pending, resolved or dismissed and
// returns the updated record.
func (c *Client) UpdateReportStatus(ctx context.Context, id string, status ReportStatus) (*Report, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportStatus, status)
	}

	var report Report
	if err := c.do(ctx, http.MethodPut, "/report/"+id, updateReportRequest{Status: status}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReport permanently removes a report.
func (c *Client) DeleteReport(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/report/"+id, nil, nil)
}
