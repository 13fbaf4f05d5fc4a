// ABOUTME: User management operations against the admin API
// ABOUTME: List, fetch, update, delete, ban/unban, plus per-user blocks and reports

package api

import (
	"context"
	"net/http"
)

// ListUsers returns all platform accounts.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one account by ID.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the given field changes and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/user/"+id, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser permanently removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
}

// BanUser suspends an account.
func (c *Client) BanUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/users/"+id+"/ban", nil, nil)
}

// UnbanUser lifts a suspension.
func (c *Client) UnbanUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/users/"+id+"/unban", nil, nil)
}

// BlockedUsers returns the accounts a user has blocked.
func (c *Client) BlockedUsers(ctx context.Context, userID string) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/user/"+userID+"/blocked", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserReports returns the reports filed by or against a user.
func (c *Client) UserReports(ctx context.Context, userID string) ([]Report, error) {
	var reports []Report
	if err := c.do(ctx, http.MethodGet, "/user/"+userID+"/reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
