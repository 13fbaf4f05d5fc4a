// ABOUTME: Announcement CRUD against the admin API
// ABOUTME: Announcements are live backend resources, same base URL pattern as the rest

package api

import (
	"context"
	"net/http"
)

// ListAnnouncements returns all announcements, newest first.
func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	if err := c.do(ctx, http.MethodGet, "/admin/announcements", nil, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// CreateAnnouncement publishes a new announcement and returns the stored record.
func (c *Client) CreateAnnouncement(ctx context.Context, input AnnouncementInput) (*Announcement, error) {
	var announcement Announcement
	if err := c.do(ctx, http.MethodPost, "/admin/announcements", input, &announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// UpdateAnnouncement replaces an announcement's fields and returns the
// updated record.
func (c *Client) UpdateAnnouncement(ctx context.Context, id string, input AnnouncementInput) (*Announcement, error) {
	var announcement Announcement
	if err := c.do(ctx, http.MethodPut, "/admin/announcements/"+id, input, &announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// DeleteAnnouncement permanently removes an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/announcements/"+id, nil, nil)
}
