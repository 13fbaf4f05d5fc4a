// ABOUTME: Creator application operations against the admin API
// ABOUTME: Lists pending applications and submits approve/reject decisions

package api

import (
	"context"
	"net/http"
)

// approveCreatorRequest is the JSON body for the approval decision.
type approveCreatorRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes,omitempty"`
}

// PendingCreators returns creator applications awaiting a decision.
func (c *Client) PendingCreators(ctx context.Context) ([]CreatorApplication, error) {
	var apps []CreatorApplication
	if err := c.do(ctx, http.MethodGet, "/admin/creators/pending", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// ApproveCreator records an approve (true) or reject (false) decision with
// optional free-text notes.
func (c *Client) ApproveCreator(ctx context.Context, id string, approved bool, notes string) error {
	body := approveCreatorRequest{Approved: approved, Notes: notes}
	return c.do(ctx, http.MethodPost, "/admin/creators/"+id+"/approve", body, nil)
}
