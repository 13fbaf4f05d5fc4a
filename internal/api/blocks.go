// ABOUTME: Block relationship operations against the admin API
// ABOUTME: Create/remove blocks and query block status between two identities

package api

import (
	"context"
	"net/http"
	"net/url"
)

// blockRequest is the JSON body for block and unblock.
type blockRequest struct {
	BlockerID string `json:"blocker_id"`
	BlockedID string `json:"blocked_id"`
}

// Block creates a block relationship.
func (c *Client) Block(ctx context.Context, blockerID, blockedID string) error {
	return c.do(ctx, http.MethodPost, "/block", blockRequest{BlockerID: blockerID, BlockedID: blockedID}, nil)
}

// Unblock removes a block relationship.
func (c *Client) Unblock(ctx context.Context, blockerID, blockedID string) error {
	return c.do(ctx, http.MethodPost, "/unblock", blockRequest{BlockerID: blockerID, BlockedID: blockedID}, nil)
}

// GetBlockStatus reports whether userID has blocked targetID.
func (c *Client) GetBlockStatus(ctx context.Context, userID, targetID string) (*BlockStatus, error) {
	query := url.Values{}
	query.Set("user_id", userID)
	query.Set("target_user_id", targetID)

	var status BlockStatus
	if err := c.do(ctx, http.MethodGet, "/block-status?"+query.Encode(), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
