// ABOUTME: Subscription plan and membership operations against the admin API
// ABOUTME: Plan CRUD plus active user subscription listing and cancellation

package api

import (
	"context"
	"net/http"
)

// ListPlans returns all subscription plans, active and retired.
func (c *Client) ListPlans(ctx context.Context) ([]SubscriptionPlan, error) {
	var plans []SubscriptionPlan
	if err := c.do(ctx, http.MethodGet, "/admin/subscription-plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CreatePlan adds a new plan and returns the stored record.
func (c *Client) CreatePlan(ctx context.Context, input PlanInput) (*SubscriptionPlan, error) {
	var plan SubscriptionPlan
	if err := c.do(ctx, http.MethodPost, "/admin/subscription-plans", input, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan replaces a plan's fields and returns the updated record.
func (c *Client) UpdatePlan(ctx context.Context, id string, input PlanInput) (*SubscriptionPlan, error) {
	var plan SubscriptionPlan
	if err := c.do(ctx, http.MethodPut, "/admin/subscription-plans/"+id, input, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes a plan.
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/subscription-plans/"+id, nil, nil)
}

// ListSubscriptions returns user subscriptions across all plans.
func (c *Client) ListSubscriptions(ctx context.Context) ([]UserSubscription, error) {
	var subs []UserSubscription
	if err := c.do(ctx, http.MethodGet, "/admin/subscriptions", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CancelSubscription ends one user's subscription.
func (c *Client) CancelSubscription(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/admin/subscriptions/"+id+"/cancel", nil, nil)
}
