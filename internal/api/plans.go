package api

import (
	"context"
	"fmt"
	"net/http"

	"fitcoach/client/internal/domain"
)

// CreatePlanRequest creates an empty plan for a trainee. Admin only.
type CreatePlanRequest struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

// UpdatePlanRequest updates a plan's name or completion flag.
type UpdatePlanRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"isCompleted"`
}

// CreatePlanDetailRequest adds an exercise occurrence to a plan. Admin only.
type CreatePlanDetailRequest struct {
	ExerciseID  int64 `json:"exerciseId"`
	PlanID      int64 `json:"planId"`
	OrderInPlan int   `json:"orderInPlan"`
	Reps        int   `json:"reps"`
	Sets        int   `json:"sets"`
}

// UpdatePlanDetailRequest is a partial update of a plan detail. Nil fields are
// omitted from the request: admins send order/reps/sets, trainees send the
// weight pair. The backend echoes the full updated detail either way.
type UpdatePlanDetailRequest struct {
	ID             int64    `json:"id"`
	OrderInPlan    *int     `json:"orderInPlan,omitempty"`
	Reps           *int     `json:"reps,omitempty"`
	Sets           *int     `json:"sets,omitempty"`
	CurrentWeight  *float64 `json:"currentWeight,omitempty"`
	PreviousWeight *float64 `json:"previousWeight,omitempty"`
}

// GetPlan fetches one plan with its details. Admin only.
func (c *Client) GetPlan(ctx context.Context, planID int64) (*domain.Plan, error) {
	var plan domain.Plan
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/plans/admin/%d", planID), nil, true, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreatePlan creates a plan and returns the backend's canonical plan object.
func (c *Client) CreatePlan(ctx context.Context, req CreatePlanRequest) (*domain.Plan, error) {
	var plan domain.Plan
	if err := c.do(ctx, http.MethodPost, "/plans/admin", req, true, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan updates a plan and returns the backend's updated plan object.
func (c *Client) UpdatePlan(ctx context.Context, req UpdatePlanRequest) (*domain.Plan, error) {
	var plan domain.Plan
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/plans/%d", req.ID), req, true, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes a plan and returns the backend's confirmation message.
func (c *Client) DeletePlan(ctx context.Context, planID int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/plans/admin/%d", planID), nil, true, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// CreatePlanDetail adds an exercise to a plan and returns the created detail.
func (c *Client) CreatePlanDetail(ctx context.Context, req CreatePlanDetailRequest) (*domain.PlanDetail, error) {
	var detail domain.PlanDetail
	if err := c.do(ctx, http.MethodPost, "/plandetails/admin", req, true, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdatePlanDetail partially updates a detail and returns the updated detail.
func (c *Client) UpdatePlanDetail(ctx context.Context, req UpdatePlanDetailRequest) (*domain.PlanDetail, error) {
	var detail domain.PlanDetail
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/plandetails/%d", req.ID), req, true, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeletePlanDetail removes a detail and returns the backend's confirmation message.
func (c *Client) DeletePlanDetail(ctx context.Context, detailID int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/plandetails/admin/%d", detailID), nil, true, &msg); err != nil {
		return "", err
	}
	return msg, nil
}
