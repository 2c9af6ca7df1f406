package api

import (
	"context"
	"fmt"
	"net/http"

	"fitcoach/client/internal/domain"
)

// CreateMealRequest adds a meal to a menu. Admin only.
type CreateMealRequest struct {
	MenuID        int64  `json:"menuId"`
	Name          string `json:"name"`
	Order         int    `json:"order"`
	ProteinPoints int    `json:"proteinPoints"`
	CarbsPoints   int    `json:"carbsPoints"`
	FatsPoints    int    `json:"fatsPoints"`
}

// UpdateMealRequest is a partial meal update. Nil fields are omitted: admins
// send macro points, trainees send the completion flag.
type UpdateMealRequest struct {
	ProteinPoints *int  `json:"proteinPoints,omitempty"`
	CarbsPoints   *int  `json:"carbsPoints,omitempty"`
	FatsPoints    *int  `json:"fatsPoints,omitempty"`
	IsCompleted   *bool `json:"isCompleted,omitempty"`
}

// GetAllMenus fetches every menu in the system. Admin only.
func (c *Client) GetAllMenus(ctx context.Context) ([]domain.Menu, error) {
	var menus []domain.Menu
	if err := c.do(ctx, http.MethodGet, "/menus/admin", nil, true, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// GetMenu fetches the menu assigned to the given trainee.
func (c *Client) GetMenu(ctx context.Context, userID int64) (*domain.Menu, error) {
	var menu domain.Menu
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/menus/%d", userID), nil, true, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// CreateMenu creates an empty menu for a trainee and returns it. Admin only.
func (c *Client) CreateMenu(ctx context.Context, userID int64) (*domain.Menu, error) {
	var menu domain.Menu
	body := struct {
		UserID int64 `json:"userId"`
	}{UserID: userID}
	if err := c.do(ctx, http.MethodPost, "/menus/admin", body, true, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// DeleteMenu removes a menu and returns the backend's confirmation message.
func (c *Client) DeleteMenu(ctx context.Context, menuID int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/menus/admin/%d", menuID), nil, true, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// CreateMeal adds a meal to a menu and returns the created meal.
func (c *Client) CreateMeal(ctx context.Context, req CreateMealRequest) (*domain.Meal, error) {
	var meal domain.Meal
	if err := c.do(ctx, http.MethodPost, "/meals/admin", req, true, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal partially updates a meal and returns the updated meal.
func (c *Client) UpdateMeal(ctx context.Context, mealID int64, req UpdateMealRequest) (*domain.Meal, error) {
	var meal domain.Meal
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/meals/%d", mealID), req, true, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal and returns the backend's confirmation message.
func (c *Client) DeleteMeal(ctx context.Context, mealID int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/meals/admin/%d", mealID), nil, true, &msg); err != nil {
		return "", err
	}
	return msg, nil
}
