package state

import (
	"context"
	"sync"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
	"fitcoach/client/internal/session"
)

// MenuBackend is the slice of the API client the menu screens use.
type MenuBackend interface {
	GetMenu(ctx context.Context, userID int64) (*domain.Menu, error)
	CreateMenu(ctx context.Context, userID int64) (*domain.Menu, error)
	DeleteMenu(ctx context.Context, menuID int64) (string, error)
	CreateMeal(ctx context.Context, req api.CreateMealRequest) (*domain.Meal, error)
	UpdateMeal(ctx context.Context, mealID int64, req api.UpdateMealRequest) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, mealID int64) (string, error)
}

// MenuController manages one menu: the trainee's meal completion toggles and
// the admin's meal CRUD. The trainee path keeps the session Identity's
// embedded menu snapshot in step with the held menu.
type MenuController struct {
	backend MenuBackend
	session *session.Manager
	notify  Notifier
	gate    Gate

	mu      sync.Mutex
	menu    *domain.Menu
	allDone bool
}

// NewMenuController creates a controller bound to the session and notifier.
func NewMenuController(backend MenuBackend, sess *session.Manager, notify Notifier) *MenuController {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &MenuController{backend: backend, session: sess, notify: notify}
}

// Menu returns a snapshot of the held menu, or nil when none is loaded.
func (c *MenuController) Menu() *domain.Menu {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.menu == nil {
		return nil
	}
	snapshot := *c.menu
	snapshot.Meals = append([]domain.Meal(nil), c.menu.Meals...)
	return &snapshot
}

// SetMenu holds an already-fetched menu, e.g. the one embedded in the Identity.
func (c *MenuController) SetMenu(menu *domain.Menu) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menu = menu
	c.allDone = menu != nil && menu.AllCompleted()
}

// Load fetches the menu assigned to the given trainee and holds it.
func (c *MenuController) Load(ctx context.Context, userID int64) error {
	menu, err := c.backend.GetMenu(ctx, userID)
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return err
	}
	c.SetMenu(menu)
	return nil
}

// Create creates an empty menu for a trainee and holds it. Admin only.
func (c *MenuController) Create(ctx context.Context, userID int64) error {
	menu, err := c.backend.CreateMenu(ctx, userID)
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return err
	}
	c.SetMenu(menu)
	return nil
}

// Delete removes the held menu and surfaces the backend's confirmation message.
func (c *MenuController) Delete(ctx context.Context) error {
	c.mu.Lock()
	menu := c.menu
	c.mu.Unlock()
	if menu == nil {
		return nil
	}
	msg, err := c.backend.DeleteMenu(ctx, menu.ID)
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return err
	}
	c.SetMenu(nil)
	c.notify.Success(msg)
	return nil
}

// AddMeal appends a meal to the held menu after checking its name and order
// against the existing meals. Admin only.
func (c *MenuController) AddMeal(ctx context.Context, name string, order, protein, carbs, fats int) error {
	c.mu.Lock()
	menu := c.menu
	c.mu.Unlock()
	if menu == nil {
		return &ValidationError{Field: "menu", Message: "No menu is loaded"}
	}
	if err := validateMeal(name, order, menu.Meals); err != nil {
		return err
	}
	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.CreateMealRequest{
		MenuID:        menu.ID,
		Name:          name,
		Order:         order,
		ProteinPoints: protein,
		CarbsPoints:   carbs,
		FatsPoints:    fats,
	}
	Run(
		func() (*domain.Meal, error) { return c.backend.CreateMeal(ctx, req) },
		func(meal *domain.Meal) {
			c.mu.Lock()
			c.menu.Meals = AppendSorted(c.menu.Meals, *meal,
				func(m domain.Meal) int { return m.Order })
			c.allDone = c.menu.AllCompleted()
			c.mu.Unlock()
			c.notify.Success("Meal created!")
		},
		c.notify.Error,
	)
	return nil
}

// UpdateMealPoints changes a meal's macro points. Admin only.
func (c *MenuController) UpdateMealPoints(ctx context.Context, mealID int64, protein, carbs, fats int) error {
	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.UpdateMealRequest{ProteinPoints: &protein, CarbsPoints: &carbs, FatsPoints: &fats}
	Run(
		func() (*domain.Meal, error) { return c.backend.UpdateMeal(ctx, mealID, req) },
		func(meal *domain.Meal) {
			c.mu.Lock()
			if c.menu != nil {
				c.menu.Meals = ReplaceByID(c.menu.Meals, *meal,
					func(m domain.Meal) int64 { return m.ID })
			}
			c.mu.Unlock()
			c.notify.Success("Meal updated!")
		},
		c.notify.Error,
	)
	return nil
}

// RemoveMeal deletes a meal and surfaces the backend's confirmation message.
func (c *MenuController) RemoveMeal(ctx context.Context, mealID int64) error {
	Run(
		func() (string, error) { return c.backend.DeleteMeal(ctx, mealID) },
		func(msg string) {
			c.mu.Lock()
			if c.menu != nil {
				c.menu.Meals = RemoveByID(c.menu.Meals, mealID,
					func(m domain.Meal) int64 { return m.ID })
				c.allDone = c.menu.AllCompleted()
			}
			c.mu.Unlock()
			c.notify.Success(msg)
		},
		c.notify.Error,
	)
	return nil
}

// ToggleMealCompleted flips a meal's completion flag. On success the backend's
// meal is spliced into both the held menu and the Identity's embedded menu
// snapshot. Completing a meal congratulates the trainee; completing the last
// open meal additionally fires the all-meals-completed notification, once.
func (c *MenuController) ToggleMealCompleted(ctx context.Context, mealID int64, completed bool) error {
	c.mu.Lock()
	menu := c.menu
	c.mu.Unlock()
	if menu == nil {
		return &ValidationError{Field: "menu", Message: "No menu is loaded"}
	}
	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.UpdateMealRequest{IsCompleted: &completed}
	Run(
		func() (*domain.Meal, error) { return c.backend.UpdateMeal(ctx, mealID, req) },
		func(meal *domain.Meal) {
			c.mu.Lock()
			c.menu.Meals = ReplaceByID(c.menu.Meals, *meal,
				func(m domain.Meal) int64 { return m.ID })
			snapshot := *c.menu
			snapshot.Meals = append([]domain.Meal(nil), c.menu.Meals...)
			wasAllDone := c.allDone
			c.allDone = c.menu.AllCompleted()
			nowAllDone := c.allDone
			c.mu.Unlock()

			if identity := c.session.Identity(); identity != nil {
				next := *identity
				next.Menu = &snapshot
				c.session.Reload(&next)
			}
			if completed {
				c.notify.Success("You finished the meal, good job!")
			}
			if nowAllDone && !wasAllDone {
				c.notify.Success("You finished all the meals for the day, keep up!")
			}
		},
		c.notify.Error,
	)
	return nil
}
