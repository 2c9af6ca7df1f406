package state

import (
	"context"
	"sync"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
	"fitcoach/client/internal/session"
)

// PlanBackend is the slice of the API client the plan screens use.
type PlanBackend interface {
	GetPlan(ctx context.Context, planID int64) (*domain.Plan, error)
	CreatePlan(ctx context.Context, req api.CreatePlanRequest) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, req api.UpdatePlanRequest) (*domain.Plan, error)
	DeletePlan(ctx context.Context, planID int64) (string, error)
	CreatePlanDetail(ctx context.Context, req api.CreatePlanDetailRequest) (*domain.PlanDetail, error)
	UpdatePlanDetail(ctx context.Context, req api.UpdatePlanDetailRequest) (*domain.PlanDetail, error)
	DeletePlanDetail(ctx context.Context, detailID int64) (string, error)
}

// PlanController manages one workout plan: the admin's detail CRUD and the
// trainee's weight and completion updates. All reconciliation follows the
// confirm-then-apply protocol; details are kept ordered by their plan position.
type PlanController struct {
	backend PlanBackend
	session *session.Manager
	notify  Notifier
	gate    Gate

	mu   sync.Mutex
	plan *domain.Plan
}

// NewPlanController creates a controller bound to the session and notifier.
func NewPlanController(backend PlanBackend, sess *session.Manager, notify Notifier) *PlanController {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &PlanController{backend: backend, session: sess, notify: notify}
}

// Plan returns a snapshot of the held plan, or nil when none is loaded.
func (c *PlanController) Plan() *domain.Plan {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.plan == nil {
		return nil
	}
	snapshot := *c.plan
	snapshot.PlanDetails = append([]domain.PlanDetail(nil), c.plan.PlanDetails...)
	return &snapshot
}

// SetPlan holds an already-fetched plan, e.g. one taken from the Identity.
func (c *PlanController) SetPlan(plan *domain.Plan) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if plan != nil {
		plan.SortDetails()
	}
	c.plan = plan
}

// Load fetches a plan by id and holds it. Admin only.
func (c *PlanController) Load(ctx context.Context, planID int64) error {
	plan, err := c.backend.GetPlan(ctx, planID)
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return err
	}
	c.SetPlan(plan)
	return nil
}

// Create creates a plan for a trainee after checking the name against the
// trainee's existing plans. Admin only. Returns the backend's plan object.
func (c *PlanController) Create(ctx context.Context, userID int64, name string, existing []domain.Plan) (*domain.Plan, error) {
	if err := validatePlanName(name, existing); err != nil {
		return nil, err
	}
	plan, err := c.backend.CreatePlan(ctx, api.CreatePlanRequest{UserID: userID, Name: name})
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return nil, err
	}
	c.SetPlan(plan)
	return plan, nil
}

// Delete removes the held plan and surfaces the backend's confirmation message.
func (c *PlanController) Delete(ctx context.Context) error {
	c.mu.Lock()
	plan := c.plan
	c.mu.Unlock()
	if plan == nil {
		return nil
	}
	msg, err := c.backend.DeletePlan(ctx, plan.ID)
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return err
	}
	c.SetPlan(nil)
	c.notify.Success(msg)
	return nil
}

// AddDetail appends an exercise occurrence to the held plan. The exercise must
// exist in the catalog, must not already appear in the plan, and its order
// must be free; all three are checked before any network call.
func (c *PlanController) AddDetail(ctx context.Context, exerciseName string, order, reps, sets int, catalog []domain.Exercise) error {
	c.mu.Lock()
	plan := c.plan
	c.mu.Unlock()
	if plan == nil {
		return &ValidationError{Field: "plan", Message: "No plan is loaded"}
	}
	if err := validateDetailExercise(exerciseName, plan.PlanDetails); err != nil {
		return err
	}
	if err := validateDetailOrder(order, plan.PlanDetails, 0); err != nil {
		return err
	}
	exerciseID, err := findExerciseID(exerciseName, catalog)
	if err != nil {
		return err
	}
	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.CreatePlanDetailRequest{
		ExerciseID:  exerciseID,
		PlanID:      plan.ID,
		OrderInPlan: order,
		Reps:        reps,
		Sets:        sets,
	}
	Run(
		func() (*domain.PlanDetail, error) { return c.backend.CreatePlanDetail(ctx, req) },
		func(detail *domain.PlanDetail) {
			c.mu.Lock()
			c.plan.PlanDetails = AppendSorted(c.plan.PlanDetails, *detail,
				func(d domain.PlanDetail) int { return d.OrderInPlan })
			c.mu.Unlock()
			c.notify.Success("Plan exercise created!")
		},
		c.notify.Error,
	)
	return nil
}

// UpdateDetail changes the order, reps, and sets of an existing detail. The
// new order must not collide with any sibling other than the detail itself.
func (c *PlanController) UpdateDetail(ctx context.Context, detailID int64, order, reps, sets int) error {
	c.mu.Lock()
	plan := c.plan
	c.mu.Unlock()
	if plan == nil {
		return &ValidationError{Field: "plan", Message: "No plan is loaded"}
	}
	if err := validateDetailOrder(order, plan.PlanDetails, detailID); err != nil {
		return err
	}
	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.UpdatePlanDetailRequest{
		ID:          detailID,
		OrderInPlan: &order,
		Reps:        &reps,
		Sets:        &sets,
	}
	Run(
		func() (*domain.PlanDetail, error) { return c.backend.UpdatePlanDetail(ctx, req) },
		func(detail *domain.PlanDetail) {
			c.mu.Lock()
			c.plan.PlanDetails = ReplaceByID(c.plan.PlanDetails, *detail,
				func(d domain.PlanDetail) int64 { return d.ID })
			c.plan.SortDetails()
			c.mu.Unlock()
			c.notify.Success("Plan exercise updated!")
		},
		c.notify.Error,
	)
	return nil
}

// RemoveDetail deletes a detail and surfaces the backend's confirmation message.
func (c *PlanController) RemoveDetail(ctx context.Context, detailID int64) error {
	Run(
		func() (string, error) { return c.backend.DeletePlanDetail(ctx, detailID) },
		func(msg string) {
			c.mu.Lock()
			if c.plan != nil {
				c.plan.PlanDetails = RemoveByID(c.plan.PlanDetails, detailID,
					func(d domain.PlanDetail) int64 { return d.ID })
			}
			c.mu.Unlock()
			c.notify.Success(msg)
		},
		c.notify.Error,
	)
	return nil
}

// UpdateWeight records a new working weight for a detail, shifting the old
// current weight into the previous slot. Submitting the stored value is a
// no-op: no request is issued and the state is unchanged.
func (c *PlanController) UpdateWeight(ctx context.Context, detailID int64, newWeight float64) error {
	c.mu.Lock()
	var target *domain.PlanDetail
	if c.plan != nil {
		for i := range c.plan.PlanDetails {
			if c.plan.PlanDetails[i].ID == detailID {
				target = &c.plan.PlanDetails[i]
				break
			}
		}
	}
	if target == nil {
		c.mu.Unlock()
		return &ValidationError{Field: "exercise", Message: "Exercise was not found"}
	}
	if newWeight < 0 {
		c.mu.Unlock()
		return &ValidationError{Field: "weight", Message: "Weight can't be less than 0"}
	}
	if target.CurrentWeight == newWeight {
		c.mu.Unlock()
		return nil
	}
	previous := target.CurrentWeight
	c.mu.Unlock()

	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.UpdatePlanDetailRequest{
		ID:             detailID,
		CurrentWeight:  &newWeight,
		PreviousWeight: &previous,
	}
	Run(
		func() (*domain.PlanDetail, error) { return c.backend.UpdatePlanDetail(ctx, req) },
		func(detail *domain.PlanDetail) {
			c.mu.Lock()
			c.plan.PlanDetails = ReplaceByID(c.plan.PlanDetails, *detail,
				func(d domain.PlanDetail) int64 { return d.ID })
			c.mu.Unlock()
		},
		c.notify.Error,
	)
	return nil
}

// ToggleCompleted flips the plan's completion flag. On success both the held
// plan and the plan list embedded in the session Identity take the backend's
// returned plan.
func (c *PlanController) ToggleCompleted(ctx context.Context, completed bool) error {
	c.mu.Lock()
	plan := c.plan
	c.mu.Unlock()
	if plan == nil {
		return &ValidationError{Field: "plan", Message: "No plan is loaded"}
	}
	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.UpdatePlanRequest{ID: plan.ID, Name: plan.Name, IsCompleted: completed}
	Run(
		func() (*domain.Plan, error) { return c.backend.UpdatePlan(ctx, req) },
		func(updated *domain.Plan) {
			c.SetPlan(updated)
			if completed {
				c.notify.Success("Plan completed, good job!")
			}
			if identity := c.session.Identity(); identity != nil {
				next := *identity
				next.Plans = ReplaceByID(identity.Plans, *updated,
					func(p domain.Plan) int64 { return p.ID })
				c.session.Reload(&next)
			}
		},
		c.notify.Error,
	)
	return nil
}
