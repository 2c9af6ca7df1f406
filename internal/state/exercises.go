package state

import (
	"context"
	"sync"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
)

// CatalogBackend is the slice of the API client the exercise screens use.
type CatalogBackend interface {
	GetAllExercises(ctx context.Context) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, req api.CreateExerciseRequest) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID int64) (string, error)
	GetAllMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
}

// Catalog holds the shared exercise reference data for admin management
// screens and for resolving exercise names when building plan details.
type Catalog struct {
	backend CatalogBackend
	notify  Notifier
	gate    Gate

	mu        sync.Mutex
	exercises []domain.Exercise
	groups    []domain.MuscleGroup
}

// NewCatalog creates an empty exercise catalog.
func NewCatalog(backend CatalogBackend, notify Notifier) *Catalog {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Catalog{backend: backend, notify: notify}
}

// Load fetches the exercise and muscle group reference lists.
func (c *Catalog) Load(ctx context.Context) error {
	exercises, err := c.backend.GetAllExercises(ctx)
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return err
	}
	groups, err := c.backend.GetAllMuscleGroups(ctx)
	if err != nil {
		c.notify.Error(ErrorMessage(err))
		return err
	}
	c.mu.Lock()
	c.exercises = exercises
	c.groups = groups
	c.mu.Unlock()
	return nil
}

// Exercises returns a snapshot of the exercise list.
func (c *Catalog) Exercises() []domain.Exercise {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Exercise(nil), c.exercises...)
}

// MuscleGroups returns a snapshot of the muscle group list.
func (c *Catalog) MuscleGroups() []domain.MuscleGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.MuscleGroup(nil), c.groups...)
}

// Create adds an exercise to the shared catalog, uploading a demonstration
// video when a path is given. The name must be unique in the catalog.
func (c *Catalog) Create(ctx context.Context, name, muscleGroup, videoPath string) error {
	c.mu.Lock()
	existing := c.exercises
	c.mu.Unlock()
	if err := validateExerciseName(name, existing); err != nil {
		return err
	}
	if !c.gate.TryStart() {
		return nil
	}
	defer c.gate.Done()

	req := api.CreateExerciseRequest{Name: name, MuscleGroupName: muscleGroup, VideoPath: videoPath}
	Run(
		func() (*domain.Exercise, error) { return c.backend.CreateExercise(ctx, req) },
		func(exercise *domain.Exercise) {
			c.mu.Lock()
			c.exercises = append(c.exercises, *exercise)
			c.mu.Unlock()
			c.notify.Success("Exercise created!")
		},
		c.notify.Error,
	)
	return nil
}

// Remove deletes an exercise and surfaces the backend's confirmation message.
func (c *Catalog) Remove(ctx context.Context, exerciseID int64) error {
	Run(
		func() (string, error) { return c.backend.DeleteExercise(ctx, exerciseID) },
		func(msg string) {
			c.mu.Lock()
			c.exercises = RemoveByID(c.exercises, exerciseID,
				func(e domain.Exercise) int64 { return e.ID })
			c.mu.Unlock()
			c.notify.Success(msg)
		},
		c.notify.Error,
	)
	return nil
}
