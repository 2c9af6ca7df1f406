package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
)

type mockCatalogBackend struct {
	createCalls int

	getAllExercises    func(ctx context.Context) ([]domain.Exercise, error)
	createExercise     func(ctx context.Context, req api.CreateExerciseRequest) (*domain.Exercise, error)
	deleteExercise     func(ctx context.Context, id int64) (string, error)
	getAllMuscleGroups func(ctx context.Context) ([]domain.MuscleGroup, error)
}

func (m *mockCatalogBackend) GetAllExercises(ctx context.Context) ([]domain.Exercise, error) {
	return m.getAllExercises(ctx)
}

func (m *mockCatalogBackend) CreateExercise(ctx context.Context, req api.CreateExerciseRequest) (*domain.Exercise, error) {
	m.createCalls++
	return m.createExercise(ctx, req)
}

func (m *mockCatalogBackend) DeleteExercise(ctx context.Context, id int64) (string, error) {
	return m.deleteExercise(ctx, id)
}

func (m *mockCatalogBackend) GetAllMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	return m.getAllMuscleGroups(ctx)
}

func loadedCatalog(t *testing.T, backend *mockCatalogBackend, notify Notifier) *Catalog {
	t.Helper()
	if backend.getAllExercises == nil {
		backend.getAllExercises = func(ctx context.Context) ([]domain.Exercise, error) {
			return []domain.Exercise{
				{ID: 1, Name: "Squat", MuscleGroupName: "Legs"},
				{ID: 2, Name: "Bench Press", MuscleGroupName: "Chest"},
			}, nil
		}
	}
	if backend.getAllMuscleGroups == nil {
		backend.getAllMuscleGroups = func(ctx context.Context) ([]domain.MuscleGroup, error) {
			return []domain.MuscleGroup{{ID: 1, Name: "Legs"}, {ID: 2, Name: "Chest"}}, nil
		}
	}
	c := NewCatalog(backend, notify)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestCatalog_LoadHoldsReferenceLists(t *testing.T) {
	c := loadedCatalog(t, &mockCatalogBackend{}, nil)
	assert.Len(t, c.Exercises(), 2)
	assert.Len(t, c.MuscleGroups(), 2)
}

func TestCatalog_CreateDuplicateNameRejectedBeforeNetwork(t *testing.T) {
	backend := &mockCatalogBackend{}
	c := loadedCatalog(t, backend, nil)

	err := c.Create(context.Background(), "squat", "Legs", "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Zero(t, backend.createCalls, "duplicate must be rejected before any request")
}

func TestCatalog_CreateAppendsBackendExercise(t *testing.T) {
	backend := &mockCatalogBackend{
		createExercise: func(ctx context.Context, req api.CreateExerciseRequest) (*domain.Exercise, error) {
			assert.Equal(t, "Deadlift", req.Name)
			assert.Equal(t, "Back", req.MuscleGroupName)
			return &domain.Exercise{ID: 3, Name: "Deadlift", MuscleGroupName: "Back", VideoURL: "https://cdn/deadlift.mp4"}, nil
		},
	}
	notify := &recorder{}
	c := loadedCatalog(t, backend, notify)

	require.NoError(t, c.Create(context.Background(), "Deadlift", "Back", ""))

	exercises := c.Exercises()
	require.Len(t, exercises, 3)
	// The backend's echoed object, video URL included, is what lands in the cache.
	assert.Equal(t, "https://cdn/deadlift.mp4", exercises[2].VideoURL)
	assert.Equal(t, []string{"Exercise created!"}, notify.successes)
}

func TestCatalog_CreateFailureLeavesCatalogUntouched(t *testing.T) {
	backend := &mockCatalogBackend{
		createExercise: func(ctx context.Context, req api.CreateExerciseRequest) (*domain.Exercise, error) {
			return nil, &api.RemoteError{Category: api.CategoryValidation, Message: "Muscle group was not found"}
		},
	}
	notify := &recorder{}
	c := loadedCatalog(t, backend, notify)

	require.NoError(t, c.Create(context.Background(), "Deadlift", "Nope", ""))

	assert.Len(t, c.Exercises(), 2)
	assert.Equal(t, []string{"Muscle group was not found"}, notify.errors)
}

func TestCatalog_RemoveDropsEntryAndSurfacesMessage(t *testing.T) {
	backend := &mockCatalogBackend{
		deleteExercise: func(ctx context.Context, id int64) (string, error) {
			assert.Equal(t, int64(1), id)
			return "The exercise was deleted successfully", nil
		},
	}
	notify := &recorder{}
	c := loadedCatalog(t, backend, notify)

	require.NoError(t, c.Remove(context.Background(), 1))

	exercises := c.Exercises()
	require.Len(t, exercises, 1)
	assert.Equal(t, int64(2), exercises[0].ID)
	assert.Equal(t, []string{"The exercise was deleted successfully"}, notify.successes)
}
