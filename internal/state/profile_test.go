package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcoach/client/internal/api"
	"fitcoach/client/internal/domain"
)

type mockProfileBackend struct {
	updateCurrentUser func(ctx context.Context, req api.UpdateProfileRequest) (*domain.User, error)
	createHealth      func(ctx context.Context, req api.CreateHealthDeclarationRequest) (*domain.HealthDeclaration, error)
}

func (m *mockProfileBackend) UpdateCurrentUser(ctx context.Context, req api.UpdateProfileRequest) (*domain.User, error) {
	return m.updateCurrentUser(ctx, req)
}

func (m *mockProfileBackend) CreateHealthDeclaration(ctx context.Context, req api.CreateHealthDeclarationRequest) (*domain.HealthDeclaration, error) {
	return m.createHealth(ctx, req)
}

func TestProfile_UpdateReplacesIdentityWholesale(t *testing.T) {
	sess := newSession(t, "Trainee", domain.User{
		ID:        42,
		FirstName: "Dana",
		Weight:    []domain.WeightSample{{Value: 70, Date: "2026-01-01"}},
	})
	backend := &mockProfileBackend{
		updateCurrentUser: func(ctx context.Context, req api.UpdateProfileRequest) (*domain.User, error) {
			return &domain.User{
				ID:        42,
				FirstName: "Dana",
				Weight: []domain.WeightSample{
					{Value: 70, Date: "2026-01-01"},
					{Value: 68.5, Date: "2026-02-01"},
				},
				WaistCircumference: 80,
			}, nil
		},
	}
	notify := &recorder{}
	p := NewProfile(backend, sess, notify)

	require.NoError(t, p.Update(context.Background(), api.UpdateProfileRequest{}))

	identity := sess.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, 68.5, identity.CurrentWeight())
	assert.Equal(t, 80.0, identity.WaistCircumference)
	assert.Equal(t, []string{"Measurements updated successfully"}, notify.successes)
}

func TestProfile_UpdateFailureLeavesIdentityUntouched(t *testing.T) {
	sess := newSession(t, "Trainee", domain.User{ID: 42, FirstName: "Dana"})
	backend := &mockProfileBackend{
		updateCurrentUser: func(ctx context.Context, req api.UpdateProfileRequest) (*domain.User, error) {
			return nil, &api.RemoteError{Category: api.CategoryValidation, Message: "Weight can't be less than 0"}
		},
	}
	notify := &recorder{}
	p := NewProfile(backend, sess, notify)

	require.NoError(t, p.Update(context.Background(), api.UpdateProfileRequest{}))

	identity := sess.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, "Dana", identity.FirstName)
	assert.Equal(t, []string{"Weight can't be less than 0"}, notify.errors)
}

func TestProfile_SubmitHealthDeclarationLinksIdentity(t *testing.T) {
	sess := newSession(t, "Trainee", domain.User{ID: 42, FirstName: "Dana"})
	backend := &mockProfileBackend{
		createHealth: func(ctx context.Context, req api.CreateHealthDeclarationRequest) (*domain.HealthDeclaration, error) {
			return &domain.HealthDeclaration{ID: 17}, nil
		},
	}
	notify := &recorder{}
	p := NewProfile(backend, sess, notify)

	require.Nil(t, sess.Identity().HealthDeclarationID)
	require.NoError(t, p.SubmitHealthDeclaration(context.Background(), api.CreateHealthDeclarationRequest{}))

	identity := sess.Identity()
	require.NotNil(t, identity.HealthDeclarationID)
	assert.Equal(t, int64(17), *identity.HealthDeclarationID)
	assert.Equal(t, []string{"Health declaration submitted"}, notify.successes)
}
